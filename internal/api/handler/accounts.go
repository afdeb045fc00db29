package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/pkg/apiErrors"
)

// AccountList retorna as contas cadastradas; o filtro status aceita
// ACTIVE e INACTIVE separados por vírgula
func AccountList(accountRepo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		statuses := []domain.AccountStatus{}
		if raw := r.URL.Query().Get("status"); raw != "" {
			for _, status := range []domain.AccountStatus{domain.AccountStatusActive, domain.AccountStatusInactive} {
				if raw == string(status) {
					statuses = append(statuses, status)
				}
			}

			if len(statuses) == 0 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Status inválido. Valores aceitos: ACTIVE, INACTIVE", nil)
				return
			}
		}

		accounts, err := accountRepo.ListAccounts(statuses)
		if err != nil {
			logrus.Error("Erro ao buscar contas:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar contas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(accounts); err != nil {
			logrus.Error("Erro ao enviar resposta de contas:", err)
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
