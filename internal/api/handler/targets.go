package handler

import (
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/domain"
	"github.com/vfg2006/commerce-report-api/pkg/apiErrors"
)

type upsertTargetRequest struct {
	Amount float64 `json:"amount"`
}

// UpsertRevenueTarget cadastra ou atualiza a meta de receita de um mês
// (chave YYYY-MM)
func UpsertRevenueTarget(targetRepo repository.TargetRepository, accountRepo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		externalID := params.ByName("id")
		month := params.ByName("month")

		if _, err := time.Parse("2006-01", month); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Mês inválido, use o formato YYYY-MM", nil)
			return
		}

		var body upsertTargetRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if body.Amount <= 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "O valor da meta precisa ser positivo", nil)
			return
		}

		account, err := accountRepo.GetAccountByExternalID(externalID)
		if err != nil {
			logrus.Error("Erro ao buscar conta para meta mensal:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		target := &domain.RevenueTarget{
			AccountID: account.ID,
			Month:     month,
			Amount:    body.Amount,
		}

		if err := targetRepo.SaveOrUpdate(target); err != nil {
			logrus.Error("Erro ao salvar meta mensal:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar meta mensal", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	})
}

// GetRevenueTarget retorna a meta de receita de um mês
func GetRevenueTarget(targetRepo repository.TargetRepository, accountRepo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		externalID := params.ByName("id")
		month := params.ByName("month")

		if _, err := time.Parse("2006-01", month); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Mês inválido, use o formato YYYY-MM", nil)
			return
		}

		account, err := accountRepo.GetAccountByExternalID(externalID)
		if err != nil {
			logrus.Error("Erro ao buscar conta para meta mensal:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		target, err := targetRepo.GetByAccountIDAndMonth(account.ID, month)
		if err != nil {
			logrus.Error("Erro ao buscar meta mensal:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar meta mensal", nil)
			return
		}

		if target == nil {
			apiErrors.WriteError(w, apiErrors.ErrTargetNotFound, "Meta mensal não cadastrada", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(target)
	})
}
