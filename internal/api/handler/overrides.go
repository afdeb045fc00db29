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

type upsertOverrideRequest struct {
	Sessions       *int     `json:"sessions"`
	GoogleAdsSpend *float64 `json:"google_ads_spend"`
	MetaAdsSpend   *float64 `json:"meta_ads_spend"`
}

// UpsertManualOverride grava os valores manuais de uma conta/data, usados
// como segunda camada da resolução quando a view não tem o campo
func UpsertManualOverride(overrideRepo repository.OverrideRepository, accountRepo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		externalID := params.ByName("id")

		date, err := time.Parse(time.DateOnly, params.ByName("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		var body upsertOverrideRequest
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if body.Sessions == nil && body.GoogleAdsSpend == nil && body.MetaAdsSpend == nil {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Informe ao menos um campo para override", nil)
			return
		}

		account, err := accountRepo.GetAccountByExternalID(externalID)
		if err != nil {
			logrus.Error("Erro ao buscar conta para override manual:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		override := &domain.ManualOverride{
			AccountID:      account.ID,
			Date:           date,
			Sessions:       body.Sessions,
			GoogleAdsSpend: body.GoogleAdsSpend,
			MetaAdsSpend:   body.MetaAdsSpend,
		}

		if err := overrideRepo.SaveOrUpdate(override); err != nil {
			logrus.Error("Erro ao salvar override manual:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar override manual", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(override)
	})
}

// GetManualOverride retorna o override manual de uma conta/data
func GetManualOverride(overrideRepo repository.OverrideRepository, accountRepo repository.AccountRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		params := httprouter.ParamsFromContext(r.Context())
		externalID := params.ByName("id")

		date, err := time.Parse(time.DateOnly, params.ByName("date"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		account, err := accountRepo.GetAccountByExternalID(externalID)
		if err != nil {
			logrus.Error("Erro ao buscar conta para override manual:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar conta", nil)
			return
		}

		if account == nil {
			apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)
			return
		}

		override, err := overrideRepo.GetByAccountIDAndDate(account.ID, date)
		if err != nil {
			logrus.Error("Erro ao buscar override manual:", err)
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar override manual", nil)
			return
		}

		if override == nil {
			apiErrors.WriteError(w, apiErrors.ErrOverrideNotFound, "Sem override manual para a data", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(override)
	})
}
