package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/commerce-report-api/internal/usecases/reporting"
	"github.com/vfg2006/commerce-report-api/internal/usecases/resolving"
	"github.com/vfg2006/commerce-report-api/pkg/apiErrors"
	"github.com/vfg2006/commerce-report-api/pkg/log"
	"github.com/vfg2006/commerce-report-api/pkg/utils"
)

// GetDailyReport gera o relatório diário de uma conta. Sem o parâmetro
// date o relatório é de ontem (T-1).
func GetDailyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("reports: generating daily report")

		date, err := reportDateParam(r, "date")
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"date":       r.URL.Query().Get("date"),
				"error":      err.Error(),
			}).Warn("reports: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.GenerateDailyReport(id, date)
		if err != nil {
			writeReportError(w, logger, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// GetWeeklyReport gera o relatório da janela de 7 dias que termina em
// week_end (padrão: ontem)
func GetWeeklyReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		logger.WithField("account_id", id).Info("reports: generating weekly report")

		weekEnd, err := reportDateParam(r, "week_end")
		if err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"week_end":   r.URL.Query().Get("week_end"),
				"error":      err.Error(),
			}).Warn("reports: invalid week_end parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateFormat, "Data inválida, use o formato YYYY-MM-DD", nil)
			return
		}

		report, err := service.GenerateWeeklyReport(id, weekEnd)
		if err != nil {
			writeReportError(w, logger, id, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithFields(log.Fields{
				"account_id": id,
				"error":      err.Error(),
			}).Error("reports: failed to encode response")

			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// reportDateParam lê um parâmetro de data da query; ausente cai para
// ontem (T-1)
func reportDateParam(r *http.Request, name string) (time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return utils.Yesterday(), nil
	}

	return time.Parse(time.DateOnly, raw)
}

func writeReportError(w http.ResponseWriter, logger log.Logger, accountID string, err error) {
	switch {
	case errors.Is(err, reporting.ErrAccountNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAccountNotFound, "Conta não encontrada", nil)

	case errors.Is(err, resolving.ErrNoDailyFacts), errors.Is(err, reporting.ErrNoWindowFacts):
		apiErrors.WriteError(w, apiErrors.ErrReportNotReady, "Dados do período ainda não disponíveis no warehouse", nil)

	default:
		logger.WithFields(log.Fields{
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("reports: failed to generate report")

		apiErrors.WriteError(w, apiErrors.ErrWarehouseQuery, "Erro ao gerar o relatório", nil)
	}
}
