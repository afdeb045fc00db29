package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/commerce-report-api/infrastructure/repository"
	"github.com/vfg2006/commerce-report-api/internal/api/handler/router"
	"github.com/vfg2006/commerce-report-api/internal/usecases/reporting"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/reports/daily",
			Method:  http.MethodGet,
			Handler: GetDailyReport(service),
		},
		{
			Path:    "/v1/accounts/:id/reports/weekly",
			Method:  http.MethodGet,
			Handler: GetWeeklyReport(service),
		},
	}
}

func Accounts(accountRepo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts",
			Method:  http.MethodGet,
			Handler: AccountList(accountRepo),
		},
	}
}

func Overrides(overrideRepo repository.OverrideRepository, accountRepo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/overrides/:date",
			Method:  http.MethodPut,
			Handler: UpsertManualOverride(overrideRepo, accountRepo),
		},
		{
			Path:    "/v1/accounts/:id/overrides/:date",
			Method:  http.MethodGet,
			Handler: GetManualOverride(overrideRepo, accountRepo),
		},
	}
}

func Targets(targetRepo repository.TargetRepository, accountRepo repository.AccountRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/accounts/:id/targets/:month",
			Method:  http.MethodPut,
			Handler: UpsertRevenueTarget(targetRepo, accountRepo),
		},
		{
			Path:    "/v1/accounts/:id/targets/:month",
			Method:  http.MethodGet,
			Handler: GetRevenueTarget(targetRepo, accountRepo),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
