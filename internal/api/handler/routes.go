package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/api/handler/router"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/insighting"
)

// json é o codec usado por todos os handlers nas respostas e nos corpos de
// requisição.
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Dashboard(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
		{
			Path:    "/v1/dashboard/daily-trend",
			Method:  http.MethodGet,
			Handler: GetDashboardDailyTrend(service),
		},
		{
			Path:    "/v1/dashboard/channels",
			Method:  http.MethodGet,
			Handler: GetDashboardChannels(service),
		},
		{
			Path:    "/v1/dashboard/roas",
			Method:  http.MethodGet,
			Handler: GetDashboardRoas(service),
		},
		{
			Path:    "/v1/dashboard/funnel",
			Method:  http.MethodGet,
			Handler: GetDashboardFunnel(service),
		},
		{
			Path:    "/v1/dashboard/records",
			Method:  http.MethodGet,
			Handler: GetDashboardRecords(service),
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
