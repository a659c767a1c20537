package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/insighting"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/apiErrors"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/log"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/utils"
)

// dashboardFilters extrai e valida os filtros comuns do dashboard a partir
// da query string. Em caso de erro a resposta 400 já foi escrita.
func dashboardFilters(w http.ResponseWriter, r *http.Request, logger log.Logger) (*domain.DashboardFilters, bool) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"start_date": r.URL.Query().Get("start_date"),
			"error":      err.Error(),
		}).Warn("dashboard: invalid start_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro start_date inválido", nil)
		return nil, false
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		logger.WithFields(log.Fields{
			"end_date": r.URL.Query().Get("end_date"),
			"error":    err.Error(),
		}).Warn("dashboard: invalid end_date parameter")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Parâmetro end_date inválido", nil)
		return nil, false
	}

	if endDate.Before(*startDate) {
		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Warn("dashboard: end_date before start_date")

		apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "A data final deve ser posterior à data inicial", nil)
		return nil, false
	}

	channel := r.URL.Query().Get("channel")
	if channel == "" {
		channel = domain.FilterAll
	}

	return &domain.DashboardFilters{
		StartDate: startDate,
		EndDate:   endDate,
		Channel:   channel,
	}, true
}

// writeDashboardResponse serializa o payload e trata a falha de encoding de
// forma uniforme entre os endpoints.
func writeDashboardResponse(w http.ResponseWriter, logger log.Logger, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logger.WithField("error", err.Error()).Error("dashboard: failed to encode response")
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
	}
}

func GetDashboardSummary(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := dashboardFilters(w, r, logger)
		if !ok {
			return
		}

		summary, err := service.GetSummary(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("dashboard: failed to get summary metrics")

			apiErrors.WriteError(w, apiErrors.ErrWarehouse, "Erro ao consultar o warehouse", nil)
			return
		}

		writeDashboardResponse(w, logger, summary)
	})
}

func GetDashboardDailyTrend(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := dashboardFilters(w, r, logger)
		if !ok {
			return
		}

		trend, err := service.GetDailyTrend(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("dashboard: failed to get daily trend")

			apiErrors.WriteError(w, apiErrors.ErrWarehouse, "Erro ao consultar o warehouse", nil)
			return
		}

		writeDashboardResponse(w, logger, trend)
	})
}

func GetDashboardChannels(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := dashboardFilters(w, r, logger)
		if !ok {
			return
		}

		channels, err := service.GetChannelSummaries(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("dashboard: failed to get channel summaries")

			apiErrors.WriteError(w, apiErrors.ErrWarehouse, "Erro ao consultar o warehouse", nil)
			return
		}

		writeDashboardResponse(w, logger, channels)
	})
}

func GetDashboardRoas(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := dashboardFilters(w, r, logger)
		if !ok {
			return
		}

		entries, err := service.GetRoasByChannel(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("dashboard: failed to get ROAS by channel")

			apiErrors.WriteError(w, apiErrors.ErrWarehouse, "Erro ao consultar o warehouse", nil)
			return
		}

		writeDashboardResponse(w, logger, entries)
	})
}

func GetDashboardFunnel(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := dashboardFilters(w, r, logger)
		if !ok {
			return
		}

		funnel, err := service.GetFunnel(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("dashboard: failed to get conversion funnel")

			apiErrors.WriteError(w, apiErrors.ErrWarehouse, "Erro ao consultar o warehouse", nil)
			return
		}

		writeDashboardResponse(w, logger, funnel)
	})
}

func GetDashboardRecords(service insighting.Insighter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, ok := dashboardFilters(w, r, logger)
		if !ok {
			return
		}

		records, err := service.GetRecords(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("dashboard: failed to get raw records")

			apiErrors.WriteError(w, apiErrors.ErrWarehouse, "Erro ao consultar o warehouse", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
			"records":    len(records),
		}).Info("dashboard: successfully retrieved raw records")

		writeDashboardResponse(w, logger, records)
	})
}
