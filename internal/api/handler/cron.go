package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/scheduler"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/apiErrors"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/log"
)

// CronJobTypePipeline é o único tipo de cron job disponível
const (
	CronJobTypePipeline = "pipeline"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	PipelineSyncService *scheduler.PipelineSyncService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePipeline:
			if services.PipelineSyncService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reprocessamento do pipeline não disponível", nil)
				return
			}
			services.PipelineSyncService.TriggerManualSync()
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: pipeline", nil)
			return
		}

		logger.WithField("type", cronType).Info("cron: manual run triggered")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if services.PipelineSyncService == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reprocessamento do pipeline não disponível", nil)
			return
		}

		status := map[string]any{
			"pipeline": services.PipelineSyncService.Status(),
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
