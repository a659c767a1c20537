package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/config"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/generating"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/pipeline"
)

// PipelineSyncConfig representa a configuração do agendador de
// reprocessamento do pipeline.
type PipelineSyncConfig struct {
	CronSchedule string
	SyncEnabled  bool
}

// PipelineSyncService agenda a re-execução periódica do pipeline completo
// (gerar + carregar). Desligado por padrão.
type PipelineSyncService struct {
	scheduler           *gocron.Scheduler
	config              PipelineSyncConfig
	appConfig           *config.Config
	runner              pipeline.Runner
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
}

// SyncStatus é o retrato do agendador exposto pela API.
type SyncStatus struct {
	Enabled         bool       `json:"enabled"`
	Running         bool       `json:"running"`
	CronSchedule    string     `json:"cron_schedule"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
}

// NewPipelineSyncService cria o serviço de reprocessamento agendado.
func NewPipelineSyncService(runner pipeline.Runner, appConfig *config.Config) *PipelineSyncService {
	syncConfig := PipelineSyncConfig{
		CronSchedule: appConfig.PipelineSync.CronSchedule,
		SyncEnabled:  appConfig.PipelineSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": syncConfig.CronSchedule,
		"sync_enabled":  syncConfig.SyncEnabled,
	}).Info("Configuração do agendador do pipeline carregada")

	return &PipelineSyncService{
		scheduler:   scheduler,
		config:      syncConfig,
		appConfig:   appConfig,
		runner:      runner,
		syncRunning: false,
	}
}

// Start inicia o agendador. Sem efeito quando desabilitado por configuração.
func (s *PipelineSyncService) Start(ctx context.Context) error {
	if !s.config.SyncEnabled {
		logrus.Info("Reprocessamento agendado do pipeline desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do pipeline")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runPipeline(context.Background())
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar reprocessamento do pipeline: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do pipeline")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução manual em background.
func (s *PipelineSyncService) TriggerManualSync() {
	go s.runPipeline(context.Background())
}

// Status retorna o retrato atual do agendador.
func (s *PipelineSyncService) Status() SyncStatus {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	status := SyncStatus{
		Enabled:      s.config.SyncEnabled,
		Running:      s.syncRunning,
		CronSchedule: s.config.CronSchedule,
	}

	if !s.lastSyncStartedAt.IsZero() {
		startedAt := s.lastSyncStartedAt
		status.LastStartedAt = &startedAt
	}
	if !s.lastSyncCompletedAt.IsZero() {
		completedAt := s.lastSyncCompletedAt
		status.LastCompletedAt = &completedAt
	}

	return status
}

func (s *PipelineSyncService) runPipeline(ctx context.Context) {
	s.syncMutex.Lock()
	if s.syncRunning {
		s.syncMutex.Unlock()
		logrus.Info("Reprocessamento do pipeline já em andamento, ignorando")
		return
	}
	s.syncRunning = true
	s.lastSyncStartedAt = time.Now()
	s.syncMutex.Unlock()

	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.lastSyncCompletedAt = time.Now()
		s.syncMutex.Unlock()
	}()

	params, err := s.runParams()
	if err != nil {
		logrus.WithError(err).Error("Erro ao montar parâmetros do pipeline")
		return
	}

	report, err := s.runner.Run(ctx, params)
	if err != nil {
		logrus.WithError(err).Error("Erro no reprocessamento do pipeline")
		return
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"table_ref": report.TableRef,
		"num_rows":  report.NumRows,
	}).Info("Reprocessamento do pipeline concluído")
}

func (s *PipelineSyncService) runParams() (pipeline.RunParams, error) {
	startDate, err := time.Parse(time.DateOnly, s.appConfig.Generator.StartDate)
	if err != nil {
		return pipeline.RunParams{}, fmt.Errorf("data de início inválida na configuração: %w", err)
	}

	endDate, err := time.Parse(time.DateOnly, s.appConfig.Generator.EndDate)
	if err != nil {
		return pipeline.RunParams{}, fmt.Errorf("data de fim inválida na configuração: %w", err)
	}

	return pipeline.RunParams{
		Generating: generating.Params{
			StartDate: startDate,
			EndDate:   endDate,
			Seed:      s.appConfig.Generator.Seed,
		},
		OutputPath: s.appConfig.Generator.OutputPath,
	}, nil
}
