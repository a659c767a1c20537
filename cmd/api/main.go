package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/repository"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse/bigquery"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/api"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/config"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/scheduler"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/authenticating"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/generating"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/insighting"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/loading"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/pipeline"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	warehouseClient := bqclient(ctx, cfg.Warehouse)
	defer warehouseClient.Close()

	performanceRepo := repository.NewPerformanceRepository(warehouseClient, cfg.Warehouse)

	authenticator := authenticating.NewService(cfg)

	cacheTTL := time.Duration(cfg.Dashboard.CacheTTLSeconds) * time.Second
	insightService := insighting.NewService(performanceRepo, cacheTTL)

	generatorService := generating.NewService()
	loaderService := loading.NewService(warehouseClient)
	pipelineService := pipeline.NewService(generatorService, loaderService)

	pipelineSyncService := scheduler.NewPipelineSyncService(pipelineService, cfg)

	if err := pipelineSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de reprocessamento do pipeline")
	} else {
		logrus.Info("Agendador de reprocessamento do pipeline iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		insightService,
		authenticator,
		pipelineSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// bqclient cria o cliente do warehouse
func bqclient(ctx context.Context, whConfig config.Warehouse) *bigquery.Client {
	client, err := bigquery.NewClient(ctx, whConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao BigQuery")
	}

	logrus.WithFields(logrus.Fields{
		"project": whConfig.ProjectID,
		"dataset": whConfig.DatasetID,
	}).Info("Cliente do BigQuery inicializado com sucesso")

	return client
}
