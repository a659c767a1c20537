package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/config"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/pipeline"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/pipeline/mocks"
	"go.uber.org/mock/gomock"
)

func testAppConfig(enabled bool) *config.Config {
	return &config.Config{
		Generator: config.Generator{
			StartDate:  "2024-09-01",
			EndDate:    "2024-11-23",
			Seed:       42,
			OutputPath: "data/raw/marketing_data.csv",
		},
		PipelineSync: config.PipelineSync{
			CronSchedule: "0 6 * * *",
			Enabled:      enabled,
		},
	}
}

func TestPipelineSyncService_StartDesabilitado(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	service := NewPipelineSyncService(mockRunner, testAppConfig(false))

	// Desabilitado por configuração: nada é agendado nem executado
	require.NoError(t, service.Start(context.Background()))

	status := service.Status()
	assert.False(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastStartedAt)
	assert.Nil(t, status.LastCompletedAt)
}

func TestPipelineSyncService_RunPipeline(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	service := NewPipelineSyncService(mockRunner, testAppConfig(true))

	mockRunner.EXPECT().
		Run(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params pipeline.RunParams) (*domain.LoadReport, error) {
			assert.Equal(t, "2024-09-01", params.Generating.StartDate.Format(time.DateOnly))
			assert.Equal(t, "2024-11-23", params.Generating.EndDate.Format(time.DateOnly))
			assert.Equal(t, int64(42), params.Generating.Seed)
			assert.Equal(t, "data/raw/marketing_data.csv", params.OutputPath)

			return &domain.LoadReport{RunID: "abc123", NumRows: 420}, nil
		})

	service.runPipeline(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	require.NotNil(t, status.LastStartedAt)
	require.NotNil(t, status.LastCompletedAt)
	assert.False(t, status.LastCompletedAt.Before(*status.LastStartedAt))
}

func TestPipelineSyncService_RunPipeline_DataInvalidaNaConfiguracao(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)

	cfg := testAppConfig(true)
	cfg.Generator.StartDate = "01/09/2024"

	service := NewPipelineSyncService(mockRunner, cfg)

	// O runner não deve ser chamado com parâmetros inválidos
	service.runPipeline(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.NotNil(t, status.LastStartedAt)
}

func TestPipelineSyncService_ExecucaoConcorrenteIgnorada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)
	service := NewPipelineSyncService(mockRunner, testAppConfig(true))

	// Simula uma execução em andamento
	service.syncMutex.Lock()
	service.syncRunning = true
	service.syncMutex.Unlock()

	// A segunda execução retorna sem tocar no runner
	service.runPipeline(context.Background())

	status := service.Status()
	assert.True(t, status.Running)
	assert.Nil(t, status.LastCompletedAt)
}
