package loading

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse/mocks"
	"go.uber.org/mock/gomock"
)

func TestService_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWarehouse := mocks.NewMockLoader(ctrl)
	service := NewService(mockWarehouse)

	createdAt := time.Date(2024, 11, 23, 12, 0, 0, 0, time.UTC)

	// O dataset é garantido antes da carga
	gomock.InOrder(
		mockWarehouse.EXPECT().
			EnsureDataset(gomock.Any()).
			Return(nil),
		mockWarehouse.EXPECT().
			LoadCSVFile(gomock.Any(), "data/raw/marketing_data.csv").
			Return(&warehouse.TableStats{
				TableRef:  "project.marketing_raw.daily_performance",
				NumRows:   420,
				NumBytes:  18000,
				CreatedAt: createdAt,
			}, nil),
	)

	report, err := service.Load(context.Background(), "data/raw/marketing_data.csv")
	require.NoError(t, err)

	assert.NotEmpty(t, report.RunID)
	assert.Equal(t, "project.marketing_raw.daily_performance", report.TableRef)
	assert.Equal(t, uint64(420), report.NumRows)
	assert.Equal(t, int64(18000), report.NumBytes)
	assert.Equal(t, createdAt, report.CreatedAt)
}

func TestService_Load_FalhaAoGarantirDataset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWarehouse := mocks.NewMockLoader(ctrl)
	service := NewService(mockWarehouse)

	mockWarehouse.EXPECT().
		EnsureDataset(gomock.Any()).
		Return(errors.New("permission denied"))

	// A carga não deve ser tentada quando o dataset não pode ser garantido
	report, err := service.Load(context.Background(), "data/raw/marketing_data.csv")
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestService_Load_FalhaNaCarga(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWarehouse := mocks.NewMockLoader(ctrl)
	service := NewService(mockWarehouse)

	mockWarehouse.EXPECT().
		EnsureDataset(gomock.Any()).
		Return(nil)
	mockWarehouse.EXPECT().
		LoadCSVFile(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("job failed"))

	report, err := service.Load(context.Background(), "data/raw/marketing_data.csv")
	assert.Error(t, err)
	assert.Nil(t, report)
	assert.Contains(t, err.Error(), "job failed")
}

func TestService_Load_RunIDsDistintos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWarehouse := mocks.NewMockLoader(ctrl)
	service := NewService(mockWarehouse)

	mockWarehouse.EXPECT().EnsureDataset(gomock.Any()).Return(nil).Times(2)
	mockWarehouse.EXPECT().
		LoadCSVFile(gomock.Any(), gomock.Any()).
		Return(&warehouse.TableStats{TableRef: "p.d.t"}, nil).
		Times(2)

	first, err := service.Load(context.Background(), "a.csv")
	require.NoError(t, err)

	second, err := service.Load(context.Background(), "b.csv")
	require.NoError(t, err)

	assert.NotEqual(t, first.RunID, second.RunID)
}
