package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/insighting/mocks"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestGetDashboardSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockInsighter(ctrl)

	mockService.EXPECT().
		GetSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filters *domain.DashboardFilters) (*domain.SummaryMetrics, error) {
			assert.Equal(t, "2024-09-01", filters.StartDate.Format(time.DateOnly))
			assert.Equal(t, "2024-09-07", filters.EndDate.Format(time.DateOnly))
			assert.Equal(t, domain.FilterAll, filters.Channel)

			return &domain.SummaryMetrics{
				TotalSpend:   3000,
				TotalRevenue: 9300,
				ROAS:         3.1,
				Records:      35,
			}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dashboard/summary?start_date=2024-09-01&end_date=2024-09-07", nil)
	rec := httptest.NewRecorder()

	GetDashboardSummary(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary domain.SummaryMetrics
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&summary))
	assert.Equal(t, 3.1, summary.ROAS)
	assert.Equal(t, 35, summary.Records)
}

func TestGetDashboardSummary_RepassaCanal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockInsighter(ctrl)

	mockService.EXPECT().
		GetSummary(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, filters *domain.DashboardFilters) (*domain.SummaryMetrics, error) {
			assert.Equal(t, "Google Ads", filters.Channel)
			return &domain.SummaryMetrics{}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dashboard/summary?start_date=2024-09-01&end_date=2024-09-07&channel=Google+Ads", nil)
	rec := httptest.NewRecorder()

	GetDashboardSummary(mockService).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetDashboardSummary_DatasInvalidas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockInsighter(ctrl)

	tests := []struct {
		name  string
		query string
	}{
		{name: "sem datas", query: ""},
		{name: "start_date malformada", query: "?start_date=01/09/2024&end_date=2024-09-07"},
		{name: "end_date malformada", query: "?start_date=2024-09-01&end_date=ontem"},
		{name: "fim antes do início", query: "?start_date=2024-09-07&end_date=2024-09-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/summary"+tt.query, nil)
			rec := httptest.NewRecorder()

			GetDashboardSummary(mockService).ServeHTTP(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)

			var apiErr apiErrors.APIError
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
			assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
		})
	}
}

func TestGetDashboardSummary_FalhaNoWarehouse(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockInsighter(ctrl)

	mockService.EXPECT().
		GetSummary(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("query failed"))

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dashboard/summary?start_date=2024-09-01&end_date=2024-09-07", nil)
	rec := httptest.NewRecorder()

	GetDashboardSummary(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var apiErr apiErrors.APIError
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&apiErr))
	assert.Equal(t, apiErrors.ErrWarehouse, apiErr.Code)
}

func TestGetDashboardRoas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockInsighter(ctrl)

	mockService.EXPECT().
		GetRoasByChannel(gomock.Any(), gomock.Any()).
		Return([]*domain.RoasEntry{
			{Channel: "Direct", ROAS: 0, Band: domain.RoasBandWarning},
			{Channel: "Email", ROAS: 8.12, Band: domain.RoasBandSuccess},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dashboard/roas?start_date=2024-09-01&end_date=2024-09-07", nil)
	rec := httptest.NewRecorder()

	GetDashboardRoas(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var entries []*domain.RoasEntry
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&entries))
	require.Len(t, entries, 2)
	assert.Equal(t, domain.RoasBandWarning, entries[0].Band)
	assert.Equal(t, domain.RoasBandSuccess, entries[1].Band)
}

func TestGetDashboardFunnel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockInsighter(ctrl)

	mockService.EXPECT().
		GetFunnel(gomock.Any(), gomock.Any()).
		Return([]*domain.FunnelStage{
			{Stage: "Sessions", Value: 4600, PercentOfFirst: 100},
			{Stage: "Conversions", Value: 185, PercentOfFirst: 4.02},
		}, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/v1/dashboard/funnel?start_date=2024-09-01&end_date=2024-09-07", nil)
	rec := httptest.NewRecorder()

	GetDashboardFunnel(mockService).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var stages []*domain.FunnelStage
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&stages))
	require.Len(t, stages, 2)
	assert.Equal(t, int64(4600), stages[0].Value)
}
