package insighting

import (
	"context"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
)

// Insighter expõe as agregações consumidas pelo dashboard. Todas as
// operações partilham a mesma query cacheada por período; o filtro de canal
// é aplicado em memória.
type Insighter interface {
	// GetSummary retorna os totais e as razões derivadas do período
	GetSummary(ctx context.Context, filters *domain.DashboardFilters) (*domain.SummaryMetrics, error)

	// GetDailyTrend retorna a série diária de gasto/receita/conversões
	GetDailyTrend(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.DailyTrendPoint, error)

	// GetChannelSummaries retorna o desempenho agregado por canal
	GetChannelSummaries(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.ChannelSummary, error)

	// GetRoasByChannel retorna o ROAS por canal com a faixa de cor de cada barra
	GetRoasByChannel(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.RoasEntry, error)

	// GetFunnel retorna o funil sessões -> conversões
	GetFunnel(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.FunnelStage, error)

	// GetRecords retorna as linhas brutas ordenadas por data decrescente
	GetRecords(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.PerformanceRow, error)
}
