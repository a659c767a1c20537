package insighting

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/repository"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/log"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/utils"
)

// Service implementa Insighter sobre o repositório de desempenho, com cache
// de resultados por período.
type Service struct {
	performanceRepo repository.PerformanceRepository
	cache           *resultCache
}

// NewService cria o serviço de insights com o TTL de cache configurado.
func NewService(performanceRepo repository.PerformanceRepository, cacheTTL time.Duration) *Service {
	return &Service{
		performanceRepo: performanceRepo,
		cache:           newResultCache(cacheTTL, time.Now),
	}
}

// WithClock troca o relógio do cache; usado pelos testes para controlar a
// expiração.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.cache = newResultCache(s.cache.ttl, now)
	return s
}

// fetchRows resolve as linhas do período via cache ou warehouse e aplica o
// filtro de canal em memória.
func (s *Service) fetchRows(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.PerformanceRow, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, fmt.Errorf("é necessário informar as datas de início e fim")
	}

	if filters.StartDate.After(*filters.EndDate) {
		return nil, fmt.Errorf("a data de início não pode ser posterior à data de fim")
	}

	key := cacheKey{
		startDate: filters.StartDate.Format(time.DateOnly),
		endDate:   filters.EndDate.Format(time.DateOnly),
	}

	rows, ok := s.cache.get(key)
	if !ok {
		var err error
		rows, err = s.performanceRepo.GetByDateRange(ctx, *filters.StartDate, *filters.EndDate)
		if err != nil {
			return nil, err
		}
		s.cache.put(key, rows)
	} else {
		log.ForContext(ctx).WithFields(log.Fields{
			"start_date": key.startDate,
			"end_date":   key.endDate,
		}).Debug("insights: cache hit for date range")
	}

	if !filters.HasChannelFilter() {
		return rows, nil
	}

	filtered := make([]*domain.PerformanceRow, 0, len(rows))
	for _, row := range rows {
		if row.MarketingSource == filters.Channel {
			filtered = append(filtered, row)
		}
	}

	return filtered, nil
}

// GetSummary agrega os totais do período e calcula ROAS, ROI% e CVR%.
// Resultado vazio não é erro: vira um estado "sem dados".
func (s *Service) GetSummary(ctx context.Context, filters *domain.DashboardFilters) (*domain.SummaryMetrics, error) {
	rows, err := s.fetchRows(ctx, filters)
	if err != nil {
		return nil, err
	}

	summary := &domain.SummaryMetrics{
		Records: len(rows),
		NoData:  len(rows) == 0,
	}

	days := make(map[string]struct{})
	channels := make(map[string]struct{})

	for _, row := range rows {
		summary.TotalSpend += row.Spend
		summary.TotalRevenue += row.Revenue
		summary.TotalConversions += row.Conversions
		summary.TotalSessions += row.Sessions

		days[row.Date.String()] = struct{}{}
		channels[row.MarketingSource] = struct{}{}
	}

	summary.Days = len(days)
	summary.Channels = len(channels)

	summary.ROAS = utils.RoundWithTwoDecimalPlace(
		domain.SafeRatio(summary.TotalRevenue, summary.TotalSpend))
	summary.ROIPercent = utils.RoundWithTwoDecimalPlace(
		domain.SafeRatio(summary.TotalRevenue-summary.TotalSpend, summary.TotalSpend) * 100)
	summary.CVRPercent = utils.RoundWithTwoDecimalPlace(
		domain.SafeRatio(float64(summary.TotalConversions), float64(summary.TotalSessions)) * 100)

	summary.TotalSpend = utils.RoundWithTwoDecimalPlace(summary.TotalSpend)
	summary.TotalRevenue = utils.RoundWithTwoDecimalPlace(summary.TotalRevenue)

	return summary, nil
}

// GetDailyTrend agrupa gasto, receita e conversões por dia, em ordem
// crescente de data para o gráfico de linha.
func (s *Service) GetDailyTrend(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.DailyTrendPoint, error) {
	rows, err := s.fetchRows(ctx, filters)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string]*domain.DailyTrendPoint)
	for _, row := range rows {
		date := row.Date.String()
		point, ok := byDate[date]
		if !ok {
			point = &domain.DailyTrendPoint{Date: date}
			byDate[date] = point
		}
		point.Spend += row.Spend
		point.Revenue += row.Revenue
		point.Conversions += row.Conversions
	}

	points := make([]*domain.DailyTrendPoint, 0, len(byDate))
	for _, point := range byDate {
		point.Spend = utils.RoundWithTwoDecimalPlace(point.Spend)
		point.Revenue = utils.RoundWithTwoDecimalPlace(point.Revenue)
		points = append(points, point)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return points, nil
}

// GetChannelSummaries agrupa as métricas por canal, em ordem crescente de
// receita para legibilidade do gráfico de barras.
func (s *Service) GetChannelSummaries(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.ChannelSummary, error) {
	summaries, err := s.aggregateByChannel(ctx, filters)
	if err != nil {
		return nil, err
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Revenue < summaries[j].Revenue
	})

	return summaries, nil
}

// GetRoasByChannel retorna o ROAS por canal em ordem crescente, com a faixa
// de cor de cada barra e a linha de referência fixa em 2.0.
func (s *Service) GetRoasByChannel(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.RoasEntry, error) {
	summaries, err := s.aggregateByChannel(ctx, filters)
	if err != nil {
		return nil, err
	}

	entries := make([]*domain.RoasEntry, 0, len(summaries))
	for _, summary := range summaries {
		entries = append(entries, &domain.RoasEntry{
			Channel: summary.Channel,
			ROAS:    summary.ROAS,
			Band:    domain.RoasBand(summary.ROAS),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ROAS < entries[j].ROAS
	})

	return entries, nil
}

// GetFunnel monta o funil de duas etapas sessões -> conversões.
func (s *Service) GetFunnel(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.FunnelStage, error) {
	rows, err := s.fetchRows(ctx, filters)
	if err != nil {
		return nil, err
	}

	var sessions, conversions int64
	for _, row := range rows {
		sessions += row.Sessions
		conversions += row.Conversions
	}

	return []*domain.FunnelStage{
		{Stage: "Sessions", Value: sessions, PercentOfFirst: 100},
		{
			Stage: "Conversions",
			Value: conversions,
			PercentOfFirst: utils.RoundWithTwoDecimalPlace(
				domain.SafeRatio(float64(conversions), float64(sessions)) * 100),
		},
	}, nil
}

// GetRecords retorna as linhas brutas do período (a query já ordena por data
// decrescente).
func (s *Service) GetRecords(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.PerformanceRow, error) {
	return s.fetchRows(ctx, filters)
}

func (s *Service) aggregateByChannel(ctx context.Context, filters *domain.DashboardFilters) ([]*domain.ChannelSummary, error) {
	rows, err := s.fetchRows(ctx, filters)
	if err != nil {
		return nil, err
	}

	byChannel := make(map[string]*domain.ChannelSummary)
	for _, row := range rows {
		summary, ok := byChannel[row.MarketingSource]
		if !ok {
			summary = &domain.ChannelSummary{Channel: row.MarketingSource}
			byChannel[row.MarketingSource] = summary
		}
		summary.Spend += row.Spend
		summary.Revenue += row.Revenue
		summary.Sessions += row.Sessions
		summary.Conversions += row.Conversions
	}

	summaries := make([]*domain.ChannelSummary, 0, len(byChannel))
	for _, summary := range byChannel {
		summary.ROAS = utils.RoundWithTwoDecimalPlace(
			domain.SafeRatio(summary.Revenue, summary.Spend))
		summary.Spend = utils.RoundWithTwoDecimalPlace(summary.Spend)
		summary.Revenue = utils.RoundWithTwoDecimalPlace(summary.Revenue)
		summaries = append(summaries, summary)
	}

	return summaries, nil
}
