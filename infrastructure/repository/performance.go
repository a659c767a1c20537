package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/civil"
	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/config"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
)

// PerformanceRepository é a leitura de linhas diárias de desempenho por
// período, ordenadas por data decrescente.
type PerformanceRepository interface {
	GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PerformanceRow, error)
}

type performanceRepository struct {
	querier warehouse.Querier
	cfg     config.Warehouse
}

func NewPerformanceRepository(querier warehouse.Querier, cfg config.Warehouse) PerformanceRepository {
	return &performanceRepository{
		querier: querier,
		cfg:     cfg,
	}
}

func (r *performanceRepository) GetByDateRange(ctx context.Context, startDate, endDate time.Time) ([]*domain.PerformanceRow, error) {
	query, args, err := squirrel.
		Select("date", "source AS marketing_source", "spend", "sessions", "conversions", "revenue").
		From(fmt.Sprintf("`%s`", r.cfg.TableRef)).
		Where(squirrel.GtOrEq{"date": civil.DateOf(startDate)}).
		Where(squirrel.LtOrEq{"date": civil.DateOf(endDate)}).
		OrderBy("date DESC").
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.querier.QueryPerformance(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar desempenho diário: %w", err)
	}

	return rows, nil
}
