package warehouse

import (
	"context"
	"time"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
)

// TableStats resume os metadados da tabela de destino após uma carga.
type TableStats struct {
	TableRef  string
	NumRows   uint64
	NumBytes  int64
	CreatedAt time.Time
}

// Loader é a capacidade de escrita no warehouse: garantir o dataset de
// destino e executar uma carga full-replace a partir de um CSV.
type Loader interface {
	EnsureDataset(ctx context.Context) error
	LoadCSVFile(ctx context.Context, csvPath string) (*TableStats, error)
}

// Querier executa a query parametrizada de leitura do dashboard.
type Querier interface {
	QueryPerformance(ctx context.Context, query string, args []interface{}) ([]*domain.PerformanceRow, error)
}

// Client é a capacidade completa "me dê um cliente de warehouse". A resolução
// de credenciais fica inteiramente atrás dessa interface.
type Client interface {
	Loader
	Querier
	Close() error
}
