package bigquery

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/config"
	"google.golang.org/api/option"
)

// Client implementa warehouse.Client sobre o BigQuery.
type Client struct {
	bq  *bigquery.Client
	cfg config.Warehouse
}

var _ warehouse.Client = (*Client)(nil)

// NewClient cria o cliente do BigQuery com as credenciais configuradas.
// O cliente é criado uma única vez por processo e reutilizado (cache de
// conexão por injeção).
func NewClient(ctx context.Context, cfg config.Warehouse) (*Client, error) {
	if cfg.ProjectID == "" {
		return nil, errors.New("gcp_project_id não configurado")
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	bq, err := bigquery.NewClient(ctx, cfg.ProjectID, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar cliente do BigQuery")
	}

	return &Client{bq: bq, cfg: cfg}, nil
}

func (c *Client) Close() error {
	return c.bq.Close()
}
