package bigquery

import (
	"context"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"google.golang.org/api/iterator"
)

// QueryPerformance executa a query de leitura do dashboard com parâmetros
// posicionais e materializa todas as linhas do resultado.
func (c *Client) QueryPerformance(ctx context.Context, query string, args []interface{}) ([]*domain.PerformanceRow, error) {
	q := c.bq.Query(query)

	params := make([]bigquery.QueryParameter, 0, len(args))
	for _, arg := range args {
		params = append(params, bigquery.QueryParameter{Value: arg})
	}
	q.Parameters = params

	it, err := q.Read(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao executar query no warehouse")
	}

	rows := make([]*domain.PerformanceRow, 0)
	for {
		var row domain.PerformanceRow
		err := it.Next(&row)
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "erro ao iterar resultado da query")
		}
		rows = append(rows, &row)
	}

	return rows, nil
}
