package bigquery

import (
	"context"
	"net/http"
	"os"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/log"
	"google.golang.org/api/googleapi"
)

// EnsureDataset garante que o dataset de destino existe, criando-o na região
// configurada quando a consulta de metadados responde "not found". Qualquer
// outra falha de metadados é terminal.
func (c *Client) EnsureDataset(ctx context.Context) error {
	dataset := c.bq.Dataset(c.cfg.DatasetID)

	_, err := dataset.Metadata(ctx)
	if err == nil {
		log.L.WithField("dataset", c.cfg.DatasetID).Info("Dataset já existe")
		return nil
	}

	if !isNotFound(err) {
		return errors.Wrapf(err, "erro ao consultar metadados do dataset %q", c.cfg.DatasetID)
	}

	if err := dataset.Create(ctx, &bigquery.DatasetMetadata{Location: c.cfg.Location}); err != nil {
		return errors.Wrapf(err, "erro ao criar dataset %q", c.cfg.DatasetID)
	}

	log.L.WithFields(log.Fields{
		"dataset":  c.cfg.DatasetID,
		"location": c.cfg.Location,
	}).Info("Dataset criado")

	return nil
}

// LoadCSVFile executa uma carga full-replace (truncate-and-write) do CSV na
// tabela de destino, deixando o BigQuery inferir o schema. A chamada bloqueia
// até o job terminar e então retorna os metadados da tabela.
func (c *Client) LoadCSVFile(ctx context.Context, csvPath string) (*warehouse.TableStats, error) {
	f, err := os.Open(csvPath)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir arquivo %q", csvPath)
	}
	defer f.Close()

	source := bigquery.NewReaderSource(f)
	source.SourceFormat = bigquery.CSV
	source.AutoDetect = true

	table := c.bq.Dataset(c.cfg.DatasetID).Table(c.cfg.TableID)

	loader := table.LoaderFrom(source)
	loader.WriteDisposition = bigquery.WriteTruncate

	job, err := loader.Run(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao iniciar job de carga")
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao aguardar job de carga")
	}
	if err := status.Err(); err != nil {
		return nil, errors.Wrap(err, "job de carga terminou com erro")
	}

	md, err := table.Metadata(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao consultar metadados da tabela após a carga")
	}

	return &warehouse.TableStats{
		TableRef:  c.cfg.TableRef,
		NumRows:   md.NumRows,
		NumBytes:  md.NumBytes,
		CreatedAt: md.CreationTime,
	}, nil
}

// isNotFound identifica o caso normal "dataset ainda não existe".
func isNotFound(err error) bool {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusNotFound
	}
	return false
}
