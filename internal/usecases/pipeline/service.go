package pipeline

import (
	"context"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/generating"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/loading"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/log"
)

// RunParams parametriza uma execução completa gerar -> gravar CSV -> carregar.
type RunParams struct {
	Generating generating.Params
	OutputPath string
}

// Runner encadeia o gerador e o loader na ordem em que o pipeline roda.
type Runner interface {
	Run(ctx context.Context, params RunParams) (*domain.LoadReport, error)
}

type Service struct {
	generator generating.Generator
	loader    loading.Loader
}

func NewService(generator generating.Generator, loader loading.Loader) Runner {
	return &Service{
		generator: generator,
		loader:    loader,
	}
}

// Run gera o dataset, grava o arquivo intermediário e executa a carga
// full-replace. Qualquer erro interrompe a execução.
func (s *Service) Run(ctx context.Context, params RunParams) (*domain.LoadReport, error) {
	records, err := s.generator.Generate(params.Generating)
	if err != nil {
		return nil, err
	}

	summary := generating.Summarize(records)
	log.L.WithFields(log.Fields{
		"records":       summary.Records,
		"start_date":    summary.StartDate,
		"end_date":      summary.EndDate,
		"channels":      summary.Channels,
		"total_revenue": summary.TotalRevenue,
		"total_spend":   summary.TotalSpend,
		"roas":          summary.ROAS,
	}).Info("Dataset sintético gerado")

	if err := generating.WriteCSV(records, params.OutputPath); err != nil {
		return nil, err
	}

	return s.loader.Load(ctx, params.OutputPath)
}
