package loading

import (
	"context"
	"fmt"

	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/log"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/utils"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
)

// Loader executa a carga full-replace do dataset gerado no warehouse.
type Loader interface {
	Load(ctx context.Context, csvPath string) (*domain.LoadReport, error)
}

type Service struct {
	warehouse warehouse.Loader
}

func NewService(wh warehouse.Loader) Loader {
	return &Service{
		warehouse: wh,
	}
}

// Load garante que o dataset de destino existe e substitui todo o conteúdo da
// tabela pelas linhas do CSV. Qualquer falha na escrita é fatal para a
// execução; não há retry nem recuperação parcial, o warehouse garante a
// semântica tudo-ou-nada do job.
func (s *Service) Load(ctx context.Context, csvPath string) (*domain.LoadReport, error) {
	runID, err := utils.NewRunID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar ID da execução: %w", err)
	}

	logger := log.L.WithFields(log.Fields{
		"run_id": runID,
		"csv":    csvPath,
	})

	logger.Info("Iniciando carga no warehouse")

	if err := s.warehouse.EnsureDataset(ctx); err != nil {
		return nil, fmt.Errorf("erro ao garantir dataset de destino: %w", err)
	}

	stats, err := s.warehouse.LoadCSVFile(ctx, csvPath)
	if err != nil {
		return nil, fmt.Errorf("erro na carga do arquivo %q: %w", csvPath, err)
	}

	report := &domain.LoadReport{
		RunID:     runID,
		TableRef:  stats.TableRef,
		NumRows:   stats.NumRows,
		NumBytes:  stats.NumBytes,
		CreatedAt: stats.CreatedAt,
	}

	logger.WithFields(log.Fields{
		"table_ref": report.TableRef,
		"num_rows":  report.NumRows,
		"num_bytes": report.NumBytes,
	}).Info("Carga concluída")

	return report, nil
}
