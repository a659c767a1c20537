package generating

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/vfg2006/marketing-analytics-pipeline/internal/domain"
)

// WriteCSV grava o dataset no arquivo intermediário lido pelo loader,
// criando os diretórios intermediários quando necessário. Datas saem como
// YYYY-MM-DD e valores monetários com duas casas decimais.
func WriteCSV(records []*domain.DailyChannelRecord, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("erro ao criar diretório %q: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("erro ao criar arquivo %q: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(domain.CSVHeader); err != nil {
		return fmt.Errorf("erro ao escrever cabeçalho: %w", err)
	}

	for _, record := range records {
		row := []string{
			record.Date.Format(time.DateOnly),
			record.Channel,
			strconv.Itoa(record.Sessions),
			strconv.Itoa(record.Conversions),
			strconv.FormatFloat(record.Revenue, 'f', 2, 64),
			strconv.FormatFloat(record.Spend, 'f', 2, 64),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("erro ao escrever registro: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("erro ao finalizar escrita do CSV: %w", err)
	}

	return nil
}
