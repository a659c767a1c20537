package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/marketing-analytics-pipeline/infrastructure/warehouse/bigquery"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/config"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/generating"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/loading"
	"github.com/vfg2006/marketing-analytics-pipeline/internal/usecases/pipeline"
	"github.com/vfg2006/marketing-analytics-pipeline/pkg/utils"
)

const usage = `uso: pipeline <comando> [flags]

comandos:
  generate    gera o dataset sintético e grava o CSV
  load        carrega um CSV existente no warehouse (full-replace)
  run         executa generate + load em sequência
`

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	switch os.Args[1] {
	case "generate":
		err = runGenerate(cfg, os.Args[2:])
	case "load":
		err = runLoad(ctx, cfg, os.Args[2:])
	case "run":
		err = runFull(ctx, cfg, os.Args[2:])
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		logrus.Fatal(err)
	}
}

// generatorParams monta os parâmetros do gerador a partir das flags, cujos
// valores padrão vêm da configuração.
func generatorParams(startDate, endDate, channels string, seed int64) (generating.Params, error) {
	start, err := utils.ParseDate(startDate)
	if err != nil {
		return generating.Params{}, fmt.Errorf("data de início inválida %q: %w", startDate, err)
	}

	end, err := utils.ParseDate(endDate)
	if err != nil {
		return generating.Params{}, fmt.Errorf("data de fim inválida %q: %w", endDate, err)
	}

	params := generating.Params{
		StartDate: *start,
		EndDate:   *end,
		Seed:      seed,
	}

	if channels != "" {
		params.Channels = strings.Split(channels, ",")
	}

	return params, nil
}

// overrideTable troca a tabela de destino e rederiva a referência qualificada.
func overrideTable(cfg *config.Config, table string) {
	if table == "" || table == cfg.Warehouse.TableID {
		return
	}

	cfg.Warehouse.TableID = table
	cfg.Warehouse.TableRef = fmt.Sprintf(
		"%s.%s.%s",
		cfg.Warehouse.ProjectID,
		cfg.Warehouse.DatasetID,
		table,
	)
}

func runGenerate(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	startDate := fs.String("start-date", cfg.Generator.StartDate, "primeira data do dataset (YYYY-MM-DD)")
	endDate := fs.String("end-date", cfg.Generator.EndDate, "última data do dataset (YYYY-MM-DD)")
	channels := fs.String("channels", "", "canais separados por vírgula (vazio usa o conjunto padrão)")
	seed := fs.Int64("seed", cfg.Generator.Seed, "semente do gerador")
	output := fs.String("output", cfg.Generator.OutputPath, "caminho do CSV de saída")
	fs.Parse(args)

	params, err := generatorParams(*startDate, *endDate, *channels, *seed)
	if err != nil {
		return err
	}

	records, err := generating.NewService().Generate(params)
	if err != nil {
		return err
	}

	if err := generating.WriteCSV(records, *output); err != nil {
		return err
	}

	logSummary(generating.Summarize(records), *output)
	return nil
}

func runLoad(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("load", flag.ExitOnError)
	input := fs.String("input", cfg.Generator.OutputPath, "caminho do CSV a carregar")
	table := fs.String("table", cfg.Warehouse.TableID, "tabela de destino no warehouse")
	fs.Parse(args)

	overrideTable(cfg, *table)

	warehouseClient, err := bigquery.NewClient(ctx, cfg.Warehouse)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao BigQuery: %w", err)
	}
	defer warehouseClient.Close()

	report, err := loading.NewService(warehouseClient).Load(ctx, *input)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"table_ref": report.TableRef,
		"num_rows":  report.NumRows,
		"num_bytes": report.NumBytes,
	}).Info("Carga concluída com sucesso")
	return nil
}

func runFull(ctx context.Context, cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("run", flag.ExitOnError)
	startDate := fs.String("start-date", cfg.Generator.StartDate, "primeira data do dataset (YYYY-MM-DD)")
	endDate := fs.String("end-date", cfg.Generator.EndDate, "última data do dataset (YYYY-MM-DD)")
	channels := fs.String("channels", "", "canais separados por vírgula (vazio usa o conjunto padrão)")
	seed := fs.Int64("seed", cfg.Generator.Seed, "semente do gerador")
	output := fs.String("output", cfg.Generator.OutputPath, "caminho do CSV intermediário")
	table := fs.String("table", cfg.Warehouse.TableID, "tabela de destino no warehouse")
	fs.Parse(args)

	params, err := generatorParams(*startDate, *endDate, *channels, *seed)
	if err != nil {
		return err
	}

	overrideTable(cfg, *table)

	warehouseClient, err := bigquery.NewClient(ctx, cfg.Warehouse)
	if err != nil {
		return fmt.Errorf("erro ao conectar ao BigQuery: %w", err)
	}
	defer warehouseClient.Close()

	generatorService := generating.NewService()
	loaderService := loading.NewService(warehouseClient)

	report, err := pipeline.NewService(generatorService, loaderService).Run(ctx, pipeline.RunParams{
		Generating: params,
		OutputPath: *output,
	})
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"run_id":    report.RunID,
		"table_ref": report.TableRef,
		"num_rows":  report.NumRows,
	}).Info("Pipeline executado com sucesso")
	return nil
}

func logSummary(summary *generating.Summary, output string) {
	logrus.WithFields(logrus.Fields{
		"output":            output,
		"records":           summary.Records,
		"start_date":        summary.StartDate,
		"end_date":          summary.EndDate,
		"channels":          summary.Channels,
		"total_sessions":    summary.TotalSessions,
		"total_conversions": summary.TotalConversions,
		"total_revenue":     summary.TotalRevenue,
		"total_spend":       summary.TotalSpend,
		"roas":              summary.ROAS,
	}).Info("Dataset sintético gerado")
}
