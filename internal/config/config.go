package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App          App          `mapstructure:",squash"`
	Server       Server       `mapstructure:",squash"`
	Warehouse    Warehouse    `mapstructure:",squash"`
	Generator    Generator    `mapstructure:",squash"`
	Dashboard    Dashboard    `mapstructure:",squash"`
	Auth         Auth         `mapstructure:",squash"`
	PipelineSync PipelineSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Warehouse reúne a configuração do destino no BigQuery. TableRef é derivado
// (project.dataset.table) e não vem do ambiente.
type Warehouse struct {
	ProjectID       string `mapstructure:"gcp_project_id"`
	CredentialsPath string `mapstructure:"gcp_credentials_path"`
	DatasetID       string `mapstructure:"bq_dataset"`
	TableID         string `mapstructure:"bq_table"`
	Location        string `mapstructure:"bq_location"`
	TableRef        string `mapstructure:"-"`
}

type Generator struct {
	StartDate  string `mapstructure:"generator_start_date"`
	EndDate    string `mapstructure:"generator_end_date"`
	Seed       int64  `mapstructure:"generator_seed"`
	OutputPath string `mapstructure:"generator_output_path"`
}

type Dashboard struct {
	CacheTTLSeconds int `mapstructure:"dashboard_cache_ttl_seconds"`
}

type Auth struct {
	Secret           string `mapstructure:"auth_secret"`
	OperatorUser     string `mapstructure:"auth_operator_user"`
	OperatorPassHash string `mapstructure:"auth_operator_password_hash"`
}

type PipelineSync struct {
	CronSchedule string `mapstructure:"pipeline_sync_cron"`
	Enabled      bool   `mapstructure:"pipeline_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("LOG_LEVEL", "debug")

	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("GCP_PROJECT_ID", "")
	viper.SetDefault("GCP_CREDENTIALS_PATH", "credentials.json")
	viper.SetDefault("BQ_DATASET", "marketing_raw")
	viper.SetDefault("BQ_TABLE", "daily_performance")
	viper.SetDefault("BQ_LOCATION", "US")

	viper.SetDefault("GENERATOR_START_DATE", "2024-09-01")
	viper.SetDefault("GENERATOR_END_DATE", "2024-11-23")
	viper.SetDefault("GENERATOR_SEED", 42)
	viper.SetDefault("GENERATOR_OUTPUT_PATH", "data/raw/marketing_data.csv")

	// Cache de resultados do dashboard (5 minutos)
	viper.SetDefault("DASHBOARD_CACHE_TTL_SECONDS", 300)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")
	viper.SetDefault("AUTH_OPERATOR_USER", "admin")
	viper.SetDefault("AUTH_OPERATOR_PASSWORD_HASH", "")

	// Reprocessamento agendado do pipeline (desligado por padrão)
	viper.SetDefault("PIPELINE_SYNC_CRON", "0 2 * * *")
	viper.SetDefault("PIPELINE_SYNC_ENABLED", false)
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Warehouse.TableRef = fmt.Sprintf(
		"%s.%s.%s",
		config.Warehouse.ProjectID,
		config.Warehouse.DatasetID,
		config.Warehouse.TableID,
	)

	return config, nil
}

// loadEnvFile tenta carregar o .env das localizações usuais do projeto.
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado de:", location)
			return
		}
	}

	logrus.Warn("Nenhum arquivo .env encontrado, usando apenas variáveis de ambiente")
}
