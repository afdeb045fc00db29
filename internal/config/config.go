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
	App             App             `mapstructure:",squash"`
	Server          Server          `mapstructure:",squash"`
	Database        Database        `mapstructure:",squash"`
	Warehouse       Warehouse       `mapstructure:",squash"`
	Chat            Chat            `mapstructure:",squash"`
	DailyReportSync DailyReportSync `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Warehouse identifica o dataset de onde os fatos diários são lidos. O
// identificador é passado explicitamente para os repositórios via
// construtor; nenhum código de cálculo lê ambiente diretamente.
type Warehouse struct {
	Schema string `mapstructure:"warehouse_schema"`
}

// Chat configura a entrega de relatórios via webhook
type Chat struct {
	Enabled        bool `mapstructure:"chat_enabled"`
	TimeoutSeconds int  `mapstructure:"chat_timeout_seconds"`
}

// DailyReportSync configura o job agendado de geração e push dos
// relatórios diários (T-1)
type DailyReportSync struct {
	CronSchedule      string `mapstructure:"daily_report_sync_cron"`
	MaxConcurrentJobs int    `mapstructure:"daily_report_sync_max_concurrent_jobs"`
	Enabled           bool   `mapstructure:"daily_report_sync_enabled"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/commerce_report")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("WAREHOUSE_SCHEMA", "datalake")

	viper.SetDefault("CHAT_ENABLED", false)
	viper.SetDefault("CHAT_TIMEOUT_SECONDS", 10)

	// Defaults do job diário de relatórios
	viper.SetDefault("DAILY_REPORT_SYNC_CRON", "0 9 * * *") // Todos os dias às 9h
	viper.SetDefault("DAILY_REPORT_SYNC_MAX_CONCURRENT_JOBS", 3)
	viper.SetDefault("DAILY_REPORT_SYNC_ENABLED", false)

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
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

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
