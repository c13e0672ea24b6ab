package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	SourceFile     = "file"
	SourceHTTP     = "http"
	SourcePostgres = "postgres"
)

type HTTPServer struct {
	Port               string `mapstructure:"port"`
	ShutdownTimeoutSec int    `mapstructure:"shutdown_timeout_sec"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
	Migrate  bool   `mapstructure:"migrate"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

// InterestRates selects where the reference interest rate table is loaded from.
type InterestRates struct {
	Source string `mapstructure:"source"`
	Path   string `mapstructure:"path"`
	URL    string `mapstructure:"url"`
}

type Scheduler struct {
	ReloadIntervalSec int `mapstructure:"reload_interval_sec"`
}

type Cache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type AppConfig struct {
	HTTPServer    HTTPServer    `mapstructure:"http_server"`
	DbServer      DbServer      `mapstructure:"db_server"`
	HTTPClient    HTTPClient    `mapstructure:"http_client"`
	Logging       Logging       `mapstructure:"logging"`
	InterestRates InterestRates `mapstructure:"interest_rates"`
	Scheduler     Scheduler     `mapstructure:"scheduler"`
	Cache         Cache         `mapstructure:"cache"`
}

var ErrUnknownSource = errors.New("unknown interest rates source")

// Init reads the YAML config at path, then applies environment overrides. A missing
// .env file is not an error.
func Init(path string) (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("http_server.shutdown_timeout_sec", 10)
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("interest_rates.source", SourceFile)
	v.SetDefault("interest_rates.path", "data/short-term-interest.sample.csv")
	v.SetDefault("scheduler.reload_interval_sec", 6*60*60)
	v.SetDefault("cache.max_items", 10_000)

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")
	_ = v.BindEnv("db_server.migrate", "DB_MIGRATE")

	_ = v.BindEnv("http_server.port", "HTTP_PORT")
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")
	_ = v.BindEnv("logging.level", "LOG_LEVEL")

	// interest rates env vars
	_ = v.BindEnv("interest_rates.source", "INTEREST_RATES_SOURCE")
	_ = v.BindEnv("interest_rates.path", "INTEREST_RATES_PATH")
	_ = v.BindEnv("interest_rates.url", "INTEREST_RATES_URL")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	switch cfg.InterestRates.Source {
	case SourceFile, SourceHTTP, SourcePostgres:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.InterestRates.Source)
	}

	return &cfg, nil
}
