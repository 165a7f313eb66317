package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
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

type ExchangeRateAPI struct {
	URL               string  `mapstructure:"url"`
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
}

type RateCache struct {
	TTLSeconds int `mapstructure:"ttl_seconds"`
	// UnsupportedPolicy is "strict" or "passthrough".
	UnsupportedPolicy string `mapstructure:"unsupported_policy"`
}

func (c RateCache) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

type Scheduler struct {
	WarmIntervalSeconds int `mapstructure:"warm_interval_seconds"`
}

type Display struct {
	Locale string `mapstructure:"locale"`
}

type SettingsCache struct {
	MaxItems int64 `mapstructure:"max_items"`
}

type AppConfig struct {
	HTTPServer      HTTPServer      `mapstructure:"http_server"`
	DbServer        DbServer        `mapstructure:"db_server"`
	HTTPClient      HTTPClient      `mapstructure:"http_client"`
	Logging         Logging         `mapstructure:"logging"`
	ExchangeRateAPI ExchangeRateAPI `mapstructure:"exchange_rate_api"`
	RateCache       RateCache       `mapstructure:"rate_cache"`
	Scheduler       Scheduler       `mapstructure:"scheduler"`
	Display         Display         `mapstructure:"display"`
	SettingsCache   SettingsCache   `mapstructure:"settings_cache"`
}

// Init loads .env (when present) and the config file named by CONFIG_FILE, config.yaml by default.
func Init() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	path := os.Getenv("CONFIG_FILE")
	if path == "" {
		path = "config.yaml"
	}
	return Load(path)
}

func Load(path string) (*AppConfig, error) {
	var cfg AppConfig
	v := viper.New()

	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	v.SetDefault("http_server.port", "8080")
	v.SetDefault("db_server.max_conns", 10)
	v.SetDefault("http_client.timeout_seconds", 10)
	v.SetDefault("logging.level", "info")
	v.SetDefault("exchange_rate_api.url", "https://api.exchangerate-api.com/v4/latest/USD")
	v.SetDefault("exchange_rate_api.requests_per_second", 1)
	v.SetDefault("rate_cache.ttl_seconds", 3600)
	v.SetDefault("rate_cache.unsupported_policy", "strict")
	v.SetDefault("scheduler.warm_interval_seconds", 1800)
	v.SetDefault("display.locale", "en-US")
	v.SetDefault("settings_cache.max_items", 1024)

	// http server env vars
	_ = v.BindEnv("http_server.port", "HTTP_PORT")

	// db server env vars
	_ = v.BindEnv("db_server.host", "DB_HOST")
	_ = v.BindEnv("db_server.port", "DB_PORT")
	_ = v.BindEnv("db_server.user", "DB_USER")
	_ = v.BindEnv("db_server.pass", "DB_PASS")
	_ = v.BindEnv("db_server.name", "DB_NAME")
	_ = v.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = v.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	_ = v.BindEnv("logging.level", "LOG_LEVEL")
	_ = v.BindEnv("exchange_rate_api.url", "EXCHANGE_RATE_API_URL")
	_ = v.BindEnv("rate_cache.ttl_seconds", "RATE_CACHE_TTL_SECONDS")
	_ = v.BindEnv("rate_cache.unsupported_policy", "RATE_CACHE_UNSUPPORTED_POLICY")
	_ = v.BindEnv("display.locale", "DISPLAY_LOCALE")

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}
