package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	AppEnv   string `mapstructure:"APP_ENV"`
	Server   ServerConfig
	Store    StoreConfig
	Redis    RedisConfig
	Search   SearchConfig
	LogLevel string `mapstructure:"LOG_LEVEL"`
}

type ServerConfig struct {
	Port    string        `mapstructure:"SERVER_PORT"`
	Timeout time.Duration `mapstructure:"SERVER_TIMEOUT"`
}

type StoreConfig struct {
	Path   string `mapstructure:"STORE_PATH"`
	Prefix string `mapstructure:"STORE_PREFIX"`
}

type RedisConfig struct {
	Host     string `mapstructure:"REDIS_HOST"`
	Port     string `mapstructure:"REDIS_PORT"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

type SearchConfig struct {
	PageSize      int           `mapstructure:"SEARCH_PAGE_SIZE"`
	DebounceDelay time.Duration `mapstructure:"SEARCH_DEBOUNCE_DELAY"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, err
	}

	viper.AutomaticEnv()

	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_TIMEOUT", 30*time.Second)
	viper.SetDefault("STORE_PATH", "spaceflow.db")
	viper.SetDefault("STORE_PREFIX", "spaceflow")
	viper.SetDefault("REDIS_HOST", "localhost")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("SEARCH_PAGE_SIZE", 9)
	viper.SetDefault("SEARCH_DEBOUNCE_DELAY", 300*time.Millisecond)

	var cfg Config

	cfg.AppEnv = viper.GetString("APP_ENV")
	cfg.LogLevel = viper.GetString("LOG_LEVEL")

	cfg.Server.Port = viper.GetString("SERVER_PORT")
	cfg.Server.Timeout = viper.GetDuration("SERVER_TIMEOUT")

	cfg.Store.Path = viper.GetString("STORE_PATH")
	cfg.Store.Prefix = viper.GetString("STORE_PREFIX")

	cfg.Redis.Host = viper.GetString("REDIS_HOST")
	cfg.Redis.Port = viper.GetString("REDIS_PORT")
	cfg.Redis.Password = viper.GetString("REDIS_PASSWORD")
	cfg.Redis.DB = viper.GetInt("REDIS_DB")

	cfg.Search.PageSize = viper.GetInt("SEARCH_PAGE_SIZE")
	cfg.Search.DebounceDelay = viper.GetDuration("SEARCH_DEBOUNCE_DELAY")

	return &cfg, nil
}
