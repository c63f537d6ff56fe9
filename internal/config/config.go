package config

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	API    API    `mapstructure:"api"`
	Stream Stream `mapstructure:"stream"`
	Logger Logger `mapstructure:"logger"`
}

// API holds the configuration for the Lukrum Models API.
type API struct {
	BaseURL        string        `mapstructure:"base_url"`
	ApiKey         string        `mapstructure:"api_key"`
	Timeout        time.Duration `mapstructure:"timeout"`
	RateLimit      float64       `mapstructure:"rate_limit"`
	RateLimitBurst int           `mapstructure:"rate_limit_burst"`
}

// Stream holds the configuration for the trade-event aggregation.
type Stream struct {
	PageSize   int      `mapstructure:"page_size"`
	MaxWorkers int      `mapstructure:"max_workers"`
	StartDate  string   `mapstructure:"start_date"`
	Active     bool     `mapstructure:"active"`
	ModelUUIDs []string `mapstructure:"model_uuids"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file,
	// e.g. LUKRUM_API_API_KEY overrides api.api_key.
	viper.SetEnvPrefix("lukrum")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("api.timeout", "30s")
	viper.SetDefault("api.rate_limit", 10) // requests per second
	viper.SetDefault("api.rate_limit_burst", 5)
	viper.SetDefault("stream.page_size", 500)
	viper.SetDefault("stream.max_workers", 8)
	viper.SetDefault("stream.active", true)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
