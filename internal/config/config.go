package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	API   APIConfig   `mapstructure:"api"`
	Input InputConfig `mapstructure:"input"`
	Fetch FetchConfig `mapstructure:"fetch"`
	Log   LogConfig   `mapstructure:"log"`
}

// APIConfig holds DeepSRT webhook configuration
type APIConfig struct {
	URL       string `mapstructure:"url"`
	Timeout   int    `mapstructure:"timeout"`
	UserAgent string `mapstructure:"user_agent"`
}

// InputConfig holds identifier source configuration
type InputConfig struct {
	File string `mapstructure:"file"`
}

// FetchConfig holds batch pacing and verbosity configuration
type FetchConfig struct {
	// Delay is the pause between consecutive requests, in seconds.
	Delay int `mapstructure:"delay"`
	// LogDetail selects per-request log verbosity: "basic" or "verbose".
	LogDetail string `mapstructure:"log_detail"`
}

// LogConfig holds logging sink configuration
type LogConfig struct {
	File     string `mapstructure:"file"`
	Level    string `mapstructure:"level"`
	Timezone string `mapstructure:"timezone"`
}

const (
	LogDetailBasic   = "basic"
	LogDetailVerbose = "verbose"
)

// Verbose reports whether raw request/response dumps should be emitted.
func (f FetchConfig) Verbose() bool {
	return strings.EqualFold(f.LogDetail, LogDetailVerbose)
}

// Load loads configuration from an optional config.yaml with environment
// variable overrides. A missing config file is not an error; defaults apply.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	setDefaults()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("api.url", "https://lic.deepsrt.cc/webhook/get-srt-from-provider")
	viper.SetDefault("api.timeout", 60)
	viper.SetDefault("api.user_agent", "SRTFetcherGo/1.0")

	viper.SetDefault("input.file", "video_ids.csv")

	viper.SetDefault("fetch.delay", 1)
	viper.SetDefault("fetch.log_detail", LogDetailBasic)

	viper.SetDefault("log.file", "srt_fetcher.log")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.timezone", "Asia/Shanghai")
}
