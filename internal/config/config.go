package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Assets AssetsConfig `mapstructure:"assets"`
	Loader LoaderConfig `mapstructure:"loader"`
	Render RenderConfig `mapstructure:"render"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// AssetsConfig selects where notes are read from. An empty Dir means the
// bundle embedded in the binary.
type AssetsConfig struct {
	Dir string `mapstructure:"dir"`
}

// LoaderConfig holds content loader tuning
type LoaderConfig struct {
	MaxParallelReads int `mapstructure:"max_parallel_reads"`
}

// RenderConfig holds detail screen rendering options
type RenderConfig struct {
	Format  string `mapstructure:"format"`
	Width   int    `mapstructure:"width"`
	Style   string `mapstructure:"style"`
	Outline bool   `mapstructure:"outline"`
}

// Load reads configuration from v. When configFile is empty, config.yaml is
// looked up in the current directory and a missing file is not an error.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	setDefaults(v)

	v.SetEnvPrefix("notes")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.Loader.MaxParallelReads < 1 {
		return nil, fmt.Errorf("loader.max_parallel_reads must be positive, got %d", config.Loader.MaxParallelReads)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")

	v.SetDefault("assets.dir", "")

	v.SetDefault("loader.max_parallel_reads", 4)

	v.SetDefault("render.format", "terminal")
	v.SetDefault("render.width", 80)
	v.SetDefault("render.style", "auto")
	v.SetDefault("render.outline", false)
}
