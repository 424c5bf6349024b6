package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Precision int         `mapstructure:"precision"`
	Output    string      `mapstructure:"output"`
	Log       LogConfig   `mapstructure:"log"`
	Index     IndexConfig `mapstructure:"index"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type IndexConfig struct {
	Technique  string `mapstructure:"technique"`
	Precision  int    `mapstructure:"precision"`
	MaxRetries int    `mapstructure:"max_retries"`
}

var Cfg *Config

// New returns a viper instance with defaults, env binding and, when found, the
// config file loaded. path may be empty to search for geocell.yaml in the
// working directory.
func New(path string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault("precision", 12)
	v.SetDefault("output", "text")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("index.technique", "geohashing")
	v.SetDefault("index.precision", 6)
	v.SetDefault("index.max_retries", 3)

	v.SetEnvPrefix("GEOCELL")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("geocell")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		// a missing default file is fine, an explicit one is not
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %v", err)
		}
	}
	return v, nil
}

// Load reads the configuration into a Config.
func Load(path string) (*Config, error) {
	v, err := New(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %v", err)
	}
	return &cfg, nil
}

// InitConfig loads the configuration into Cfg.
func InitConfig(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}
