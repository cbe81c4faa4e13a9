// Package config loads settings for the zerrdemo CLI.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all zerrdemo settings.
type Config struct {
	Log      LogConfig
	Classify ClassifyConfig
}

// LogConfig selects the log level and encoder.
type LogConfig struct {
	Level  string
	Format string
}

// ClassifyConfig controls the classify subcommand. Seed 0 means seed from
// the clock.
type ClassifyConfig struct {
	From int
	To   int
	Seed int64
}

// Load reads settings from defaults, an optional config file and ZERRDEMO_*
// environment variables, lowest to highest precedence. An empty file falls
// back to zerrdemo.yaml in the working directory, which may be absent.
func Load(file string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("zerrdemo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, err
		}
	} else {
		v.SetConfigName("zerrdemo")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		_ = v.ReadInConfig()
	}

	var cfg Config
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Classify.From = v.GetInt("classify.from")
	cfg.Classify.To = v.GetInt("classify.to")
	cfg.Classify.Seed = v.GetInt64("classify.seed")
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("classify.from", -1)
	v.SetDefault("classify.to", 5)
	v.SetDefault("classify.seed", 0)
}
