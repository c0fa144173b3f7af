// kbgen/cmd/kbgen/config.go

package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"rgehrsitz/kbgen/pkg/karabiner"
	"rgehrsitz/kbgen/pkg/logging"
	"rgehrsitz/kbgen/pkg/output"
	"rgehrsitz/kbgen/pkg/rules"
)

// Config represents the application configuration
type Config struct {
	Title          string
	LogLevel       string
	LogDestination string
	OutputPath     string
	OutputFormat   karabiner.Format
	OutputIndent   string
	RedisAddress   string
	RedisPassword  string
	RedisDB        int
	RedisKey       string
	RedisChannel   string
	RedisTimeout   time.Duration
}

// flagKeys binds command-line flags onto configuration keys.
var flagKeys = map[string]string{
	"title":      "ruleset.title",
	"log-level":  "logging.level",
	"log-output": "logging.output",
	"output":     "output.path",
	"format":     "output.format",
	"indent":     "output.indent",
	"redis":      "redis.address",
	"redis-key":  "redis.key",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ruleset.title", rules.DefaultTitle)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.output", "console")
	v.SetDefault("output.path", output.Stdout)
	v.SetDefault("output.format", string(karabiner.FormatJSON))
	v.SetDefault("output.indent", "")
	v.SetDefault("redis.address", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.database", 0)
	v.SetDefault("redis.key", "kbgen:ruleset")
	v.SetDefault("redis.channel", "kbgen_updates")
	v.SetDefault("redis.timeout", 5)
}

func parseConfig(cmd *cobra.Command, configFile string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("json")
	setDefaults(v)

	v.SetEnvPrefix("KBGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for name, key := range flagKeys {
		if f := cmd.Flags().Lookup(name); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("binding flag %s: %w", name, err)
			}
		}
	}

	if configFile == "" {
		v.SetConfigName("kbgen_config")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Join(xdg.ConfigHome, "kbgen"))
		v.AddConfigPath("$HOME/.kbgen")
	} else {
		v.SetConfigFile(configFile)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || configFile != "" {
			return nil, logging.NewError(logging.ErrorTypeConfig, "error reading config file", err,
				map[string]interface{}{"file": configFile})
		}
		logging.Logger.Debug().Msg("No configuration file found, using defaults")
	}

	format, err := karabiner.ParseFormat(v.GetString("output.format"))
	if err != nil {
		return nil, logging.NewError(logging.ErrorTypeConfig, "invalid output format", err, nil)
	}

	return &Config{
		Title:          v.GetString("ruleset.title"),
		LogLevel:       v.GetString("logging.level"),
		LogDestination: v.GetString("logging.output"),
		OutputPath:     v.GetString("output.path"),
		OutputFormat:   format,
		OutputIndent:   v.GetString("output.indent"),
		RedisAddress:   v.GetString("redis.address"),
		RedisPassword:  v.GetString("redis.password"),
		RedisDB:        v.GetInt("redis.database"),
		RedisKey:       v.GetString("redis.key"),
		RedisChannel:   v.GetString("redis.channel"),
		RedisTimeout:   time.Duration(v.GetInt("redis.timeout")) * time.Second,
	}, nil
}
