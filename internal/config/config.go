// Package config resolves runtime settings from defaults, an optional YAML
// file, ROSTER_* environment variables and command-line flags, in increasing
// order of precedence.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/msomdec/roster/internal/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Config holds the resolved settings.
type Config struct {
	LogLevel domain.LogLevel
	Store    string
	NoColor  bool
}

var defaults = map[string]any{
	"log-level": "debug",
	"store":     StoreMemory,
	"no-color":  false,
}

// Load resolves the configuration for cmd. A roster.yaml in the working
// directory is read when present; --config names an explicit file, which
// must then exist.
func Load(cmd *cobra.Command) (Config, error) {
	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	v.SetConfigName("roster")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if f := cmd.Flags().Lookup("config"); f != nil && f.Value.String() != "" {
		v.SetConfigFile(f.Value.String())
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	v.SetEnvPrefix("roster")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return Config{}, fmt.Errorf("bind flags: %w", err)
	}

	level, err := domain.ParseLogLevel(v.GetString("log-level"))
	if err != nil {
		return Config{}, err
	}

	store := strings.ToLower(v.GetString("store"))
	if store != StoreMemory && store != StoreSQLite {
		return Config{}, fmt.Errorf("%w: unknown store %q", domain.ErrInvalidInput, store)
	}

	return Config{LogLevel: level, Store: store, NoColor: v.GetBool("no-color")}, nil
}
