// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	seedDemoData     = pflag.Bool("seed-demo-data", true, "Seeds the in-memory store with demo data")
	validLogLevels   = []string{"debug", "info", "warn", "error", "fatal"}
	validBackends    = []string{"memory", "sqlite", "postgres"}
	defaultMimeTypes = []string{"video/mp4", "video/mov", "video/avi", "video/quicktime"}
)

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")

	v.BindEnv("storage.backend", "storage_backend")
	v.BindEnv("storage.sqlite_path", "storage_sqlite_path")
	v.BindEnv("storage.postgres_dsn", "storage_postgres_dsn")

	v.BindEnv("upload.max_size", "upload_max_size")
	v.BindEnv("upload.allowed_types", "upload_allowed_types")
	v.BindEnv("upload.dir", "upload_dir")

	// Read once at startup. When unset the catalog client stays in
	// fallback-only mode instead of failing
	v.BindEnv("tmdb.api_key", "tmdb_api_key", "TMDB_API_KEY")

	v.BindEnv("match.delay_ms", "match_delay_ms")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)

	v.SetDefault("storage.backend", "memory")
	v.SetDefault("storage.sqlite_path", "cliptrace.db")

	v.SetDefault("upload.max_size", 100)
	v.SetDefault("upload.allowed_types", defaultMimeTypes)
	v.SetDefault("upload.dir", "uploads")

	v.SetDefault("match.delay_ms", 2000)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}

		// Every key has a usable default, so a missing file is fine
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	backend := v.GetString("storage.backend")
	if !slices.Contains(validBackends, backend) {
		return errors.New("invalid storage backend provided")
	}

	switch backend {
	case "sqlite":
		if v.GetString("storage.sqlite_path") == "" {
			return errors.New("sqlite path can't be empty")
		}
	case "postgres":
		if v.GetString("storage.postgres_dsn") == "" {
			return errors.New("postgres dsn can't be empty")
		}
	}

	if v.GetInt("upload.max_size") <= 0 {
		return errors.New("upload.max_size must be bigger than 0")
	}

	if v.GetInt("match.delay_ms") < 0 {
		return errors.New("match.delay_ms can't be negative")
	}

	if len(v.GetStringSlice("upload.allowed_types")) == 0 {
		zap.L().Warn("No upload.allowed_types specified, any video type will be accepted")
	}

	v.Set("app.seed_demo_data", *seedDemoData)
	v.Set("upload.max_size", v.GetInt64("upload.max_size")<<20)
	return nil
}
