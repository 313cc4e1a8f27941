package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Checklist specifics
	Storage   StorageConfig
	Calendar  CalendarConfig
	Import    ImportConfig
	Navigator NavigatorConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

const (
	StorageDriverFile   = "file"
	StorageDriverSQLite = "sqlite"
)

type StorageConfig struct {
	Driver     string // file | sqlite
	DataDir    string
	SQLitePath string
	CacheSize  int
	Watch      bool // invalidate cache entries when files change on disk; file driver only
}

type CalendarConfig struct {
	Timezone string // IANA name used to decide the current week
}

type ImportConfig struct {
	MaxBodyBytes    int64
	RateLimitPerMin int
}

type NavigatorConfig struct {
	LinksFile string // empty means the built-in catalogue
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, . and /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ReadTimeout = viper.GetDuration("http_server.read_timeout")
	cfg.HTTPServer.WriteTimeout = viper.GetDuration("http_server.write_timeout")
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.DataDir = expandEnvVar(viper.GetString("storage.data_dir"))
	cfg.Storage.SQLitePath = expandEnvVar(viper.GetString("storage.sqlite_path"))
	cfg.Storage.CacheSize = viper.GetInt("storage.cache_size")
	cfg.Storage.Watch = viper.GetBool("storage.watch")

	cfg.Calendar.Timezone = viper.GetString("calendar.timezone")

	cfg.Import.MaxBodyBytes = viper.GetInt64("import.max_body_bytes")
	cfg.Import.RateLimitPerMin = viper.GetInt("import.rate_limit_per_min")

	cfg.Navigator.LinksFile = expandEnvVar(viper.GetString("navigator.links_file"))

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects settings the server cannot start with.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.HTTPServer.Port <= 0 || cfg.HTTPServer.Port > 65535 {
		errs = append(errs, fmt.Errorf("http_server.port out of range: %d", cfg.HTTPServer.Port))
	}
	switch cfg.Storage.Driver {
	case StorageDriverFile:
		if strings.TrimSpace(cfg.Storage.DataDir) == "" {
			errs = append(errs, errors.New("storage.data_dir is required"))
		}
	case StorageDriverSQLite:
		if strings.TrimSpace(cfg.Storage.SQLitePath) == "" {
			errs = append(errs, errors.New("storage.sqlite_path is required"))
		}
	default:
		errs = append(errs, fmt.Errorf("storage.driver must be %q or %q: %q", StorageDriverFile, StorageDriverSQLite, cfg.Storage.Driver))
	}
	if cfg.Storage.CacheSize <= 0 {
		errs = append(errs, fmt.Errorf("storage.cache_size must be positive: %d", cfg.Storage.CacheSize))
	}
	if _, err := time.LoadLocation(cfg.Calendar.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("calendar.timezone: %w", err))
	}
	if cfg.Import.MaxBodyBytes < 0 {
		errs = append(errs, fmt.Errorf("import.max_body_bytes must not be negative: %d", cfg.Import.MaxBodyBytes))
	}
	if cfg.Import.RateLimitPerMin < 0 {
		errs = append(errs, fmt.Errorf("import.rate_limit_per_min must not be negative: %d", cfg.Import.RateLimitPerMin))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.read_timeout", "15s")
	viper.SetDefault("http_server.write_timeout", "15s")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("storage.driver", StorageDriverFile)
	viper.SetDefault("storage.data_dir", "data/checklists")
	viper.SetDefault("storage.sqlite_path", "data/checklists.db")
	viper.SetDefault("storage.cache_size", 1024)
	viper.SetDefault("storage.watch", false)
	viper.SetDefault("calendar.timezone", "Local")
	viper.SetDefault("import.max_body_bytes", 1<<20) // 1 MiB
	viper.SetDefault("import.rate_limit_per_min", 60)
	viper.SetDefault("navigator.links_file", "")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	// Check if value is in format ${VAR_NAME}
	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		return ""
	}

	return os.Expand(value, func(name string) string {
		return os.Getenv(name)
	})
}
