package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	BaseURL        string
	Timeout        time.Duration
	ReloadDelay    time.Duration
	PrintDir       string
	ExportDir      string
	LogLevel       string
	Username       string
	Password       string
	AssumeYes      bool
	MetricsEnabled bool
}

// Load reads HRDESK_* environment variables, an optional .env file and an
// optional hrdesk.yaml in the working directory. Environment wins.
func Load() Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("hrdesk")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("HRDESK")
	v.AutomaticEnv()

	v.SetDefault("base_url", "http://127.0.0.1:5000")
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("reload_delay", 700*time.Millisecond)
	v.SetDefault("print_dir", "storage/receipts")
	v.SetDefault("export_dir", "storage/exports")
	v.SetDefault("log_level", "info")
	v.SetDefault("username", "")
	v.SetDefault("password", "")
	v.SetDefault("assume_yes", false)
	v.SetDefault("metrics_enabled", true)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			slog.Warn("config file ignored", "err", err)
		}
	}

	return Config{
		BaseURL:        strings.TrimRight(v.GetString("base_url"), "/"),
		Timeout:        v.GetDuration("timeout"),
		ReloadDelay:    v.GetDuration("reload_delay"),
		PrintDir:       v.GetString("print_dir"),
		ExportDir:      v.GetString("export_dir"),
		LogLevel:       strings.ToLower(v.GetString("log_level")),
		Username:       v.GetString("username"),
		Password:       v.GetString("password"),
		AssumeYes:      v.GetBool("assume_yes"),
		MetricsEnabled: v.GetBool("metrics_enabled"),
	}
}

func (c Config) Validate() error {
	parsed, err := url.Parse(c.BaseURL)
	if err != nil || parsed.Host == "" || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return fmt.Errorf("HRDESK_BASE_URL must be an absolute http(s) URL, got %q", c.BaseURL)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("HRDESK_TIMEOUT must be positive")
	}
	if c.ReloadDelay < 0 {
		return fmt.Errorf("HRDESK_RELOAD_DELAY must not be negative")
	}
	if strings.TrimSpace(c.PrintDir) == "" {
		return fmt.Errorf("HRDESK_PRINT_DIR is required")
	}
	if strings.TrimSpace(c.ExportDir) == "" {
		return fmt.Errorf("HRDESK_EXPORT_DIR is required")
	}
	if _, ok := logLevels[c.LogLevel]; !ok {
		return fmt.Errorf("HRDESK_LOG_LEVEL must be one of debug, info, warn, error")
	}
	if (c.Username == "") != (c.Password == "") {
		return fmt.Errorf("HRDESK_USERNAME and HRDESK_PASSWORD must be set together")
	}
	return nil
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func (c Config) SlogLevel() slog.Level {
	if level, ok := logLevels[c.LogLevel]; ok {
		return level
	}
	return slog.LevelInfo
}
