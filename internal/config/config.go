package config

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/url"
	"os"
	"strings"
	"time"

	"campusEvents/internal/models"

	"github.com/ilyakaznacheev/cleanenv"
)

const MaxResultCap = 100

type Config struct {
	Env        string     `yaml:"env" env:"ENV" env-default:"local"`
	LogLevel   string     `yaml:"log_level" env:"LOG_LEVEL" env-default:"info"`
	StorageURL string     `yaml:"storage_url" env:"STORAGE_URL" env-required:"true"`
	HTTPServer HTTPServer `yaml:"http_server"`
	Events     Events     `yaml:"events"`
	Jira       Jira       `yaml:"jira"`
	Sync       Sync       `yaml:"sync"`
}

type HTTPServer struct {
	Address     string        `yaml:"address" env:"HTTP_ADDRESS" env-default:"localhost:8000"`
	Timeout     time.Duration `yaml:"timeout" env-default:"4s"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env-default:"60s"`
}

type Events struct {
	ResultCap int `yaml:"result_cap" env-default:"100"`
	// RejectPastDates makes POST /events refuse dates before the current time.
	// Synced events are never subject to it.
	RejectPastDates bool `yaml:"reject_past_dates" env:"EVENTS_REJECT_PAST_DATES" env-default:"false"`
}

type Jira struct {
	BaseURL           string        `yaml:"base_url" env:"JIRA_BASE_URL"`
	UserEmail         string        `yaml:"user_email" env:"JIRA_USER_EMAIL"`
	APIToken          string        `yaml:"api_token" env:"JIRA_API_TOKEN"`
	ProjectKey        string        `yaml:"project_key" env:"JIRA_PROJECT_KEY" env-default:"EV"`
	PageSize          int           `yaml:"page_size" env-default:"20"`
	Timeout           time.Duration `yaml:"timeout" env-default:"10s"`
	DateField         string        `yaml:"date_field" env-default:"customfield_10010"`
	LocationField     string        `yaml:"location_field" env-default:"customfield_10020"`
	DefaultVisibility string        `yaml:"default_visibility" env-default:"public"`
}

// Enabled reports whether enough is configured to talk to Jira.
func (j Jira) Enabled() bool {
	return j.BaseURL != "" && j.UserEmail != "" && j.APIToken != ""
}

type Sync struct {
	// Interval of the background sync loop, zero disables it.
	Interval time.Duration `yaml:"interval" env:"SYNC_INTERVAL" env-default:"0s"`
}

func MustLoad() *Config {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		log.Fatal("CONFIG_PATH is not set")
	}

	cfg, err := Load(configPath)
	if err != nil {
		log.Fatalf("cannot load config: %s", err)
	}

	return cfg
}

func Load(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	var cfg Config

	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		return nil, fmt.Errorf("cannot read config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error

	u, err := url.Parse(c.StorageURL)
	switch {
	case err != nil:
		errs = append(errs, fmt.Errorf("storage_url: %w", err))
	case u.Scheme != "postgres" && u.Scheme != "postgresql":
		errs = append(errs, fmt.Errorf("storage_url: unsupported scheme %q, expected postgres:// or postgresql://", u.Scheme))
	}

	if _, err := ParseLogLevel(c.LogLevel); err != nil {
		errs = append(errs, err)
	}

	if c.Events.ResultCap < 1 || c.Events.ResultCap > MaxResultCap {
		errs = append(errs, fmt.Errorf("events.result_cap must be between 1 and %d, got %d", MaxResultCap, c.Events.ResultCap))
	}

	if c.Jira.BaseURL != "" {
		u, err := url.Parse(c.Jira.BaseURL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			errs = append(errs, fmt.Errorf("jira.base_url must be an absolute http(s) URL, got %q", c.Jira.BaseURL))
		}
	}

	if !models.Visibility(c.Jira.DefaultVisibility).Valid() {
		errs = append(errs, fmt.Errorf("jira.default_visibility: unknown visibility %q", c.Jira.DefaultVisibility))
	}

	if c.Jira.PageSize < 1 {
		errs = append(errs, fmt.Errorf("jira.page_size must be positive, got %d", c.Jira.PageSize))
	}

	if c.Sync.Interval < 0 {
		errs = append(errs, fmt.Errorf("sync.interval must not be negative"))
	}

	return errors.Join(errs...)
}

func ParseLogLevel(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log_level: unknown level %q, expected one of debug, info, warn, error", level)
	}
}
