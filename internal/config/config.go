package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/hance08/kas/internal/log"
	"github.com/hance08/kas/internal/logic/aggregator"
	"github.com/hance08/kas/internal/snapshot"
	"github.com/shopspring/decimal"
)

type Config struct {
	Database   DatabaseConfig  `mapstructure:"database"`
	Defaults   DefaultsConfig  `mapstructure:"defaults"`
	User       UserConfig      `mapstructure:"user"`
	Remote     RemoteConfig    `mapstructure:"remote"`
	Budget     BudgetConfig    `mapstructure:"budget"`
	Analytics  AnalyticsConfig `mapstructure:"analytics"`
	Kinds      KindsConfig     `mapstructure:"kinds"`
	Log        LogConfig       `mapstructure:"log"`
	ConfigPath string          `mapstructure:"-"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type DefaultsConfig struct {
	Currency    string `mapstructure:"currency"`
	NumberStyle string `mapstructure:"number_style"`
	Timezone    string `mapstructure:"timezone"`
}

type UserConfig struct {
	ID string `mapstructure:"id"`
}

type RemoteConfig struct {
	BaseURL     string        `mapstructure:"base_url"`
	AccessToken string        `mapstructure:"access_token"`
	Timeout     time.Duration `mapstructure:"timeout"`
}

// BudgetConfig holds the usage percentages that colour budget cards.
type BudgetConfig struct {
	WarnPercent   float64 `mapstructure:"warn_percent"`
	DangerPercent float64 `mapstructure:"danger_percent"`
}

type AnalyticsConfig struct {
	Months int `mapstructure:"months"`
}

// KindsConfig extends the built-in kind token table.
type KindsConfig struct {
	Income  []string `mapstructure:"income"`
	Expense []string `mapstructure:"expense"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	// Format is "text" or "json".
	Format string `mapstructure:"format"`
}

const (
	NumberStyleID = "id"
	NumberStyleEN = "en"
)

func NewDefault() *Config {
	return &Config{
		Database: DatabaseConfig{Path: ""},
		Defaults: DefaultsConfig{Currency: "IDR", NumberStyle: NumberStyleID, Timezone: "Local"},
		Remote:   RemoteConfig{BaseURL: "http://localhost:8080/api/v1", Timeout: 15 * time.Second},
		Budget:   BudgetConfig{WarnPercent: 75, DangerPercent: 90},
		Analytics: AnalyticsConfig{
			Months: aggregator.DefaultMonths,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	cur := strings.TrimSpace(c.Defaults.Currency)
	if len(cur) != 3 || strings.ToUpper(cur) != cur || strings.IndexFunc(cur, func(r rune) bool { return r < 'A' || r > 'Z' }) >= 0 {
		errs = append(errs, fmt.Errorf("defaults.currency %q: must be a 3 letter upper-case code", c.Defaults.Currency))
	}

	switch c.Defaults.NumberStyle {
	case NumberStyleID, NumberStyleEN:
	default:
		errs = append(errs, fmt.Errorf("defaults.number_style %q: must be %q or %q", c.Defaults.NumberStyle, NumberStyleID, NumberStyleEN))
	}

	if _, err := time.LoadLocation(c.Defaults.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("defaults.timezone %q: %v", c.Defaults.Timezone, err))
	}

	if c.User.ID != "" {
		if _, err := uuid.Parse(c.User.ID); err != nil {
			errs = append(errs, fmt.Errorf("user.id %q: not a uuid", c.User.ID))
		}
	}

	if c.Remote.BaseURL != "" {
		u, err := url.Parse(c.Remote.BaseURL)
		if err != nil {
			errs = append(errs, fmt.Errorf("remote.base_url %q: %v", c.Remote.BaseURL, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			errs = append(errs, fmt.Errorf("remote.base_url %q: scheme must be http or https", c.Remote.BaseURL))
		}
	}
	if c.Remote.Timeout < 0 {
		errs = append(errs, fmt.Errorf("remote.timeout %s: must not be negative", c.Remote.Timeout))
	}

	if c.Budget.WarnPercent < 0 || c.Budget.DangerPercent < c.Budget.WarnPercent {
		errs = append(errs, fmt.Errorf("budget thresholds %v/%v: need 0 <= warn_percent <= danger_percent", c.Budget.WarnPercent, c.Budget.DangerPercent))
	}

	if c.Analytics.Months < 0 {
		errs = append(errs, fmt.Errorf("analytics.months %d: must not be negative", c.Analytics.Months))
	}

	if _, err := snapshot.NewKindTable(c.Kinds.Income, c.Kinds.Expense); err != nil {
		errs = append(errs, fmt.Errorf("kinds: %w", err))
	}

	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log.format %q: must be text or json", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}

// Location returns the configured timezone, falling back to local time.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Defaults.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

func (c *Config) Thresholds() aggregator.Thresholds {
	return aggregator.Thresholds{
		Warn:   decimal.NewFromFloat(c.Budget.WarnPercent),
		Danger: decimal.NewFromFloat(c.Budget.DangerPercent),
	}
}

// UserID returns the configured user id, or uuid.Nil when unset or invalid.
func (c *Config) UserID() uuid.UUID {
	id, err := uuid.Parse(c.User.ID)
	if err != nil {
		return uuid.Nil
	}
	return id
}
