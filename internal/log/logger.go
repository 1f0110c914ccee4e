// Package log provides the structured logger used across kas. It writes
// through pterm so diagnostics match the rest of the terminal output, and
// goes to stderr to keep command output clean.
package log

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
)

const (
	FieldComponent = "component"
	FieldError     = "error"
)

const (
	ComponentApp    = "app"
	ComponentStore  = "store"
	ComponentSync   = "sync"
	ComponentImport = "import"
)

type Config struct {
	Level  pterm.LogLevel
	Writer io.Writer
	JSON   bool
}

func DefaultConfig() Config {
	return Config{Level: pterm.LogLevelInfo, Writer: os.Stderr}
}

// Logger is a pterm logger carrying a fixed set of key/value fields.
type Logger struct {
	pl     *pterm.Logger
	fields []any
}

func New(cfg Config) *Logger {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}
	pl := pterm.DefaultLogger.WithLevel(cfg.Level).WithWriter(w)
	if cfg.JSON {
		pl = pl.WithFormatter(pterm.LogFormatterJSON).WithTime(false)
	}
	return &Logger{pl: pl}
}

// Nop discards everything.
func Nop() *Logger {
	return New(Config{Level: pterm.LogLevelDisabled, Writer: io.Discard})
}

func (l *Logger) With(args ...any) *Logger {
	fields := make([]any, 0, len(l.fields)+len(args))
	fields = append(fields, l.fields...)
	fields = append(fields, args...)
	return &Logger{pl: l.pl, fields: fields}
}

func (l *Logger) WithComponent(component string) *Logger {
	return l.With(FieldComponent, component)
}

func (l *Logger) Debug(msg string, args ...any) { l.pl.Debug(msg, l.args(args)) }
func (l *Logger) Info(msg string, args ...any)  { l.pl.Info(msg, l.args(args)) }
func (l *Logger) Warn(msg string, args ...any)  { l.pl.Warn(msg, l.args(args)) }
func (l *Logger) Error(msg string, args ...any) { l.pl.Error(msg, l.args(args)) }

func (l *Logger) args(args []any) []pterm.LoggerArgument {
	all := make([]any, 0, len(l.fields)+len(args))
	all = append(all, l.fields...)
	all = append(all, args...)
	return l.pl.Args(all...)
}

// ParseLevel maps a config level name to a pterm level. Empty means info.
func ParseLevel(s string) (pterm.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return pterm.LogLevelInfo, nil
	case "trace":
		return pterm.LogLevelTrace, nil
	case "debug":
		return pterm.LogLevelDebug, nil
	case "warn", "warning":
		return pterm.LogLevelWarn, nil
	case "error":
		return pterm.LogLevelError, nil
	case "off", "disabled":
		return pterm.LogLevelDisabled, nil
	default:
		return pterm.LogLevelInfo, fmt.Errorf("unknown level %q", s)
	}
}
