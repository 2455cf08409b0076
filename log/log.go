package log

import (
	"io"
	"log/slog"
	"os"
)

// Config controls the process-wide slog logger.
type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
}

// New builds a JSON logger writing to w. A nil writer means stdout.
func New(c *Config, w io.Writer) *slog.Logger {
	if w == nil {
		w = os.Stdout
	}
	if c == nil {
		c = &Config{}
	}
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.Level(c.Level),
		AddSource: c.AddSource,
	}))
}

// Setup installs a logger writing to w as slog's default and returns it.
func Setup(c *Config, w io.Writer) *slog.Logger {
	l := New(c, w)
	slog.SetDefault(l)
	return l
}
