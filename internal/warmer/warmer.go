package warmer

import (
	"context"
	"fmt"
	"time"

	"github.com/evandalmeida/eDashboard/internal/dependency"
	"github.com/evandalmeida/eDashboard/internal/entity"
)

// Config holds configuration for the dashboard warm-up worker.
type Config struct {
	WorkerInterval time.Duration `mapstructure:"worker_interval"` // 0 disables the worker
	Basis          string        `mapstructure:"basis"`
}

// DefaultConfig returns default configuration values.
func DefaultConfig() Config {
	return Config{
		WorkerInterval: 0,
		Basis:          string(entity.BasisTotalPrice),
	}
}

// Worker periodically builds the default-range dashboard so the fulfillment
// cost cache holds a recent copy when the cost API starts rate limiting.
type Worker struct {
	svc   dependency.Dashboard
	c     *Config
	basis entity.RevenueBasis
	ctx   context.Context
	stop  context.CancelFunc
}

// New creates a new warm-up worker.
func New(c *Config, svc dependency.Dashboard) (*Worker, error) {
	if c == nil {
		dc := DefaultConfig()
		c = &dc
	}
	basis, err := entity.ParseRevenueBasis(c.Basis)
	if err != nil {
		return nil, fmt.Errorf("warmer: %w", err)
	}
	return &Worker{
		svc:   svc,
		c:     c,
		basis: basis,
	}, nil
}

// Enabled reports whether an interval is configured.
func (w *Worker) Enabled() bool {
	return w.c.WorkerInterval > 0
}

// Start starts the worker. It is a no-op when the worker is disabled.
func (w *Worker) Start(ctx context.Context) error {
	if !w.Enabled() {
		return nil
	}
	if w.ctx != nil && w.stop != nil {
		return fmt.Errorf("warmer already started")
	}
	w.ctx, w.stop = context.WithCancel(ctx)
	go w.worker(w.ctx)
	return nil
}

// Stop stops the worker.
func (w *Worker) Stop() error {
	if w.stop == nil {
		return fmt.Errorf("warmer already stopped or not started")
	}
	w.stop()
	w.stop = nil
	w.ctx = nil
	return nil
}
