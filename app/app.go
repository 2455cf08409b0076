package app

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/evandalmeida/eDashboard/config"
	httpapi "github.com/evandalmeida/eDashboard/internal/api/http"
	"github.com/evandalmeida/eDashboard/internal/cj"
	"github.com/evandalmeida/eDashboard/internal/dashboard"
	"github.com/evandalmeida/eDashboard/internal/meta"
	"github.com/evandalmeida/eDashboard/internal/shopify"
	"github.com/evandalmeida/eDashboard/internal/warmer"
)

// App is the main application
type App struct {
	hs   *httpapi.Server
	svc  *dashboard.Service
	wrk  *warmer.Worker
	c    *config.Config
	once sync.Once
	done chan struct{}
}

// New returns a new instance of App
func New(c *config.Config) *App {
	return &App{
		c:    c,
		done: make(chan struct{}),
	}
}

// NewDashboard wires the three source clients into a dashboard service.
func NewDashboard(c *config.Config) (*dashboard.Service, error) {
	costs, err := cj.New(&c.CJ)
	if err != nil {
		return nil, fmt.Errorf("can't create cj client: %w", err)
	}
	svc, err := dashboard.New(&c.Dashboard, shopify.New(&c.Shopify), meta.New(&c.Meta), costs)
	if err != nil {
		return nil, fmt.Errorf("can't create dashboard service: %w", err)
	}
	return svc, nil
}

// Start starts the app
func (a *App) Start(ctx context.Context) error {
	var err error
	slog.Default().InfoContext(ctx, "starting eDashboard")

	a.svc, err = NewDashboard(a.c)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't create dashboard", slog.String("err", err.Error()))
		return err
	}

	a.wrk, err = warmer.New(&a.c.Warmer, a.svc)
	if err != nil {
		slog.Default().ErrorContext(ctx, "can't create warmer", slog.String("err", err.Error()))
		return err
	}
	if err = a.wrk.Start(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't start warmer", slog.String("err", err.Error()))
		return err
	}

	// start API server
	a.hs = httpapi.New(&a.c.HTTP)
	if err = a.hs.Start(ctx, a.svc); err != nil {
		slog.Default().ErrorContext(ctx, "cannot start http server", slog.String("err", err.Error()))
		return err
	}
	go func() {
		<-a.hs.Done()
		a.closeDone()
	}()

	return nil
}

// Stop stops the application and waits for all services to exit
func (a *App) Stop(ctx context.Context) {
	if a.wrk != nil && a.wrk.Enabled() {
		if err := a.wrk.Stop(); err != nil {
			slog.Default().WarnContext(ctx, "can't stop warmer", slog.String("err", err.Error()))
		}
	}
	if a.hs != nil {
		if err := a.hs.Stop(ctx); err != nil {
			slog.Default().ErrorContext(ctx, "can't stop http server", slog.String("err", err.Error()))
		}
		<-a.hs.Done()
	}
	a.closeDone()
}

func (a *App) closeDone() {
	a.once.Do(func() { close(a.done) })
}

// Done returns a channel that is closed after the application has exited
func (a *App) Done() chan struct{} {
	return a.done
}
