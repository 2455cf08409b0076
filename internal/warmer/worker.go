package warmer

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

func (w *Worker) worker(ctx context.Context) {
	if err := w.warm(ctx); err != nil {
		slog.Default().ErrorContext(ctx, "can't warm dashboard", slog.String("err", err.Error()))
	}

	ticker := time.NewTicker(w.c.WorkerInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := w.warm(ctx); err != nil {
				slog.Default().ErrorContext(ctx, "can't warm dashboard", slog.String("err", err.Error()))
			}
		case <-ctx.Done():
			return
		}
	}
}

func (w *Worker) warm(ctx context.Context) error {
	r := w.svc.DefaultRange()
	d, err := w.svc.Build(ctx, r, w.basis)
	if err != nil {
		return fmt.Errorf("can't build %s: %w", r, err)
	}

	failed := 0
	for _, st := range d.Sources {
		if !st.OK {
			failed++
		}
	}
	slog.Default().InfoContext(ctx, "dashboard warmed",
		slog.String("run_id", d.RunID),
		slog.String("range", r.String()),
		slog.Int("notices", len(d.Notices)),
		slog.Int("failed_sources", failed),
	)
	return nil
}
