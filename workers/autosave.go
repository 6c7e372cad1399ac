package workers

import (
	"conference-sim/services"
	"context"
	"log/slog"
	"time"
)

// AutosaveWorker periodically persists the conference so that a crash loses
// at most one interval of changes. Save failures are logged and retried at
// the next tick.
type AutosaveWorker struct {
	svc      services.IConferenceService
	store    services.ISnapshotStore
	interval time.Duration
	log      *slog.Logger
}

func NewAutosaveWorker(
	svc services.IConferenceService,
	store services.ISnapshotStore,
	interval time.Duration,
	log *slog.Logger,
) *AutosaveWorker {
	return &AutosaveWorker{svc: svc, store: store, interval: interval, log: log}
}

func (w *AutosaveWorker) Run(ctx context.Context) error {
	w.log.Debug("Starting autosave worker", "interval", w.interval)
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := w.svc.Save(w.store); err != nil {
				w.log.Warn("Autosave failed", "error", err)
				continue
			}
			w.log.Debug("Autosave complete")
		}
	}
}
