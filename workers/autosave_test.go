package workers

import (
	"conference-sim/domain"
	"conference-sim/services"
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type flakyStore struct {
	calls atomic.Int32
	saved chan domain.UserSnapshot
}

// SaveAll fails on the first call and reports every later one.
func (s *flakyStore) SaveAll(_ domain.EventSnapshot, users domain.UserSnapshot, _ domain.MessageSnapshot) error {
	if s.calls.Add(1) == 1 {
		return fmt.Errorf("disk full")
	}
	select {
	case s.saved <- users:
	default:
	}
	return nil
}

func TestAutosaveWorker_KeepsSavingAfterFailure(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	svc := services.NewConferenceService(
		services.NewEventManager(log),
		services.NewUserManager(log),
		services.NewMessenger(log),
		"1234",
		log,
	)
	req.NoError(svc.Register("alice", "pw"))
	store := &flakyStore{saved: make(chan domain.UserSnapshot, 1)}
	worker := NewAutosaveWorker(svc, store, 10*time.Millisecond, log)

	ctx, cancel := context.WithCancel(context.Background())
	errs := make(chan error, 1)
	go func() { errs <- worker.Run(ctx) }()

	select {
	case users := <-store.saved:
		req.Len(users.Users, 1)
	case <-time.After(time.Second):
		req.Fail("autosave never succeeded")
	}

	cancel()
	req.ErrorIs(<-errs, context.Canceled)
	req.GreaterOrEqual(store.calls.Load(), int32(2))
}
