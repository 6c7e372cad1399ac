package workers

import (
	"conference-sim/contract"
	"conference-sim/errors"
	"context"
	"log/slog"
	"sync"
	"time"
)

const defaultRestartDelay = 200 * time.Millisecond

var _ contract.ISupervisor = (*Supervisor)(nil)

// Supervisor keeps background jobs such as autosave alive for the lifetime
// of a conference session. A job that panics or fails is started again
// after restartDelay; a job returning nil is done for good.
type Supervisor struct {
	restartDelay time.Duration
	stop         chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup
	log          *slog.Logger
	workers      []contract.Worker
}

func NewSupervisor(log *slog.Logger) *Supervisor {
	return &Supervisor{
		restartDelay: defaultRestartDelay,
		stop:         make(chan struct{}),
		log:          log,
	}
}

func (s *Supervisor) Add(worker ...contract.Worker) contract.ISupervisor {
	s.workers = append(s.workers, worker...)
	return s
}

// Run blocks until every worker has returned. It ends the workers when ctx
// is cancelled or Stop is called, whichever comes first.
func (s *Supervisor) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go func() {
		select {
		case <-s.stop:
			cancel()
		case <-ctx.Done():
		}
	}()

	for _, worker := range s.workers {
		s.wg.Add(1)
		go s.supervise(ctx, worker)
	}
	s.wg.Wait()
}

// Stop may be called from any goroutine, before or during Run, and more than once.
func (s *Supervisor) Stop() {
	s.stopOnce.Do(func() { close(s.stop) })
}

func (s *Supervisor) supervise(ctx context.Context, worker contract.Worker) {
	defer s.wg.Done()
	name := contract.GetWorkerName(worker)

	for ctx.Err() == nil {
		err := runGuarded(ctx, worker)
		switch {
		case err == nil:
			s.log.Info("Worker finished", "name", name)
			return
		case ctx.Err() != nil:
			break
		default:
			s.log.Warn("Worker failed, restarting", "name", name, "error", err, "delay", s.restartDelay)
			select {
			case <-ctx.Done():
			case <-time.After(s.restartDelay):
			}
		}
	}
	s.log.Info("Worker stopped", "name", name)
}

// runGuarded turns a panic inside the worker into ErrWorkerPanic.
func runGuarded(ctx context.Context, worker contract.Worker) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.ErrWorkerPanic
		}
	}()
	return worker.Run(ctx)
}
