package scheduler

import (
	"context"
	"log/slog"
	"time"
)

// Scheduler emits periodic refresh ticks for the host loop. A tick that the
// host has not consumed yet absorbs later ones.
type Scheduler struct {
	interval time.Duration
	ticks    chan time.Time
	logger   *slog.Logger
}

func NewScheduler(interval time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		interval: interval,
		ticks:    make(chan time.Time, 1),
		logger:   logger.With("component", "scheduler"),
	}
}

// C returns the tick channel. It is nil when the scheduler is disabled, so a
// select on it never fires.
func (s *Scheduler) C() <-chan time.Time {
	if s.interval <= 0 {
		return nil
	}
	return s.ticks
}

func (s *Scheduler) Start(ctx context.Context) error {
	if s.interval <= 0 {
		s.logger.Info("scheduler disabled")
		<-ctx.Done()
		return ctx.Err()
	}

	s.logger.Info("scheduler started", "interval", s.interval)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case t := <-ticker.C:
			s.emit(t)
		}
	}
}

func (s *Scheduler) emit(t time.Time) {
	select {
	case s.ticks <- t:
	default:
		s.logger.Debug("tick coalesced", "at", t)
	}
}
