package service

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"activity_discovery/internal/domain"
)

// DispatchStats counts what the dispatcher has done so far.
type DispatchStats struct {
	Submitted int64
	Failed    int64
	Dropped   int64
}

// DecisionDispatcher forwards decisions to a sink from a single worker
// goroutine. Dispatch never blocks: decisions wait in an unbounded FIFO and
// are submitted once each, in the order they were dispatched. A failed
// submission is logged and dropped; the local queue has already moved on.
type DecisionDispatcher struct {
	sink    DecisionSink
	timeout time.Duration
	logger  *slog.Logger

	mu      sync.Mutex
	pending []domain.Decision
	closed  bool
	signal  chan struct{} // buffered, size 1
	done    chan struct{}

	submitted atomic.Int64
	failed    atomic.Int64
	dropped   atomic.Int64
}

// NewDecisionDispatcher creates a dispatcher. A zero timeout leaves deadlines
// to the sink's transport.
func NewDecisionDispatcher(sink DecisionSink, timeout time.Duration, logger *slog.Logger) *DecisionDispatcher {
	return &DecisionDispatcher{
		sink:    sink,
		timeout: timeout,
		logger:  logger.With("component", "dispatcher"),
		pending: make([]domain.Decision, 0, 16),
		signal:  make(chan struct{}, 1),
		done:    make(chan struct{}),
	}
}

// Dispatch queues a decision for submission. Safe for concurrent use.
func (d *DecisionDispatcher) Dispatch(decision domain.Decision) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		d.dropped.Add(1)
		d.logger.Warn("dispatcher closed, dropping decision",
			"activity_id", decision.ActivityID,
			"decision_id", decision.ID,
		)
		return
	}

	d.pending = append(d.pending, decision)

	select {
	case d.signal <- struct{}{}:
	default:
	}
}

// Run submits queued decisions until the context is cancelled or Close has
// been called and the queue is drained.
func (d *DecisionDispatcher) Run(ctx context.Context) error {
	defer close(d.done)

	for {
		if decision, ok := d.next(); ok {
			d.submit(ctx, decision)
			continue
		}

		d.mu.Lock()
		finished := d.closed && len(d.pending) == 0
		d.mu.Unlock()
		if finished {
			return nil
		}

		select {
		case <-ctx.Done():
			d.mu.Lock()
			left := len(d.pending)
			d.pending = nil
			d.mu.Unlock()
			if left > 0 {
				d.dropped.Add(int64(left))
				d.logger.Warn("dispatcher stopped with pending decisions", "pending", left)
			}
			return ctx.Err()
		case <-d.signal:
		}
	}
}

// Close stops accepting decisions. Run returns once the backlog is submitted.
func (d *DecisionDispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}
	d.closed = true
	close(d.signal)
}

// Done is closed when Run returns.
func (d *DecisionDispatcher) Done() <-chan struct{} {
	return d.done
}

func (d *DecisionDispatcher) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

func (d *DecisionDispatcher) Stats() DispatchStats {
	return DispatchStats{
		Submitted: d.submitted.Load(),
		Failed:    d.failed.Load(),
		Dropped:   d.dropped.Load(),
	}
}

func (d *DecisionDispatcher) next() (domain.Decision, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.pending) == 0 {
		return domain.Decision{}, false
	}

	decision := d.pending[0]
	d.pending[0] = domain.Decision{}
	if len(d.pending) == 1 {
		d.pending = d.pending[:0]
	} else {
		d.pending = d.pending[1:]
	}
	return decision, true
}

func (d *DecisionDispatcher) submit(ctx context.Context, decision domain.Decision) {
	submitCtx := ctx
	if d.timeout > 0 {
		var cancel context.CancelFunc
		submitCtx, cancel = context.WithTimeout(ctx, d.timeout)
		defer cancel()
	}

	if err := d.sink.Submit(submitCtx, decision); err != nil {
		d.failed.Add(1)
		d.logger.Warn("submit decision failed",
			"user_id", decision.UserID,
			"activity_id", decision.ActivityID,
			"liked", decision.Liked,
			"error", err,
		)
		return
	}

	d.submitted.Add(1)
	d.logger.Debug("decision submitted",
		"activity_id", decision.ActivityID,
		"liked", decision.Liked,
	)
}
