package service

import (
	"context"
	"fmt"

	"activity_discovery/internal/domain"
	"activity_discovery/internal/queue"
)

// Trigger names the reason a fetch was started.
type Trigger int

const (
	TriggerIdentity Trigger = iota + 1
	TriggerFirstLocation
	TriggerLocationMoved
	TriggerRadius
	TriggerQueueEmpty
	TriggerRefresh
	TriggerResetDeclined
	TriggerScheduled
)

func (t Trigger) String() string {
	switch t {
	case TriggerIdentity:
		return "identity"
	case TriggerFirstLocation:
		return "first_location"
	case TriggerLocationMoved:
		return "location_moved"
	case TriggerRadius:
		return "radius"
	case TriggerQueueEmpty:
		return "queue_empty"
	case TriggerRefresh:
		return "refresh"
	case TriggerResetDeclined:
		return "reset_declined"
	case TriggerScheduled:
		return "scheduled"
	default:
		return fmt.Sprintf("trigger(%d)", int(t))
	}
}

// FetchResult is posted on the results channel when a fetch completes. Epoch
// identifies the signed-in identity the fetch was started for.
type FetchResult struct {
	Epoch      uint64
	Seq        uint64
	Trigger    Trigger
	Activities []domain.Activity
	Err        error
	// Skipped is set when no fetch ran, e.g. a reset confirmed before any
	// location was known.
	Skipped bool
}

// requestFetch starts a fetch if identity and location are known. Without a
// location the first sample starts the fetch instead.
func (e *Engine) requestFetch(trigger Trigger) bool {
	if !e.signedIn {
		return false
	}
	if e.location == nil {
		e.logger.Debug("fetch deferred until a location is known", "trigger", trigger)
		return false
	}
	e.startFetch(trigger)
	return true
}

func (e *Engine) startFetch(trigger Trigger) {
	loc := *e.location
	radius := e.radius
	user := e.user
	epoch := e.epoch
	ctx := e.epochCtx

	e.lastFetchedLocation = &loc
	e.lastFetchedRadius = radius
	e.seq++
	seq := e.seq
	e.inFlight++

	e.logger.Info("fetching activities",
		"trigger", trigger,
		"seq", seq,
		"latitude", loc.Latitude,
		"longitude", loc.Longitude,
		"radius_km", radius,
	)

	go func() {
		activities, err := e.fetch(ctx, user, loc, radius)
		e.post(ctx, FetchResult{
			Epoch:      epoch,
			Seq:        seq,
			Trigger:    trigger,
			Activities: activities,
			Err:        err,
		})
	}()
}

// startReset clears declined activities on the server and then fetches, in
// that order, from one goroutine so the fetch sees the reset.
func (e *Engine) startReset() {
	user := e.user
	epoch := e.epoch
	ctx := e.epochCtx
	radius := e.radius
	logger := e.logger
	var loc *domain.Location
	if e.location != nil {
		l := *e.location
		loc = &l
		e.lastFetchedLocation = &l
		e.lastFetchedRadius = radius
	}
	e.seq++
	seq := e.seq
	e.inFlight++

	e.logger.Info("resetting declined activities", "seq", seq)

	go func() {
		if err := e.resetter.ResetDeclined(ctx, user); err != nil {
			logger.Error("reset declined activities failed", "error", err)
		}

		res := FetchResult{Epoch: epoch, Seq: seq, Trigger: TriggerResetDeclined}
		if loc == nil {
			res.Skipped = true
		} else {
			res.Activities, res.Err = e.fetch(ctx, user, *loc, radius)
		}
		e.post(ctx, res)
	}()
}

func (e *Engine) fetch(ctx context.Context, user domain.UserID, loc domain.Location, radius int) ([]domain.Activity, error) {
	if e.cfg.FetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.cfg.FetchTimeout)
		defer cancel()
	}

	activities, err := e.feed.FetchActivities(ctx, user, loc, radius)
	if err != nil {
		return nil, fmt.Errorf("fetch activities: %w", err)
	}
	return activities, nil
}

func (e *Engine) post(ctx context.Context, res FetchResult) {
	select {
	case e.results <- res:
	case <-ctx.Done():
		// identity changed or the engine closed; nobody will apply it
	}
}

// ApplyResult folds a completed fetch into the queue. Results are applied in
// the order they arrive, each against the current queue. Results for a
// previous identity are discarded.
func (e *Engine) ApplyResult(res FetchResult) queue.Delta {
	if res.Epoch != e.epoch {
		e.logger.Debug("discarding result from previous identity",
			"seq", res.Seq,
			"trigger", res.Trigger,
		)
		return queue.Delta{}
	}
	e.inFlight = max(e.inFlight-1, 0)

	if res.Trigger == TriggerResetDeclined {
		// Only dislikes made before the reset started were cleared on the server.
		n := e.queue.ForgetDeclinedBefore(res.Seq)
		e.logger.Debug("declined activities eligible again", "seq", res.Seq, "count", n)
	}
	if res.Skipped {
		e.observe()
		return queue.Delta{Empty: e.queue.Len() == 0}
	}

	if res.Err != nil {
		// Treated like an empty response.
		e.logger.Warn("fetch failed", "seq", res.Seq, "trigger", res.Trigger, "error", res.Err)
	}

	valid := make([]domain.Activity, 0, len(res.Activities))
	remoteIDs := make(map[domain.ActivityID]struct{}, len(res.Activities))
	for _, a := range res.Activities {
		if err := a.Validate(); err != nil {
			e.logger.Warn("skipping activity", "activity_id", a.ID, "error", err)
			continue
		}
		valid = append(valid, a)
		remoteIDs[a.ID] = struct{}{}
	}

	delta := e.queue.Reconcile(remoteIDs, valid)
	e.loaded = true

	e.logger.Info("reconciled activities",
		"seq", res.Seq,
		"trigger", res.Trigger,
		"fetched", len(res.Activities),
		"removed", len(delta.Removed),
		"appended", len(delta.Appended),
		"queued", e.queue.Len(),
	)

	e.observe()
	return delta
}
