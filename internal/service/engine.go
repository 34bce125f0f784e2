package service

import (
	"context"
	"log/slog"

	"activity_discovery/internal/config"
	"activity_discovery/internal/domain"
	"activity_discovery/internal/gesture"
	"activity_discovery/internal/queue"
)

const resultsBuffer = 16

// Deps are the collaborators the engine talks to. Radius and Navigator are optional.
type Deps struct {
	Feed      FeedSource
	Resetter  DeclinedResetter
	Decisions Decisions
	Radius    RadiusStore
	Navigator Navigator
}

// Intent is a classified gesture bound to the card it was made on.
type Intent struct {
	gesture.Intent
	ActivityID domain.ActivityID

	epoch uint64
	token uint64
}

// Snapshot is what the presentation layer renders.
type Snapshot struct {
	State      State
	Active     *domain.Activity
	Image      string
	ImageIndex int
	Len        int
	Radius     int
	Options    []Action
}

// Engine is the discovery queue engine. It is not safe for concurrent use:
// one goroutine drives it, calling the identity, location, gesture and
// ApplyResult methods in the order events happen. Fetches run on their own
// goroutines and come back through Results.
type Engine struct {
	feed      FeedSource
	resetter  DeclinedResetter
	decisions Decisions
	radii     RadiusStore
	navigator Navigator
	cfg       config.DiscoveryConfig
	baseLog   *slog.Logger
	logger    *slog.Logger

	queue    *queue.Queue
	recovery *Recovery
	results  chan FetchResult

	signedIn    bool
	user        domain.UserID
	epoch       uint64
	epochCtx    context.Context
	cancelEpoch context.CancelFunc

	location       *domain.Location
	locationDenied bool
	radius         int

	lastFetchedLocation *domain.Location
	lastFetchedRadius   int
	seq                 uint64
	inFlight            int
	loaded              bool

	drag       gesture.Tracker
	transition *Intent
	tokens     uint64
}

func NewEngine(deps Deps, cfg config.DiscoveryConfig, logger *slog.Logger) *Engine {
	logger = logger.With("component", "engine")
	radius := cfg.DefaultRadiusKm
	if !domain.ValidRadius(radius) {
		radius = domain.DefaultRadiusKm
	}
	if cfg.RefillBelow < 1 {
		cfg.RefillBelow = 1
	}
	canceled, cancel := context.WithCancel(context.Background())
	cancel()

	return &Engine{
		feed:        deps.Feed,
		resetter:    deps.Resetter,
		decisions:   deps.Decisions,
		radii:       deps.Radius,
		navigator:   deps.Navigator,
		cfg:         cfg,
		baseLog:     logger,
		logger:      logger,
		queue:       queue.New(),
		recovery:    NewRecovery(logger),
		results:     make(chan FetchResult, resultsBuffer),
		radius:      radius,
		epochCtx:    canceled,
		cancelEpoch: cancel,
	}
}

// Results delivers completed fetches. The driver passes each one to ApplyResult.
func (e *Engine) Results() <-chan FetchResult {
	return e.results
}

// Login starts a session for userID, replacing any previous identity. ctx
// bounds every fetch made for this identity.
func (e *Engine) Login(ctx context.Context, userID domain.UserID) {
	e.endIdentity()

	e.signedIn = true
	e.user = userID
	e.epochCtx, e.cancelEpoch = context.WithCancel(ctx)
	e.logger = e.baseLog.With("user_id", userID)
	e.loadRadius(ctx)

	e.logger.Info("signed in", "epoch", e.epoch, "radius_km", e.radius)
	e.requestFetch(TriggerIdentity)
	e.observe()
}

// Logout clears the queue. Fetches still running for the old identity are
// cancelled and their results discarded.
func (e *Engine) Logout() {
	if !e.signedIn {
		return
	}
	e.logger.Info("signed out")
	e.endIdentity()
	e.logger = e.baseLog
	e.observe()
}

// Close cancels outstanding fetches.
func (e *Engine) Close() {
	e.cancelEpoch()
}

func (e *Engine) endIdentity() {
	e.cancelEpoch()
	e.epoch++
	e.signedIn = false
	e.user = 0
	e.queue.Clear()
	e.recovery.reset()
	e.lastFetchedLocation = nil
	e.lastFetchedRadius = 0
	e.inFlight = 0
	e.loaded = false
	e.drag = gesture.Tracker{}
	e.transition = nil
}

func (e *Engine) loadRadius(ctx context.Context) {
	if e.radii == nil {
		return
	}
	km, err := e.radii.Radius(ctx, e.user)
	if err != nil {
		e.logger.Warn("load radius failed, keeping current", "radius_km", e.radius, "error", err)
		return
	}
	e.radius = domain.ClampRadius(km)
}

// UpdateLocation feeds a new sample from the location provider.
func (e *Engine) UpdateLocation(loc domain.Location) {
	e.locationDenied = false
	e.location = &loc

	switch {
	case !e.signedIn:
	case e.lastFetchedLocation == nil:
		e.startFetch(TriggerFirstLocation)
	case loc.MovedFrom(*e.lastFetchedLocation, e.cfg.LocationThresholdMeters):
		e.startFetch(TriggerLocationMoved)
	}
	e.observe()
}

// LocationDenied records that the provider refused access. It stays in
// effect until RetryLocation or a new sample.
func (e *Engine) LocationDenied() {
	e.locationDenied = true
	e.logger.Warn("location permission denied")
	e.observe()
}

// RetryLocation clears the denied state so the driver can ask the provider again.
func (e *Engine) RetryLocation() {
	e.locationDenied = false
	e.observe()
}

// SetRadius changes the search radius and refetches when a location is known.
func (e *Engine) SetRadius(ctx context.Context, km int) error {
	if !domain.ValidRadius(km) {
		return domain.ErrRadiusOutOfRange
	}
	if km == e.radius {
		return nil
	}
	e.radius = km

	if e.radii != nil && e.signedIn {
		if err := e.radii.SetRadius(ctx, e.user, km); err != nil {
			e.logger.Warn("persist radius failed", "radius_km", km, "error", err)
		}
	}

	e.requestFetch(TriggerRadius)
	e.observe()
	return nil
}

// Refresh fetches on explicit user request.
func (e *Engine) Refresh() bool {
	started := e.requestFetch(TriggerRefresh)
	e.observe()
	return started
}

// Tick is the periodic refresh. It is skipped while another fetch is running.
func (e *Engine) Tick() bool {
	if e.inFlight > 0 {
		return false
	}
	return e.requestFetch(TriggerScheduled)
}

// RequestResetDeclined asks for confirmation before erasing dislikes.
func (e *Engine) RequestResetDeclined() error {
	if !e.signedIn {
		return domain.ErrNoIdentity
	}
	e.recovery.requestReset()
	e.observe()
	return nil
}

// ConfirmResetDeclined resets declined activities on the server and refetches.
func (e *Engine) ConfirmResetDeclined() error {
	if !e.signedIn {
		return domain.ErrNoIdentity
	}
	if err := e.recovery.confirmReset(); err != nil {
		return err
	}
	e.startReset()
	e.observe()
	return nil
}

func (e *Engine) CancelResetDeclined() {
	e.recovery.cancelReset()
	e.observe()
}

// Drag returns the live offset for an ongoing drag. The first call after a
// release starts a new gesture.
func (e *Engine) Drag(dx, dy float64) gesture.Offset {
	if e.transition != nil || e.queue.Len() == 0 {
		return gesture.Offset{}
	}
	if !e.drag.Active() {
		e.drag.Start()
	}
	return e.drag.Move(dx, dy)
}

// Release classifies the end of a gesture. Taps open the detail view right
// away. Image cycles and decisions only take effect when the driver calls
// ApplyIntent after the transition animation.
func (e *Engine) Release(dx, dy float64) Intent {
	e.drag = gesture.Tracker{}
	active, ok := e.queue.Active()
	if !ok || e.transition != nil {
		return Intent{Intent: gesture.Intent{Kind: gesture.Cancel}}
	}

	e.tokens++
	in := Intent{
		Intent:     gesture.Classify(dx, dy),
		ActivityID: active.ID,
		epoch:      e.epoch,
		token:      e.tokens,
	}

	switch in.Kind {
	case gesture.Tap:
		if e.navigator != nil {
			image, _ := e.queue.ActiveImage()
			e.navigator.ShowDetail(active, image)
		}
	case gesture.CycleImage, gesture.Decide:
		e.transition = &in
	}
	return in
}

// ApplyIntent commits an intent returned by Release. Each intent applies at
// most once; anything else is ignored.
func (e *Engine) ApplyIntent(in Intent) queue.Delta {
	if !in.Mutates() {
		return queue.Delta{}
	}
	if e.transition == nil || *e.transition != in {
		e.logger.Debug("ignoring stale intent", "kind", in.Kind, "activity_id", in.ActivityID)
		return queue.Delta{}
	}
	e.transition = nil

	var delta queue.Delta
	switch in.Kind {
	case gesture.CycleImage:
		delta = e.applyCycle(in)
	case gesture.Decide:
		delta = e.applyDecision(in)
	}
	e.observe()
	return delta
}

func (e *Engine) applyCycle(in Intent) queue.Delta {
	active, ok := e.queue.Active()
	if !ok || active.ID != in.ActivityID {
		return queue.Delta{}
	}
	_, moved := e.queue.CycleImage(in.Step)
	return queue.Delta{ImageChanged: moved}
}

func (e *Engine) applyDecision(in Intent) queue.Delta {
	var delta queue.Delta

	mark := queue.Exclusion{Seq: e.seq, Liked: in.Liked}
	active, ok := e.queue.Active()
	if ok && active.ID == in.ActivityID {
		e.queue.RemoveActive(mark)
		delta.Removed = []domain.ActivityID{in.ActivityID}
		delta.ActiveChanged = true
	} else if e.queue.Remove(in.ActivityID, mark) {
		delta.Removed = []domain.ActivityID{in.ActivityID}
	}

	e.decisions.Dispatch(domain.NewDecision(e.user, in.ActivityID, in.Liked))
	e.logger.Info("activity decided",
		"activity_id", in.ActivityID,
		"liked", in.Liked,
		"remaining", e.queue.Len(),
	)

	delta.Empty = e.queue.Len() == 0
	if e.queue.Len() < e.cfg.RefillBelow {
		e.requestFetch(TriggerQueueEmpty)
	}
	return delta
}

// Fetching reports whether any fetch for the current identity has not been
// applied yet.
func (e *Engine) Fetching() bool {
	return e.inFlight > 0
}

// TransitionPending reports whether an intent is waiting for ApplyIntent.
func (e *Engine) TransitionPending() bool {
	return e.transition != nil
}

func (e *Engine) State() State {
	return e.recovery.resolve(e.inputs())
}

func (e *Engine) View() Snapshot {
	state := e.State()
	snap := Snapshot{
		State:   state,
		Len:     e.queue.Len(),
		Radius:  e.radius,
		Options: e.recovery.Options(state),
	}
	if a, ok := e.queue.Active(); ok {
		snap.Active = &a
		snap.Image, _ = e.queue.ActiveImage()
		_, snap.ImageIndex = e.queue.Cursor()
	}
	return snap
}

// Queue exposes the underlying queue for inspection.
func (e *Engine) Queue() *queue.Queue {
	return e.queue
}

func (e *Engine) Radius() int {
	return e.radius
}

func (e *Engine) inputs() recoveryInputs {
	return recoveryInputs{
		signedIn:       e.signedIn,
		hasLocation:    e.location != nil,
		locationDenied: e.locationDenied,
		loaded:         e.loaded,
		inFlight:       e.inFlight,
		queueLen:       e.queue.Len(),
	}
}

func (e *Engine) observe() {
	e.recovery.observe(e.inputs())
}
