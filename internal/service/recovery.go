package service

import (
	"errors"
	"log/slog"
)

var ErrResetNotConfirmed = errors.New("reset of declined activities was not requested")

type State int

const (
	StateSignedOut State = iota
	StateAwaitingLocation
	StatePermissionDenied
	StateLoading
	StatePopulated
	StateEmpty
	StateConfirmingReset
)

func (s State) String() string {
	switch s {
	case StateAwaitingLocation:
		return "awaiting_location"
	case StatePermissionDenied:
		return "permission_denied"
	case StateLoading:
		return "loading"
	case StatePopulated:
		return "populated"
	case StateEmpty:
		return "empty"
	case StateConfirmingReset:
		return "confirming_reset"
	default:
		return "signed_out"
	}
}

type Action int

const (
	ActionWidenRadius Action = iota + 1
	ActionResetDeclined
	ActionRetryLocation
	ActionConfirmReset
	ActionCancelReset
)

func (a Action) String() string {
	switch a {
	case ActionWidenRadius:
		return "widen_radius"
	case ActionResetDeclined:
		return "reset_declined"
	case ActionRetryLocation:
		return "retry_location"
	case ActionConfirmReset:
		return "confirm_reset"
	case ActionCancelReset:
		return "cancel_reset"
	default:
		return "unknown"
	}
}

// recoveryInputs is the part of the engine state the recovery controller reads.
type recoveryInputs struct {
	signedIn       bool
	hasLocation    bool
	locationDenied bool
	loaded         bool
	inFlight       int
	queueLen       int
}

// Recovery tracks the empty-queue state and the way out of it. Resetting
// declined activities erases history on the server, so it needs a request
// followed by a confirmation.
type Recovery struct {
	confirming bool
	last       State
	logger     *slog.Logger
}

func NewRecovery(logger *slog.Logger) *Recovery {
	return &Recovery{logger: logger}
}

func (r *Recovery) resolve(in recoveryInputs) State {
	switch {
	case !in.signedIn:
		return StateSignedOut
	case r.confirming:
		return StateConfirmingReset
	case in.queueLen > 0:
		return StatePopulated
	case !in.hasLocation && in.locationDenied:
		return StatePermissionDenied
	case !in.hasLocation:
		return StateAwaitingLocation
	case !in.loaded || in.inFlight > 0:
		return StateLoading
	default:
		return StateEmpty
	}
}

// observe records the current state and logs transitions into and out of Empty.
func (r *Recovery) observe(in recoveryInputs) State {
	state := r.resolve(in)
	if state != r.last {
		switch {
		case state == StateEmpty:
			r.logger.Info("queue exhausted", "from", r.last)
		case r.last == StateEmpty && state == StatePopulated:
			r.logger.Info("queue repopulated", "size", in.queueLen)
		}
		r.last = state
	}
	return state
}

func (r *Recovery) Options(state State) []Action {
	switch state {
	case StateEmpty:
		return []Action{ActionWidenRadius, ActionResetDeclined}
	case StatePermissionDenied:
		return []Action{ActionRetryLocation}
	case StateConfirmingReset:
		return []Action{ActionConfirmReset, ActionCancelReset}
	default:
		return nil
	}
}

func (r *Recovery) requestReset() {
	r.confirming = true
}

func (r *Recovery) confirmReset() error {
	if !r.confirming {
		return ErrResetNotConfirmed
	}
	r.confirming = false
	return nil
}

func (r *Recovery) cancelReset() {
	r.confirming = false
}

func (r *Recovery) reset() {
	r.confirming = false
	r.last = StateSignedOut
}
