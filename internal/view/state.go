package view

import (
	"sync"

	"github.com/vbelov/wedding-invite/internal/domain"
)

// State is the coarse phase of one invitation page load.
type State int

const (
	StateLoading State = iota
	StateNotFound
	StateLoaded
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateNotFound:
		return "not_found"
	case StateLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Visit tracks the UI state of a single invitation visit: it starts in
// Loading, resolves to NotFound or Loaded, and while Loaded supports
// repeatable submit excursions. Confirmed only ever moves false to true on
// the client; the sheet is the authority for anything else.
//
// Cancel is the stale-response guard: once a visit is cancelled (the guest
// navigated away), a late resolution result must not change state. The
// in-flight request itself is not aborted, only its effect is suppressed.
type Visit struct {
	mu         sync.Mutex
	code       string
	state      State
	guest      *domain.Guest
	confirmed  bool
	surveySent bool
	submitting bool
	cancelled  bool
}

func NewVisit(code string) *Visit {
	return &Visit{code: code, state: StateLoading}
}

func (v *Visit) Code() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.code
}

func (v *Visit) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *Visit) Guest() *domain.Guest {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.guest
}

func (v *Visit) Confirmed() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.confirmed
}

func (v *Visit) SurveySent() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.surveySent
}

func (v *Visit) Submitting() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.submitting
}

// Cancel marks the visit as abandoned. Later Resolve calls are no-ops.
func (v *Visit) Cancel() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cancelled = true
}

// Resolve applies the outcome of the guest lookup. A nil guest means the
// code did not resolve. Only the first resolution of a live visit counts.
func (v *Visit) Resolve(guest *domain.Guest) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.cancelled || v.state != StateLoading {
		return
	}

	if guest == nil {
		v.state = StateNotFound
		return
	}

	v.state = StateLoaded
	v.guest = guest
	v.confirmed = guest.Confirmed
}

// BeginSubmit reserves the single in-flight submission slot. It reports
// false when the visit is not loaded or another submission is already
// outstanding; a second click while submitting is simply ignored.
func (v *Visit) BeginSubmit() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.state != StateLoaded || v.submitting {
		return false
	}
	v.submitting = true
	return true
}

// FinishConfirm releases the submission slot. Success flips confirmed to
// true; failure leaves it untouched so the control re-enables.
func (v *Visit) FinishConfirm(ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.submitting = false
	if ok {
		v.confirmed = true
	}
}

// FinishSurvey releases the submission slot. Success sets the separate
// survey-sent flag; confirmed is unaffected either way.
func (v *Visit) FinishSurvey(ok bool) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.submitting = false
	if ok {
		v.surveySent = true
	}
}
