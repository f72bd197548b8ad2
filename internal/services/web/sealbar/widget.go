// Package sealbar holds the seal/resolve widget state machine.
//
// One Widget exists per browser session. All transitions take the widget's
// own lock; the backend call in Submit runs outside it so a slow backend never
// blocks a concurrent tab switch or render.
package sealbar

import (
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/crypto-seal/internal/sealapi"
)

// Tab selects which backend operation a submission runs.
type Tab string

const (
	TabSeal    Tab = "seal"
	TabResolve Tab = "resolve"
)

// ParseTab maps a form value onto a Tab.
func ParseTab(value string) (Tab, bool) {
	switch Tab(strings.ToLower(strings.TrimSpace(value))) {
	case TabSeal:
		return TabSeal, true
	case TabResolve:
		return TabResolve, true
	default:
		return "", false
	}
}

// CopyFeedback is how long the copy confirmation stays visible.
const CopyFeedback = 2 * time.Second

// Localization keys for widget errors.
const (
	ErrKeyConnection  = "sealbar.error.connection"
	ErrKeyNotFound    = "sealbar.error.not_found"
	ErrKeyRateLimited = "sealbar.error.rate_limited"
	ErrKeyUnexpected  = "sealbar.error.unexpected"
)

// Notice is an error shown under the input. Text is shown verbatim when set;
// otherwise Key is localized.
type Notice struct {
	Key  string
	Text string
}

// IsZero reports whether there is nothing to show.
func (n Notice) IsZero() bool {
	return n.Key == "" && n.Text == ""
}

// State is a snapshot of the widget.
type State struct {
	Tab         Tab
	Input       string
	Loading     bool
	Result      string
	Frozen      bool
	Error       Notice
	Record      *sealapi.SealRecord
	CopiedUntil time.Time
}

// CanSubmit reports whether a submission would issue a request.
func (s State) CanSubmit() bool {
	return !s.Loading && !s.Frozen && strings.TrimSpace(s.Input) != ""
}

// Copied reports whether copy feedback is showing at now.
func (s State) Copied(now time.Time) bool {
	return !s.CopiedUntil.IsZero() && now.Before(s.CopiedUntil)
}

// Ticket identifies one in-flight submission.
type Ticket struct {
	generation uint64
	Tab        Tab
	Input      string
}

// Widget is the per-session state machine.
type Widget struct {
	mu         sync.Mutex
	state      State
	generation uint64
}

// NewWidget returns an idle widget on the seal tab.
func NewWidget() *Widget {
	return &Widget{state: State{Tab: TabSeal}}
}

// Snapshot returns a copy of the current state.
func (w *Widget) Snapshot() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	state := w.state
	if state.Record != nil {
		record := *state.Record
		state.Record = &record
	}
	return state
}

// SwitchTab selects tab and resets everything else. A submission still in
// flight is abandoned; its result will be discarded.
func (w *Widget) SwitchTab(tab Tab) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.generation++
	w.state = State{Tab: tab}
}

// Edit replaces the input. It always clears the error. Editing a frozen
// result to anything else unfreezes the field. The input is locked while a
// request is pending, so Edit does nothing then.
func (w *Widget) Edit(value string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Loading {
		return
	}
	w.state.Input = value
	w.state.Error = Notice{}
	if w.state.Frozen && value != w.state.Result {
		w.state.Result = ""
		w.state.Record = nil
		w.state.Frozen = false
		w.state.CopiedUntil = time.Time{}
	}
}

// CanSubmit reports whether Begin would succeed.
func (w *Widget) CanSubmit() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.CanSubmit()
}

// Begin marks a submission in flight. It returns false, and changes nothing,
// when the input is blank, a request is pending, or the field is frozen.
func (w *Widget) Begin() (Ticket, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.state.CanSubmit() {
		return Ticket{}, false
	}
	w.state.Loading = true
	w.state.Error = Notice{}
	return Ticket{generation: w.generation, Tab: w.state.Tab, Input: w.state.Input}, true
}

// Complete applies the outcome of ticket's request. It reports false when a
// tab switch happened since Begin, in which case nothing changes.
func (w *Widget) Complete(ticket Ticket, outcome Outcome) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if ticket.generation != w.generation {
		return false
	}
	w.state.Loading = false
	if !outcome.Failure.IsZero() {
		w.state.Error = outcome.Failure
		return true
	}
	switch ticket.Tab {
	case TabSeal:
		w.state.Result = outcome.Hash
		w.state.Record = nil
	case TabResolve:
		w.state.Result = recordDisplay(outcome.Record)
		w.state.Record = outcome.Record
	}
	w.state.Input = w.state.Result
	w.state.Frozen = true
	w.state.CopiedUntil = time.Time{}
	return true
}

// Refuse shows notice without issuing a request.
func (w *Widget) Refuse(notice Notice) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state.Loading {
		return
	}
	w.state.Error = notice
}

// MarkCopied starts the copy confirmation. It does nothing unless a result is
// showing.
func (w *Widget) MarkCopied(now time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.state.Frozen || w.state.Result == "" {
		return false
	}
	w.state.CopiedUntil = now.Add(CopyFeedback)
	return true
}

func recordDisplay(record *sealapi.SealRecord) string {
	if record == nil {
		return ""
	}
	if record.Text != "" {
		return record.Text
	}
	return record.ID
}
