// Package flow is the client-side state machine for reading today's horoscope.
//
// The machine has no I/O. Callers perform the status check, payment and
// confirmation themselves and report each outcome as an Event.
package flow

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hastrology/hastrology/pkg/horoscope"
)

// State is a step of the reading flow.
type State int

const (
	Checking State = iota
	Ready
	Paying
	Generating
	Complete
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case Ready:
		return "ready"
	case Paying:
		return "paying"
	case Generating:
		return "generating"
	case Complete:
		return "complete"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Event is an outcome reported to the machine.
type Event int

const (
	// Exists means today's horoscope is already stored.
	Exists Event = iota
	// Clear means no horoscope exists yet and payment may start.
	Clear
	// CheckFailed means the status check itself failed.
	CheckFailed
	// Pay starts a payment.
	Pay
	// Submitted means the payment was submitted.
	Submitted
	// Generated means the horoscope was generated and stored.
	Generated
	// Failed means the current payment or generation step failed.
	Failed
	// NewDay means the calendar day changed.
	NewDay
)

func (e Event) String() string {
	switch e {
	case Exists:
		return "exists"
	case Clear:
		return "clear"
	case CheckFailed:
		return "check_failed"
	case Pay:
		return "pay"
	case Submitted:
		return "submitted"
	case Generated:
		return "generated"
	case Failed:
		return "failed"
	case NewDay:
		return "new_day"
	default:
		return fmt.Sprintf("Event(%d)", int(e))
	}
}

// ErrInvalidTransition is returned for an event the current state does not accept.
var ErrInvalidTransition = errors.New("invalid transition")

var transitions = map[State]map[Event]State{
	Checking: {
		Exists:      Complete,
		Clear:       Ready,
		CheckFailed: Ready,
	},
	Ready: {
		Pay: Paying,
	},
	Paying: {
		Submitted: Generating,
		Failed:    Ready,
	},
	Generating: {
		Generated: Complete,
		Failed:    Ready,
	},
}

// Transition returns the state reached from s on e.
func Transition(s State, e Event) (State, error) {
	if e == NewDay {
		return Checking, nil
	}
	if next, ok := transitions[s][e]; ok {
		return next, nil
	}
	return s, fmt.Errorf("%w: %s on %s", ErrInvalidTransition, e, s)
}

// Machine tracks one wallet's flow for the current calendar day.
// It is safe for concurrent use.
type Machine struct {
	mu    sync.Mutex
	now   func() time.Time
	state State
	day   string
	text  string
	err   error
}

// NewMachine starts a machine in Checking. A nil clock means time.Now.
func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{
		now:   now,
		state: Checking,
		day:   horoscope.Today(now()),
	}
}

// State returns the current state, resetting to Checking first if the day changed.
func (m *Machine) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollover()
	return m.state
}

// Day returns the calendar day the machine is tracking.
func (m *Machine) Day() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollover()
	return m.day
}

// Horoscope returns today's text once the machine reached Complete.
func (m *Machine) Horoscope() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollover()
	return m.text
}

// Err returns the error recorded by the last failure event.
func (m *Machine) Err() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollover()
	return m.err
}

// Fire applies e. A rejected event leaves the machine unchanged.
func (m *Machine) Fire(e Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollover()
	return m.apply(e)
}

// Resolve reports today's horoscope text. From Checking it fires Exists and
// from Generating it fires Generated.
func (m *Machine) Resolve(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollover()

	e := Generated
	if m.state == Checking {
		e = Exists
	}
	if err := m.apply(e); err != nil {
		return err
	}
	m.text = text
	return nil
}

// Fail records cause and returns to Ready. From Checking it fires
// CheckFailed, otherwise Failed.
func (m *Machine) Fail(cause error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rollover()

	e := Failed
	if m.state == Checking {
		e = CheckFailed
	}
	if err := m.apply(e); err != nil {
		return err
	}
	m.err = cause
	return nil
}

func (m *Machine) apply(e Event) error {
	next, err := Transition(m.state, e)
	if err != nil {
		return err
	}
	m.state = next
	switch e {
	case NewDay:
		m.text, m.err = "", nil
	case Pay, Clear:
		m.err = nil
	}
	return nil
}

func (m *Machine) rollover() {
	today := horoscope.Today(m.now())
	if today == m.day {
		return
	}
	m.day = today
	_ = m.apply(NewDay)
}
