// Package cycle implements the focus-cycle state machine: the list of cycles,
// the single active cycle and the countdown derived from it.
package cycle

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Cycle is one timed run of a task. Only InterruptDate is ever written after
// creation, and only once.
type Cycle struct {
	ID            string
	Task          string
	MinutesAmount int
	StartDate     time.Time
	InterruptDate *time.Time
}

// Interrupted reports whether the cycle was stopped by the user.
func (c Cycle) Interrupted() bool {
	return c.InterruptDate != nil
}

// Focused returns how long the cycle ran: until its interrupt, or until now.
func (c Cycle) Focused(now time.Time) time.Duration {
	end := now
	if c.InterruptDate != nil {
		end = *c.InterruptDate
	}
	if d := end.Sub(c.StartDate); d > 0 {
		return d
	}
	return 0
}

// clone returns c with its own InterruptDate.
func (c Cycle) clone() Cycle {
	if c.InterruptDate != nil {
		at := *c.InterruptDate
		c.InterruptDate = &at
	}
	return c
}

// Option configures a Manager.
type Option func(*Manager)

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// WithIDGenerator replaces the UUIDv7 id source.
func WithIDGenerator(gen func() string) Option {
	return func(m *Manager) { m.newID = gen }
}

// WithSchema sets the validation schema. The default uses DefaultLocale.
func WithSchema(s Schema) Option {
	return func(m *Manager) { m.schema = s }
}

// Manager owns the session's cycles. It is not safe for concurrent use; the
// caller serializes access (the Bubble Tea update loop does).
type Manager struct {
	cycles        []Cycle
	activeID      string
	secondsPassed int

	schema Schema
	now    func() time.Time
	newID  func() string
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{
		schema: NewSchema(DefaultLocale),
		now:    time.Now,
		newID:  newUUIDv7,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

func newUUIDv7() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// Schema returns the schema used by Create.
func (m *Manager) Schema() Schema {
	return m.schema
}

// SetSchema swaps the validation schema, e.g. after a locale change.
func (m *Manager) SetSchema(s Schema) {
	m.schema = s
}

// Create validates the input and starts a new active cycle.
func (m *Manager) Create(task string, minutesAmount int) (Cycle, error) {
	if err := m.schema.Validate(task, minutesAmount); err != nil {
		return Cycle{}, err
	}
	if m.activeID != "" {
		return Cycle{}, ErrCycleActive
	}

	c := Cycle{
		ID:            m.newID(),
		Task:          task,
		MinutesAmount: minutesAmount,
		StartDate:     m.now(),
	}
	m.cycles = append(m.cycles, c)
	m.activeID = c.ID
	m.secondsPassed = 0
	return c, nil
}

// Interrupt stamps the active cycle and clears it. It returns false when no
// cycle is active.
func (m *Manager) Interrupt() (Cycle, bool) {
	i := m.activeIndex()
	if i < 0 {
		return Cycle{}, false
	}
	at := m.now()
	m.cycles[i].InterruptDate = &at
	m.activeID = ""
	return m.cycles[i].clone(), true
}

// Tick recomputes the elapsed seconds from the wall clock.
func (m *Manager) Tick() {
	i := m.activeIndex()
	if i < 0 {
		return
	}
	m.secondsPassed = int(m.now().Sub(m.cycles[i].StartDate) / time.Second)
}

func (m *Manager) activeIndex() int {
	if m.activeID == "" {
		return -1
	}
	for i := range m.cycles {
		if m.cycles[i].ID == m.activeID {
			return i
		}
	}
	return -1
}

// ActiveCycle returns the cycle counting down, if any.
func (m *Manager) ActiveCycle() (Cycle, bool) {
	i := m.activeIndex()
	if i < 0 {
		return Cycle{}, false
	}
	return m.cycles[i].clone(), true
}

func (m *Manager) ActiveID() string {
	return m.activeID
}

func (m *Manager) HasActiveCycle() bool {
	return m.activeIndex() >= 0
}

// Cycles returns a copy of all cycles in creation order.
func (m *Manager) Cycles() []Cycle {
	out := make([]Cycle, len(m.cycles))
	for i, c := range m.cycles {
		out[i] = c.clone()
	}
	return out
}

func (m *Manager) SecondsPassed() int {
	return m.secondsPassed
}

func (m *Manager) TotalSeconds() int {
	c, ok := m.ActiveCycle()
	if !ok {
		return 0
	}
	return c.MinutesAmount * 60
}

func (m *Manager) CurrentSeconds() int {
	if !m.HasActiveCycle() {
		return 0
	}
	return m.TotalSeconds() - m.secondsPassed
}

// Expired reports whether the active countdown has reached zero. No state
// changes when it does; the cycle stays active until interrupted.
func (m *Manager) Expired() bool {
	return m.HasActiveCycle() && m.CurrentSeconds() <= 0
}

// Minutes is the countdown's minute part, zero-padded to two digits.
func (m *Manager) Minutes() string {
	return fmt.Sprintf("%02d", floorDiv(m.CurrentSeconds(), 60))
}

// Seconds is the countdown's second part, zero-padded to two digits.
func (m *Manager) Seconds() string {
	return fmt.Sprintf("%02d", m.CurrentSeconds()%60)
}

// Countdown renders "MM:SS".
func (m *Manager) Countdown() string {
	return m.Minutes() + ":" + m.Seconds()
}

// Progress is the elapsed fraction of the active cycle, clamped to [0, 1].
func (m *Manager) Progress() float64 {
	total := m.TotalSeconds()
	if total == 0 {
		return 0
	}
	p := float64(m.secondsPassed) / float64(total)
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	}
	return p
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
