package tui

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/cyclr/internal/cycle"
	"github.com/sadopc/cyclr/internal/store"
)

const recentTaskLimit = 8

// timerModel is the home view: the new-cycle form and the countdown of the
// active cycle.
type timerModel struct {
	store   *store.Store
	manager *cycle.Manager
	width   int
	height  int

	labels         labels
	interval       time.Duration
	defaultMinutes int
	suggestions    []string

	form    *huh.Form
	editing bool

	// Form values as pointers (survive value copies)
	task    *string
	minutes *string

	bar   progress.Model
	title string // last window title sent
}

func newTimerModel(s *store.Store, m *cycle.Manager, locale string, defaultMinutes int, interval time.Duration, suggestions []string) timerModel {
	task, minutes := "", ""
	t := timerModel{
		store:          s,
		manager:        m,
		labels:         labelsFor(locale),
		interval:       interval,
		defaultMinutes: defaultMinutes,
		suggestions:    suggestions,
		task:           &task,
		minutes:        &minutes,
		bar:            progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		title:          AppName,
		editing:        true,
	}
	t.form = t.newForm()
	return t
}

func (t *timerModel) setSize(w, h int) {
	t.width = w
	t.height = h
	t.bar.Width = max(10, min(w-12, 60))
}

func (t timerModel) Init() tea.Cmd {
	return tea.Batch(t.form.Init(), tea.SetWindowTitle(AppName))
}

// setLocale swaps the labels and validation messages and rebuilds the form.
func (t timerModel) setLocale(locale string, defaultMinutes int) (timerModel, tea.Cmd) {
	t.labels = labelsFor(locale)
	t.defaultMinutes = defaultMinutes
	t.manager.SetSchema(cycle.NewSchema(locale))
	return t.resetForm()
}

// newForm clears the form values and builds a fresh form.
func (t timerModel) newForm() *huh.Form {
	*t.task = ""
	*t.minutes = ""
	if t.defaultMinutes > 0 {
		*t.minutes = strconv.Itoa(t.defaultMinutes)
	}
	return t.buildForm()
}

func (t timerModel) buildForm() *huh.Form {
	schema := t.manager.Schema()
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(t.labels.TaskTitle).
				Placeholder(t.labels.TaskPlaceholder).
				Suggestions(t.taskSuggestions()).
				Validate(schema.ValidateTask).
				Value(t.task),
			huh.NewInput().
				Title(t.labels.MinutesTitle).
				Description(t.labels.MinutesSuffix).
				Placeholder("00").
				CharLimit(2).
				Validate(func(raw string) error {
					_, err := schema.ParseMinutes(raw)
					return err
				}).
				Value(t.minutes),
		),
	).WithShowHelp(false).WithShowErrors(true)
}

// taskSuggestions puts the session's recent tasks ahead of the configured
// ones, without duplicates.
func (t timerModel) taskSuggestions() []string {
	recent, err := t.store.GetTaskSuggestions(recentTaskLimit)
	if err != nil {
		log.Printf("task suggestions: %v", err)
	}
	seen := make(map[string]bool)
	var out []string
	for _, s := range append(recent, t.suggestions...) {
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func (t timerModel) resetForm() (timerModel, tea.Cmd) {
	t.form = t.newForm()
	return t, t.form.Init()
}

func (t timerModel) active() bool {
	return t.manager.HasActiveCycle()
}

func (t timerModel) update(msg tea.Msg) (timerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return t.handleTick(msg)

	case tea.KeyMsg:
		if t.editing && !t.active() {
			if key.Matches(msg, keys.Back) {
				t.editing = false
				return t, nil
			}
			return t.updateForm(msg)
		}

		switch {
		case key.Matches(msg, keys.Interrupt):
			return t.interrupt()
		case key.Matches(msg, keys.Start), key.Matches(msg, keys.Enter):
			if !t.active() {
				t.editing = true
				return t, nil
			}
		}
		return t, nil
	}

	if t.editing && !t.active() {
		return t.updateForm(msg)
	}
	return t, nil
}

func (t timerModel) updateForm(msg tea.Msg) (timerModel, tea.Cmd) {
	form, cmd := t.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		t.form = f
	}

	switch t.form.State {
	case huh.StateCompleted:
		return t.start()
	case huh.StateAborted:
		t.editing = false
		return t.resetForm()
	}
	return t, cmd
}

// start creates a cycle from the form values and arms its tick chain.
func (t timerModel) start() (timerModel, tea.Cmd) {
	schema := t.manager.Schema()
	minutes, err := schema.ParseMinutes(*t.minutes)
	if err == nil {
		err = schema.Validate(*t.task, minutes)
	}
	if err != nil {
		t.form = t.buildForm()
		return t, tea.Batch(t.form.Init(), statusCmd(validationText(err), true))
	}

	c, err := t.manager.Create(*t.task, minutes)
	if err != nil {
		next, cmd := t.resetForm()
		return next, tea.Batch(cmd, statusCmd(fmt.Sprintf("Start error: %v", err), true))
	}

	cmds := []tea.Cmd{tickCmd(t.interval, c.ID), cycleChanged}
	if err := t.store.InsertCycle(c); err != nil {
		log.Printf("journal cycle %s: %v", c.ID, err)
		cmds = append(cmds, statusCmd(fmt.Sprintf("Journal error: %v", err), true))
	} else {
		cmds = append(cmds, statusCmd(t.labels.Started+": "+c.Task, false))
	}

	t.editing = false
	t.form = t.newForm()
	if cmd := t.syncTitle(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return t, tea.Batch(cmds...)
}

func (t timerModel) handleTick(msg tickMsg) (timerModel, tea.Cmd) {
	// A chain armed for a cycle that is no longer active dies here.
	if msg.cycleID == "" || msg.cycleID != t.manager.ActiveID() {
		return t, nil
	}

	wasExpired := t.manager.Expired()
	t.manager.Tick()

	cmds := []tea.Cmd{tickCmd(t.interval, msg.cycleID)}
	if cmd := t.syncTitle(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if !wasExpired && t.manager.Expired() {
		cmds = append(cmds, statusCmd(t.labels.TimesUp+" \a", false))
	}
	return t, tea.Batch(cmds...)
}

func (t timerModel) interrupt() (timerModel, tea.Cmd) {
	c, ok := t.manager.Interrupt()
	if !ok {
		return t, nil
	}

	cmds := []tea.Cmd{cycleChanged}
	if err := t.store.InterruptCycle(c.ID, *c.InterruptDate); err != nil {
		log.Printf("journal interrupt %s: %v", c.ID, err)
		cmds = append(cmds, statusCmd(fmt.Sprintf("Journal error: %v", err), true))
	} else {
		cmds = append(cmds, statusCmd(t.labels.Interrupted, false))
	}
	if cmd := t.syncTitle(); cmd != nil {
		cmds = append(cmds, cmd)
	}

	t.editing = true
	next, cmd := t.resetForm()
	cmds = append(cmds, cmd)
	return next, tea.Batch(cmds...)
}

// syncTitle returns a command setting the window title when the countdown
// text changed since the last one sent.
func (t *timerModel) syncTitle() tea.Cmd {
	want := AppName
	if t.active() {
		want = t.manager.Countdown()
	}
	if want == t.title {
		return nil
	}
	t.title = want
	return tea.SetWindowTitle(want)
}

func cycleChanged() tea.Msg { return cycleChangedMsg{} }

// validationText joins the field messages of a rejected submission.
func validationText(err error) string {
	var ve *cycle.ValidationError
	if errors.As(err, &ve) {
		msgs := make([]string, len(ve.Fields))
		for i, f := range ve.Fields {
			msgs[i] = f.Message
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

func (t timerModel) view() string {
	w := t.width - 4

	var parts []string
	if c, ok := t.manager.ActiveCycle(); ok {
		parts = append(parts,
			titleStyle.Render(fmt.Sprintf("%s %s %s %d %s",
				t.labels.TaskTitle, highlightStyle.Render(c.Task),
				t.labels.MinutesTitle, c.MinutesAmount, t.labels.MinutesSuffix)),
			"",
			t.renderCountdown(),
			"",
			t.bar.ViewAs(t.manager.Progress()),
			"",
		)
		if t.manager.Expired() {
			parts = append(parts, timerExpiredStyle.Render(t.labels.TimesUp), "")
		}
		parts = append(parts,
			interruptButtonStyle.Render(t.labels.Interrupt),
			mutedStyle.Render("x"),
		)
	} else {
		startStyle := startButtonStyle
		if cycle.IsTaskFieldEmpty(*t.task) {
			startStyle = disabledButtonStyle
		}
		hint := t.labels.FormHint
		if !t.editing {
			hint = t.labels.IdleHint
		}
		parts = append(parts,
			t.form.View(),
			"",
			t.renderCountdown(),
			"",
			startStyle.Render(t.labels.Start),
			mutedStyle.Render(hint),
		)
	}

	style := panelStyle
	if t.editing || t.active() {
		style = activePanelStyle
	}
	return style.Width(w).Render(lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// renderCountdown draws MM:SS as one box per digit. Values past zero keep
// their sign.
func (t timerModel) renderCountdown() string {
	style := digitStyle
	if t.manager.Expired() {
		style = digitStyle.Foreground(colorWarning)
	} else if t.active() {
		style = digitStyle.Foreground(colorSuccess)
	}

	var boxes []string
	for _, r := range t.manager.Minutes() {
		boxes = append(boxes, style.Render(string(r)))
	}
	boxes = append(boxes, separatorStyle.Render(":"))
	for _, r := range t.manager.Seconds() {
		boxes = append(boxes, style.Render(string(r)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, boxes...)
}
