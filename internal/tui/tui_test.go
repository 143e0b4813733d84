package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sadopc/cyclr/internal/config"
	"github.com/sadopc/cyclr/internal/cycle"
	"github.com/sadopc/cyclr/internal/export"
	"github.com/sadopc/cyclr/internal/store"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func (c *testClock) advance(d time.Duration) { c.now = c.now.Add(d) }

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.NewMemory()
	if err != nil {
		t.Fatalf("new memory store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func newTestManager(clk *testClock) *cycle.Manager {
	n := 0
	return cycle.NewManager(
		cycle.WithClock(clk.Now),
		cycle.WithIDGenerator(func() string {
			n++
			return fmt.Sprintf("cycle-%d", n)
		}),
	)
}

func testConfig() config.Config {
	return config.Config{
		Locale:       "en",
		TickInterval: time.Millisecond,
		Suggestions:  []string{"Projeto 1", "Projeto 2"},
	}
}

func newTestApp(t *testing.T) (App, *testClock) {
	t.Helper()
	clk := &testClock{now: time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)}
	s := newTestStore(t)
	a := NewApp(s, newTestManager(clk), testConfig())
	a.exportDir = t.TempDir()
	return a, clk
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// startCycle fills the timer form values and submits them.
func startCycle(t *testing.T, tm timerModel, task, minutes string) timerModel {
	t.Helper()
	*tm.task = task
	*tm.minutes = minutes
	tm, cmd := tm.start()
	if cmd == nil {
		t.Fatal("start should return commands")
	}
	return tm
}

// ============================================================
// Timer view
// ============================================================

func TestTimerStartCreatesCycle(t *testing.T) {
	a, _ := newTestApp(t)

	tm := startCycle(t, a.timer, "Write report", "25")

	c, ok := a.manager.ActiveCycle()
	if !ok {
		t.Fatal("cycle should be active")
	}
	if c.Task != "Write report" || c.MinutesAmount != 25 {
		t.Fatalf("unexpected cycle: %+v", c)
	}
	if tm.editing {
		t.Fatal("form should be left after start")
	}
	if *tm.task != "" || *tm.minutes != "" {
		t.Fatalf("form values should be cleared, got %q/%q", *tm.task, *tm.minutes)
	}

	got, err := a.store.GetCycle(c.ID)
	if err != nil {
		t.Fatalf("cycle not journaled: %v", err)
	}
	if got.Task != c.Task || got.InterruptDate != nil {
		t.Fatalf("unexpected journaled cycle: %+v", got)
	}
}

func TestTimerStartInvalidKeepsInput(t *testing.T) {
	a, _ := newTestApp(t)

	tests := []struct {
		name    string
		task    string
		minutes string
	}{
		{"empty task", "", "25"},
		{"too short", "Write", "4"},
		{"too long", "Write", "61"},
		{"not a number", "Write", "ab"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*a.timer.task = tt.task
			*a.timer.minutes = tt.minutes
			tm, cmd := a.timer.start()
			if cmd == nil {
				t.Fatal("expected a status command")
			}
			if a.manager.HasActiveCycle() {
				t.Fatal("invalid input must not create a cycle")
			}
			if *tm.task != tt.task || *tm.minutes != tt.minutes {
				t.Fatal("rejected input should stay in the form")
			}
		})
	}

	cycles, _ := a.store.ListCycles(store.CycleFilter{})
	if len(cycles) != 0 {
		t.Fatalf("expected no journaled cycles, got %d", len(cycles))
	}
}

func TestTimerStartUsesDefaultMinutes(t *testing.T) {
	a, _ := newTestApp(t)
	tm, _ := a.timer.setLocale("en", 30)
	if *tm.minutes != "30" {
		t.Fatalf("minutes field = %q, want 30", *tm.minutes)
	}
	tm, _ = tm.setLocale("en", 0)
	if *tm.minutes != "" {
		t.Fatalf("minutes field = %q, want empty", *tm.minutes)
	}
}

func TestTimerTickAdvancesCountdown(t *testing.T) {
	a, clk := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Write", "25")
	id := a.manager.ActiveID()

	clk.advance(65 * time.Second)
	tm, cmd := a.timer.handleTick(tickMsg{cycleID: id})
	if cmd == nil {
		t.Fatal("a live tick should re-arm the chain")
	}
	if got := a.manager.Countdown(); got != "23:55" {
		t.Fatalf("countdown = %q, want 23:55", got)
	}
	if tm.title != "23:55" {
		t.Fatalf("window title = %q, want 23:55", tm.title)
	}
}

func TestTimerStaleTickDropped(t *testing.T) {
	a, clk := newTestApp(t)
	a.timer = startCycle(t, a.timer, "First", "25")
	first := a.manager.ActiveID()
	a.timer, _ = a.timer.interrupt()
	a.timer = startCycle(t, a.timer, "Second", "10")

	clk.advance(3 * time.Second)
	_, cmd := a.timer.handleTick(tickMsg{cycleID: first})
	if cmd != nil {
		t.Fatal("a tick for a superseded cycle must not re-arm")
	}
	if a.manager.SecondsPassed() != 0 {
		t.Fatal("a stale tick must not advance the countdown")
	}

	_, cmd = a.timer.handleTick(tickMsg{cycleID: ""})
	if cmd != nil {
		t.Fatal("an unbound tick must not re-arm")
	}
}

func TestTimerTickAfterInterruptDropped(t *testing.T) {
	a, clk := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Write", "25")
	id := a.manager.ActiveID()
	a.timer, _ = a.timer.interrupt()

	clk.advance(time.Second)
	if _, cmd := a.timer.handleTick(tickMsg{cycleID: id}); cmd != nil {
		t.Fatal("tick chain should die after interrupt")
	}
}

func TestTimerSyncTitle(t *testing.T) {
	a, clk := newTestApp(t)
	tm := a.timer
	if cmd := tm.syncTitle(); cmd != nil {
		t.Fatal("title already shows the app name")
	}

	tm = startCycle(t, tm, "Write", "5")
	if tm.title != "05:00" {
		t.Fatalf("title = %q, want 05:00", tm.title)
	}
	if cmd := tm.syncTitle(); cmd != nil {
		t.Fatal("unchanged countdown should not resend the title")
	}

	clk.advance(time.Second)
	a.manager.Tick()
	if cmd := tm.syncTitle(); cmd == nil || tm.title != "04:59" {
		t.Fatalf("title = %q, want 04:59", tm.title)
	}

	tm, _ = tm.interrupt()
	if tm.title != AppName {
		t.Fatalf("title after interrupt = %q, want %q", tm.title, AppName)
	}
}

func TestTimerInterruptJournals(t *testing.T) {
	a, clk := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Write", "25")
	id := a.manager.ActiveID()

	clk.advance(10 * time.Minute)
	tm, cmd := a.timer.interrupt()
	if cmd == nil {
		t.Fatal("interrupt should return commands")
	}
	if a.manager.HasActiveCycle() {
		t.Fatal("no cycle should be active after interrupt")
	}
	if !tm.editing {
		t.Fatal("form should be focused again after interrupt")
	}

	got, err := a.store.GetCycle(id)
	if err != nil {
		t.Fatal(err)
	}
	if got.InterruptDate == nil || !got.InterruptDate.Equal(clk.now) {
		t.Fatalf("interrupt date = %v, want %v", got.InterruptDate, clk.now)
	}
}

func TestTimerInterruptNoActive(t *testing.T) {
	a, _ := newTestApp(t)
	if _, cmd := a.timer.interrupt(); cmd != nil {
		t.Fatal("interrupt with nothing active should be a no-op")
	}
}

func TestTimerExpiredStatus(t *testing.T) {
	a, clk := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Write", "5")
	id := a.manager.ActiveID()

	clk.advance(5*time.Minute + 2*time.Second)
	a.timer, _ = a.timer.handleTick(tickMsg{cycleID: id})
	if !a.manager.Expired() {
		t.Fatal("countdown should be expired")
	}
	if !a.manager.HasActiveCycle() {
		t.Fatal("an expired cycle stays active")
	}
	if got := a.manager.Countdown(); got != "-1:-2" {
		t.Fatalf("countdown = %q, want -1:-2", got)
	}
	if view := a.timer.view(); !strings.Contains(view, a.timer.labels.TimesUp) {
		t.Fatal("expired view should show the time's up hint")
	}
}

func TestTimerEscLeavesForm(t *testing.T) {
	a, _ := newTestApp(t)
	if !a.timer.editing {
		t.Fatal("form should start focused")
	}

	tm, _ := a.timer.update(tea.KeyMsg{Type: tea.KeyEsc})
	if tm.editing {
		t.Fatal("esc should leave the form")
	}
	tm, _ = tm.update(keyMsg("n"))
	if !tm.editing {
		t.Fatal("n should focus the form")
	}
}

var cmdType = reflect.TypeOf(tea.Cmd(nil))

// runCmd executes cmd and returns the messages it yields, flattening batches.
// Commands that block (cursor blink) are abandoned after a short wait and tick
// messages are dropped so the countdown chain does not loop.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()

	select {
	case msg := <-ch:
		switch msg.(type) {
		case nil, tickMsg:
			return nil
		}
		// tea.Batch and tea.Sequence both yield a slice of commands.
		if v := reflect.ValueOf(msg); v.Kind() == reflect.Slice && v.Type().Elem() == cmdType {
			var out []tea.Msg
			for i := 0; i < v.Len(); i++ {
				out = append(out, runCmd(v.Index(i).Interface().(tea.Cmd))...)
			}
			return out
		}
		return []tea.Msg{msg}
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}

// send delivers msg to the app and then every message its commands produce.
func send(t *testing.T, a App, msg tea.Msg) App {
	t.Helper()
	queue := []tea.Msg{msg}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 100 {
			t.Fatal("message loop did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		model, cmd := a.Update(next)
		a = model.(App)
		queue = append(queue, runCmd(cmd)...)
	}
	return a
}

func typeText(t *testing.T, a App, text string) App {
	t.Helper()
	for _, r := range text {
		a = send(t, a, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return a
}

func TestTimerFormKeystrokes(t *testing.T) {
	a, _ := newTestApp(t)
	a = send(t, a, tea.WindowSizeMsg{Width: 120, Height: 40})
	for _, msg := range runCmd(a.Init()) {
		a = send(t, a, msg)
	}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	a = send(t, a, enter)
	if a.manager.HasActiveCycle() {
		t.Fatal("an empty task must not start a cycle")
	}
	if !a.timer.editing {
		t.Fatal("form should stay focused after a rejected task")
	}
	if !strings.Contains(a.View(), "Task name required") {
		t.Fatal("view should show the task error")
	}

	a = typeText(t, a, "Write report")
	a = send(t, a, enter)
	a = typeText(t, a, "3")
	a = send(t, a, enter)
	if a.manager.HasActiveCycle() {
		t.Fatal("3 minutes must not start a cycle")
	}

	a = send(t, a, tea.KeyMsg{Type: tea.KeyBackspace})
	a = typeText(t, a, "25")
	a = send(t, a, enter)

	c, ok := a.manager.ActiveCycle()
	if !ok {
		t.Fatal("typed form should start a cycle")
	}
	if c.Task != "Write report" || c.MinutesAmount != 25 {
		t.Fatalf("unexpected cycle: %+v", c)
	}
	if a.timer.editing {
		t.Fatal("form should be left after start")
	}
	if _, err := a.store.GetCycle(c.ID); err != nil {
		t.Fatalf("cycle not journaled: %v", err)
	}
}

func TestTimerSuggestions(t *testing.T) {
	a, _ := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Projeto 2", "25")
	a.timer, _ = a.timer.interrupt()
	a.timer = startCycle(t, a.timer, "Deep work", "25")

	got := a.timer.taskSuggestions()
	want := []string{"Deep work", "Projeto 2", "Projeto 1"}
	if len(got) != len(want) {
		t.Fatalf("suggestions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("suggestions = %v, want %v", got, want)
		}
	}
}

func TestTimerView(t *testing.T) {
	a, _ := newTestApp(t)
	a.timer.setSize(100, 40)

	view := a.timer.view()
	if !strings.Contains(view, "Start") {
		t.Fatal("idle view should show the start button")
	}

	a.timer = startCycle(t, a.timer, "Write", "25")
	view = a.timer.view()
	if !strings.Contains(view, "Interrupt") || !strings.Contains(view, "Write") {
		t.Fatal("active view should show the task and the interrupt button")
	}
}

func TestValidationText(t *testing.T) {
	err := cycle.NewSchema("pt-BR").Validate("", 61)
	got := validationText(err)
	want := "Informe nome da tarefa; O valor máximo do ciclo é de 60 minutos"
	if got != want {
		t.Fatalf("validationText = %q, want %q", got, want)
	}

	_, err = cycle.NewSchema("en").ParseMinutes("3")
	if got := validationText(err); got != "Duration must be at least 5 minutes" {
		t.Fatalf("validationText = %q", got)
	}
}

// ============================================================
// App
// ============================================================

func TestAppTickRouting(t *testing.T) {
	a, clk := newTestApp(t)
	a.activeView = viewReports
	a.timer = startCycle(t, a.timer, "Write", "25")
	id := a.manager.ActiveID()

	clk.advance(2 * time.Second)
	model, cmd := a.Update(tickMsg{cycleID: id})
	a = model.(App)
	if cmd == nil {
		t.Fatal("tick should re-arm from any view")
	}
	if a.manager.SecondsPassed() != 2 {
		t.Fatalf("seconds passed = %d, want 2", a.manager.SecondsPassed())
	}

	if _, cmd := a.Update(tickMsg{cycleID: "gone"}); cmd != nil {
		t.Fatal("stale tick should be dropped")
	}
}

func TestAppNavigation(t *testing.T) {
	a, _ := newTestApp(t)

	// Digits belong to the form while it is focused.
	model, _ := a.Update(keyMsg("2"))
	a = model.(App)
	if a.activeView != viewTimer {
		t.Fatal("keys should go to the focused form")
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)

	views := []struct {
		key  string
		want viewState
	}{
		{"2", viewHistory},
		{"3", viewReports},
		{"4", viewSettings},
		{"1", viewTimer},
	}
	for _, v := range views {
		model, _ = a.Update(keyMsg(v.key))
		a = model.(App)
		if a.activeView != v.want {
			t.Fatalf("key %s: view = %d, want %d", v.key, a.activeView, v.want)
		}
	}

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyTab})
	a = model.(App)
	if a.activeView != viewHistory {
		t.Fatalf("tab: view = %d, want %d", a.activeView, viewHistory)
	}
}

func TestAppInterruptFromAnyView(t *testing.T) {
	a, _ := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Write", "25")
	a.activeView = viewHistory

	model, _ := a.Update(keyMsg("x"))
	a = model.(App)
	if a.manager.HasActiveCycle() {
		t.Fatal("x should interrupt from the history view")
	}
}

func TestAppStatus(t *testing.T) {
	a, _ := newTestApp(t)
	model, _ := a.Update(statusMsg{text: "boom", isError: true})
	a = model.(App)
	if a.status != "boom" || !a.statusError {
		t.Fatalf("status = %q (error %v)", a.status, a.statusError)
	}
}

func TestAppSettingsSaved(t *testing.T) {
	a, _ := newTestApp(t)
	model, _ := a.Update(settingsSavedMsg{defaultMinutes: 15, locale: "pt-BR"})
	a = model.(App)

	if a.timer.labels.Start != uiLabels["pt-BR"].Start {
		t.Fatal("labels should switch to pt-BR")
	}
	if a.manager.Schema().Messages.TaskRequired != "Informe nome da tarefa" {
		t.Fatal("validation messages should switch to pt-BR")
	}
	if *a.timer.minutes != "15" {
		t.Fatalf("minutes field = %q, want 15", *a.timer.minutes)
	}
}

func TestAppLocaleFromStore(t *testing.T) {
	clk := &testClock{now: time.Now()}
	s := newTestStore(t)
	if err := s.SetSetting(store.SettingLocale, "pt-BR"); err != nil {
		t.Fatal(err)
	}
	a := NewApp(s, newTestManager(clk), testConfig())
	if a.timer.labels.TaskTitle != "Vou trabalhar em" {
		t.Fatalf("task title = %q", a.timer.labels.TaskTitle)
	}
}

func TestAppExport(t *testing.T) {
	a, _ := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Write", "25")

	for _, f := range export.Formats() {
		msg := a.doExport(f)()
		done, ok := msg.(exportDoneMsg)
		if !ok {
			t.Fatalf("export %s: unexpected message %#v", f, msg)
		}
		if filepath.Ext(done.path) != "."+f.Ext() {
			t.Fatalf("export path %q has the wrong extension", done.path)
		}
		if _, err := os.Stat(done.path); err != nil {
			t.Fatalf("export %s: %v", f, err)
		}
	}
}

func TestAppExportBadDir(t *testing.T) {
	a, _ := newTestApp(t)
	a.exportDir = "/nonexistent/dir"
	msg := a.doExport(export.FormatCSV)()
	if st, ok := msg.(statusMsg); !ok || !st.isError {
		t.Fatalf("expected error status, got %#v", msg)
	}
}

func TestAppExportPicker(t *testing.T) {
	a, _ := newTestApp(t)
	model, _ := a.Update(tea.KeyMsg{Type: tea.KeyEsc})
	a = model.(App)

	model, _ = a.Update(keyMsg("e"))
	a = model.(App)
	if !a.exportPicking {
		t.Fatal("e should open the export picker")
	}
	for i := 0; i < 5; i++ {
		model, _ = a.Update(tea.KeyMsg{Type: tea.KeyDown})
		a = model.(App)
	}
	if a.exportCursor != len(export.Formats())-1 {
		t.Fatalf("cursor = %d, want %d", a.exportCursor, len(export.Formats())-1)
	}
	model, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	a = model.(App)
	if a.exportPicking || cmd == nil {
		t.Fatal("enter should close the picker and start the export")
	}
}

func TestAppView(t *testing.T) {
	a, _ := newTestApp(t)
	if a.View() != "Loading..." {
		t.Fatal("view before the first resize should be the loading text")
	}
	model, _ := a.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	a = model.(App)
	a.timer = startCycle(t, a.timer, "Write", "25")

	view := a.View()
	for _, name := range viewNames {
		if !strings.Contains(view, name) {
			t.Fatalf("header should list %q", name)
		}
	}
	if !strings.Contains(view, "25:00") {
		t.Fatal("footer should show the active countdown")
	}
}

// ============================================================
// History / Reports / Settings
// ============================================================

func TestHistoryFilter(t *testing.T) {
	a, _ := newTestApp(t)
	a.timer = startCycle(t, a.timer, "First", "25")
	a.timer, _ = a.timer.interrupt()
	a.timer = startCycle(t, a.timer, "Second", "25")

	h := a.history
	h.setSize(120, 40)
	h, _ = h.update(h.refresh()())
	if len(h.cycles) != 2 {
		t.Fatalf("all: got %d cycles, want 2", len(h.cycles))
	}

	h, cmd := h.update(keyMsg("f"))
	h, _ = h.update(cmd())
	if h.filter != filterActive || len(h.cycles) != 1 || h.cycles[0].Task != "Second" {
		t.Fatalf("active filter: %+v", h.cycles)
	}

	h, cmd = h.update(keyMsg("f"))
	h, _ = h.update(cmd())
	if h.filter != filterInterrupted || len(h.cycles) != 1 || h.cycles[0].Task != "First" {
		t.Fatalf("interrupted filter: %+v", h.cycles)
	}

	h, cmd = h.update(keyMsg("f"))
	h, _ = h.update(cmd())
	if h.filter != filterAll || len(h.cycles) != 2 {
		t.Fatal("filter should wrap back to all")
	}
	if !strings.Contains(h.view(), "Second") {
		t.Fatal("history view should list cycles")
	}
}

func TestHistoryCursor(t *testing.T) {
	a, _ := newTestApp(t)
	h := a.history
	h, _ = h.update(historyDataMsg{cycles: make([]cycle.Cycle, 3)})

	h, _ = h.update(tea.KeyMsg{Type: tea.KeyUp})
	if h.cursor != 0 {
		t.Fatal("cursor should not go above the first row")
	}
	for i := 0; i < 5; i++ {
		h, _ = h.update(tea.KeyMsg{Type: tea.KeyDown})
	}
	if h.cursor != 2 {
		t.Fatalf("cursor = %d, want 2", h.cursor)
	}

	h, _ = h.update(historyDataMsg{cycles: make([]cycle.Cycle, 1)})
	if h.cursor != 0 {
		t.Fatalf("cursor = %d after shrink, want 0", h.cursor)
	}
}

func TestReportsSummary(t *testing.T) {
	a, clk := newTestApp(t)
	a.timer = startCycle(t, a.timer, "Write", "25")
	clk.advance(10 * time.Minute)
	a.timer, _ = a.timer.interrupt()

	r := a.reports
	r.setSize(120, 40)
	r, _ = r.update(r.refresh()())
	if len(r.summaries) != 1 {
		t.Fatalf("got %d summaries, want 1", len(r.summaries))
	}
	s := r.summaries[0]
	if s.Task != "Write" || s.CycleCount != 1 || s.InterruptedCount != 1 || s.FocusedSeconds != 600 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if !strings.Contains(r.view(), "Write") {
		t.Fatal("reports view should list the task")
	}
}

func TestReportsEmpty(t *testing.T) {
	a, _ := newTestApp(t)
	r := a.reports
	r.setSize(80, 24)
	r, _ = r.update(reportsDataMsg{})
	if !strings.Contains(r.view(), "No cycles") {
		t.Fatal("empty report should say so")
	}
}

func TestSettingsSave(t *testing.T) {
	a, _ := newTestApp(t)
	st := a.settings
	*st.defaultMinutes = "45"
	*st.locale = "pt-BR"

	saved, err := st.saveSettings()
	if err != nil {
		t.Fatal(err)
	}
	if saved.defaultMinutes != 45 || saved.locale != "pt-BR" {
		t.Fatalf("unexpected saved settings: %+v", saved)
	}
	if got := a.store.GetSettingInt(store.SettingDefaultMinutes, 0); got != 45 {
		t.Fatalf("stored default minutes = %d, want 45", got)
	}

	*st.defaultMinutes = ""
	saved, err = st.saveSettings()
	if err != nil || saved.defaultMinutes != 0 {
		t.Fatalf("empty default minutes should save as 0, got %+v (%v)", saved, err)
	}
}

func TestValidateDefaultMinutes(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"", false},
		{"  ", false},
		{"5", false},
		{"60", false},
		{"4", true},
		{"61", true},
		{"x", true},
	}
	for _, tt := range tests {
		if err := validateDefaultMinutes(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("validateDefaultMinutes(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestFormatSettingValue(t *testing.T) {
	tests := []struct {
		key, value, want string
	}{
		{store.SettingDefaultMinutes, "0", "none"},
		{store.SettingDefaultMinutes, "25", "25 min"},
		{store.SettingLocale, "pt-BR", "Português (Brasil)"},
		{store.SettingLocale, "xx", "xx"},
	}
	for _, tt := range tests {
		if got := formatSettingValue(tt.key, tt.value); got != tt.want {
			t.Errorf("formatSettingValue(%q, %q) = %q, want %q", tt.key, tt.value, got, tt.want)
		}
	}
}

// ============================================================
// Helpers
// ============================================================

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "00:00:00"},
		{time.Second, "00:00:01"},
		{time.Minute, "00:01:00"},
		{time.Hour, "01:00:00"},
		{time.Hour + 23*time.Minute + 45*time.Second, "01:23:45"},
	}
	for _, tt := range tests {
		if got := formatDuration(tt.d); got != tt.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestFormatMinutes(t *testing.T) {
	if got := formatMinutes(90); got != "1.5 min" {
		t.Fatalf("formatMinutes(90) = %q", got)
	}
}

func TestLabelsFallback(t *testing.T) {
	if labelsFor("fr").Start != uiLabels["en"].Start {
		t.Fatal("unknown locale should fall back to English")
	}
	if labelsFor("pt-BR").Interrupt != "■ Interromper" {
		t.Fatal("pt-BR labels should match the original wording")
	}
}
