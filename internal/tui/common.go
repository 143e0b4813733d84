package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// AppName is the program name, and the window title whenever no cycle is
// counting down.
const AppName = "cyclr"

// viewState represents the currently active view.
type viewState int

const (
	viewTimer viewState = iota
	viewHistory
	viewReports
	viewSettings
)

var viewNames = []string{"Timer", "History", "Reports", "Settings"}

// --- Messages ---

// tickMsg is one fire of the countdown chain armed for cycleID.
type tickMsg struct {
	cycleID string
}

type statusMsg struct {
	text    string
	isError bool
}

type exportDoneMsg struct {
	path string
}

// settingsSavedMsg carries the session settings after the settings form
// was submitted.
type settingsSavedMsg struct {
	defaultMinutes int
	locale         string
}

// cycleChangedMsg asks the journal-backed views to reload.
type cycleChangedMsg struct{}

func tickCmd(interval time.Duration, cycleID string) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return tickMsg{cycleID: cycleID}
	})
}

func statusCmd(text string, isError bool) tea.Cmd {
	return func() tea.Msg {
		return statusMsg{text: text, isError: isError}
	}
}

// --- Helpers ---

func formatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

func formatSeconds(secs int64) string {
	return formatDuration(time.Duration(secs) * time.Second)
}

func formatMinutes(secs int64) string {
	return fmt.Sprintf("%.1f min", float64(secs)/60)
}
