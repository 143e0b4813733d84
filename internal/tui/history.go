package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/cyclr/internal/cycle"
	"github.com/sadopc/cyclr/internal/store"
)

type historyFilter int

const (
	filterAll historyFilter = iota
	filterActive
	filterInterrupted
)

var historyFilterNames = []string{"All", "Active", "Interrupted"}

type historyModel struct {
	store  *store.Store
	width  int
	height int

	filter historyFilter
	cycles []cycle.Cycle
	cursor int
	now    time.Time
}

func newHistoryModel(s *store.Store) historyModel {
	return historyModel{store: s}
}

func (h *historyModel) setSize(w, ht int) {
	h.width = w
	h.height = ht
}

type historyDataMsg struct {
	cycles []cycle.Cycle
	now    time.Time
	err    error
}

func (h historyModel) refresh() tea.Cmd {
	f := h.storeFilter()
	return func() tea.Msg {
		cycles, err := h.store.ListCycles(f)
		return historyDataMsg{cycles: cycles, now: time.Now(), err: err}
	}
}

func (h historyModel) storeFilter() store.CycleFilter {
	var f store.CycleFilter
	switch h.filter {
	case filterActive:
		no := false
		f.Interrupted = &no
	case filterInterrupted:
		yes := true
		f.Interrupted = &yes
	}
	return f
}

func (h historyModel) update(msg tea.Msg) (historyModel, tea.Cmd) {
	switch msg := msg.(type) {
	case historyDataMsg:
		if msg.err != nil {
			return h, statusCmd(fmt.Sprintf("History error: %v", msg.err), true)
		}
		h.cycles = msg.cycles
		h.now = msg.now
		if h.cursor >= len(h.cycles) {
			h.cursor = max(0, len(h.cycles)-1)
		}
		return h, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Up):
			if h.cursor > 0 {
				h.cursor--
			}
		case key.Matches(msg, keys.Down):
			if h.cursor < len(h.cycles)-1 {
				h.cursor++
			}
		case key.Matches(msg, keys.Filter):
			h.filter = (h.filter + 1) % historyFilter(len(historyFilterNames))
			h.cursor = 0
			return h, h.refresh()
		}
	}
	return h, nil
}

func (h historyModel) view() string {
	w := h.width - 4

	var tabs []string
	for i, name := range historyFilterNames {
		if historyFilter(i) == h.filter {
			tabs = append(tabs, activeTabStyle.Render(name))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(name))
		}
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("History"), "  ", lipgloss.JoinHorizontal(lipgloss.Bottom, tabs...),
	)

	var rows []string
	if len(h.cycles) == 0 {
		rows = append(rows, mutedStyle.Render("  No cycles in this session yet"))
	} else {
		rows = append(rows, mutedStyle.Render(fmt.Sprintf("  %-3s %-24s %7s %-8s %-12s %10s", "#", "Task", "Minutes", "Start", "Status", "Focused")))
		rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 70))))

		// Keep the cursor on screen.
		visible := max(1, h.height-10)
		first := 0
		if h.cursor >= visible {
			first = h.cursor - visible + 1
		}
		last := min(len(h.cycles), first+visible)

		for i := first; i < last; i++ {
			rows = append(rows, h.renderRow(i, h.cycles[i]))
		}
	}

	nav := mutedStyle.Render("  ↑/↓: move  f: filter")
	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left, header, "", strings.Join(rows, "\n"), "", nav),
	)
}

func (h historyModel) renderRow(i int, c cycle.Cycle) string {
	status := successStyle.Render(fmt.Sprintf("%-12s", "● active"))
	if c.Interrupted() {
		status = warningStyle.Render(fmt.Sprintf("%-12s", "■ interrupted"))
	}

	task := c.Task
	if len([]rune(task)) > 24 {
		task = string([]rune(task)[:23]) + "…"
	}

	line := fmt.Sprintf("%-3d %-24s %7d %-8s %s %10s",
		i+1, task, c.MinutesAmount, c.StartDate.Local().Format("15:04:05"),
		status, formatDuration(c.Focused(h.now)),
	)
	if i == h.cursor {
		return selectedItemStyle.Render("> ") + line
	}
	return "  " + normalItemStyle.Render(line)
}
