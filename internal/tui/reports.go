package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sadopc/cyclr/internal/store"
)

// Bar colors, assigned to tasks in summary order.
var taskColors = []lipgloss.Color{
	"#6C63FF", "#2EC4B6", "#FF6B6B", "#F39C12", "#2ECC71", "#7AA2F7", "#E056FD", "#F8C291",
}

type reportsModel struct {
	store  *store.Store
	width  int
	height int

	summaries []store.TaskSummary

	chart barchart.Model
}

func newReportsModel(s *store.Store) reportsModel {
	return reportsModel{
		store: s,
		chart: barchart.New(60, 12),
	}
}

func (r *reportsModel) setSize(w, h int) {
	r.width = w
	r.height = h
}

type reportsDataMsg struct {
	summaries []store.TaskSummary
	err       error
}

func (r reportsModel) refresh() tea.Cmd {
	return func() tea.Msg {
		summaries, err := r.store.GetTaskSummary(time.Now())
		return reportsDataMsg{summaries: summaries, err: err}
	}
}

func (r reportsModel) update(msg tea.Msg) (reportsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case reportsDataMsg:
		if msg.err != nil {
			return r, statusCmd(fmt.Sprintf("Report error: %v", msg.err), true)
		}
		r.summaries = msg.summaries
		r.buildChart()
		return r, nil
	}
	return r, nil
}

func taskColor(i int) lipgloss.Color {
	return taskColors[i%len(taskColors)]
}

func (r *reportsModel) buildChart() {
	chartWidth := r.width - 8
	if chartWidth < 20 {
		chartWidth = 20
	}
	chartHeight := 12
	if r.height > 30 {
		chartHeight = 16
	}

	r.chart = barchart.New(chartWidth, chartHeight)

	var bars []barchart.BarData
	for i, s := range r.summaries {
		label := s.Task
		if len([]rune(label)) > 10 {
			label = string([]rune(label)[:9]) + "…"
		}
		bars = append(bars, barchart.BarData{
			Label: label,
			Values: []barchart.BarValue{{
				Name:  s.Task,
				Value: float64(s.FocusedSeconds) / 60.0,
				Style: lipgloss.NewStyle().Foreground(taskColor(i)),
			}},
		})
	}
	if len(bars) == 0 {
		bars = []barchart.BarData{{
			Label:  "",
			Values: []barchart.BarValue{{Name: "", Value: 0, Style: lipgloss.NewStyle().Foreground(colorSubtle)}},
		}}
	}

	r.chart.PushAll(bars)
	r.chart.Draw()
}

func (r reportsModel) view() string {
	w := r.width - 4

	var totalFocused int64
	for _, s := range r.summaries {
		totalFocused += s.FocusedSeconds
	}
	header := lipgloss.JoinHorizontal(lipgloss.Bottom,
		titleStyle.Render("Reports"), "  ",
		mutedStyle.Render(fmt.Sprintf("focused minutes per task, %s total", formatSeconds(totalFocused))),
	)

	return panelStyle.Width(w).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			header, "", r.chart.View(), "", r.renderLegend(), "", r.renderSummaryTable(w),
		),
	)
}

func (r reportsModel) renderSummaryTable(w int) string {
	if len(r.summaries) == 0 {
		return mutedStyle.Render("  No cycles in this session yet")
	}

	var rows []string
	headerRow := mutedStyle.Render(fmt.Sprintf("  %-20s %6s %11s %8s %10s %10s", "Task", "Cycles", "Interrupted", "Planned", "Focused", ""))
	rows = append(rows, headerRow)
	rows = append(rows, mutedStyle.Render("  "+strings.Repeat("─", min(w-6, 70))))

	for i, s := range r.summaries {
		colorDot := lipgloss.NewStyle().Foreground(taskColor(i)).Render("●")
		rows = append(rows, fmt.Sprintf("  %s %-18s %6d %11d %6d m %10s %10s",
			colorDot, s.Task, s.CycleCount, s.InterruptedCount, s.PlannedMinutes,
			formatSeconds(s.FocusedSeconds), formatMinutes(s.FocusedSeconds),
		))
	}

	return strings.Join(rows, "\n")
}

func (r reportsModel) renderLegend() string {
	var items []string
	for i, s := range r.summaries {
		dot := lipgloss.NewStyle().Foreground(taskColor(i)).Render("●")
		items = append(items, fmt.Sprintf("%s %s", dot, s.Task))
	}
	if len(items) == 0 {
		return ""
	}
	return "  " + strings.Join(items, "  ")
}
