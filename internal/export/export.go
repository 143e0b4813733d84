// Package export writes the session's cycles to files the user asks for.
package export

import (
	"fmt"
	"time"

	"github.com/sadopc/cyclr/internal/cycle"
)

// Format identifies an export file type.
type Format int

const (
	FormatCSV Format = iota
	FormatJSON
	FormatYAML
)

var formatNames = []string{"CSV", "JSON", "YAML"}
var formatExts = []string{"csv", "json", "yaml"}

// Formats lists every supported format in picker order.
func Formats() []Format {
	return []Format{FormatCSV, FormatJSON, FormatYAML}
}

func (f Format) String() string { return formatNames[f] }

// Ext is the file extension for f, without the dot.
func (f Format) Ext() string { return formatExts[f] }

// Write dispatches to the writer for f.
func Write(f Format, cycles []cycle.Cycle, now time.Time, path string) error {
	switch f {
	case FormatCSV:
		return ToCSV(cycles, now, path)
	case FormatJSON:
		return ToJSON(cycles, now, path)
	case FormatYAML:
		return ToYAML(cycles, now, path)
	}
	return fmt.Errorf("unknown export format %d", f)
}

// Cycle status labels.
const (
	StatusActive      = "active"
	StatusInterrupted = "interrupted"
)

type record struct {
	ID            string `json:"id" yaml:"id"`
	Task          string `json:"task" yaml:"task"`
	MinutesAmount int    `json:"minutes_amount" yaml:"minutes_amount"`
	StartDate     string `json:"start_date" yaml:"start_date"`
	InterruptDate string `json:"interrupt_date,omitempty" yaml:"interrupt_date,omitempty"`
	Status        string `json:"status" yaml:"status"`
	FocusedSec    int64  `json:"focused_seconds" yaml:"focused_seconds"`
	Focused       string `json:"focused" yaml:"focused"`
}

func toRecord(c cycle.Cycle, now time.Time) record {
	r := record{
		ID:            c.ID,
		Task:          c.Task,
		MinutesAmount: c.MinutesAmount,
		StartDate:     c.StartDate.Local().Format(time.RFC3339),
		Status:        StatusActive,
	}
	if c.InterruptDate != nil {
		r.InterruptDate = c.InterruptDate.Local().Format(time.RFC3339)
		r.Status = StatusInterrupted
	}
	r.FocusedSec = int64(c.Focused(now) / time.Second)
	r.Focused = formatDuration(r.FocusedSec)
	return r
}

func formatDuration(secs int64) string {
	h := secs / 3600
	m := (secs % 3600) / 60
	s := secs % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}
