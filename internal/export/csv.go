package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/cyclr/internal/cycle"
)

var csvHeader = []string{"ID", "Task", "Minutes", "Start", "Interrupted", "Status", "Focused (s)", "Focused"}

func ToCSV(cycles []cycle.Cycle, now time.Time, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, c := range cycles {
		r := toRecord(c, now)
		row := []string{
			r.ID,
			r.Task,
			strconv.Itoa(r.MinutesAmount),
			r.StartDate,
			r.InterruptDate,
			r.Status,
			strconv.FormatInt(r.FocusedSec, 10),
			r.Focused,
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row %s: %w", r.ID, err)
		}
	}

	w.Flush()
	return w.Error()
}
