package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sadopc/cyclr/internal/cycle"
)

// Timestamps are stored in UTC with millisecond precision, a layout SQLite's
// date functions understand.
const timeLayout = "2006-01-02T15:04:05.000Z"

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(timeLayout, s)
	return t
}

// InsertCycle appends a newly created cycle to the journal.
func (s *Store) InsertCycle(c cycle.Cycle) error {
	var interrupt any
	if c.InterruptDate != nil {
		interrupt = formatTime(*c.InterruptDate)
	}
	_, err := s.db.Exec(
		`INSERT INTO cycles (id, task, minutes_amount, start_date, interrupt_date) VALUES (?, ?, ?, ?, ?)`,
		c.ID, c.Task, c.MinutesAmount, formatTime(c.StartDate), interrupt,
	)
	return wrapCycleErr("insert", c.ID, err)
}

// InterruptCycle stamps a cycle's interrupt date. A cycle can be stamped once.
func (s *Store) InterruptCycle(id string, at time.Time) error {
	res, err := s.db.Exec(
		`UPDATE cycles SET interrupt_date = ? WHERE id = ? AND interrupt_date IS NULL`,
		formatTime(at), id,
	)
	if err != nil {
		return wrapCycleErr("interrupt", id, err)
	}
	n, _ := res.RowsAffected()
	if n == 1 {
		return nil
	}

	c, err := s.GetCycle(id)
	if err != nil {
		return err
	}
	if c.InterruptDate != nil {
		return wrapCycleErr("interrupt", id, ErrAlreadyInterrupted)
	}
	return wrapCycleErr("interrupt", id, fmt.Errorf("no rows updated"))
}

func (s *Store) GetCycle(id string) (*cycle.Cycle, error) {
	row := s.db.QueryRow(
		`SELECT id, task, minutes_amount, start_date, interrupt_date FROM cycles WHERE id = ?`, id,
	)
	c, err := scanCycle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, wrapCycleErr("get", id, ErrNotFound)
	}
	if err != nil {
		return nil, wrapCycleErr("get", id, err)
	}
	return &c, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanCycle(sc scanner) (cycle.Cycle, error) {
	var c cycle.Cycle
	var start string
	var interrupt sql.NullString
	if err := sc.Scan(&c.ID, &c.Task, &c.MinutesAmount, &start, &interrupt); err != nil {
		return cycle.Cycle{}, err
	}
	c.StartDate = parseTime(start)
	if interrupt.Valid {
		t := parseTime(interrupt.String)
		c.InterruptDate = &t
	}
	return c, nil
}

// ListCycles returns cycles in creation order.
func (s *Store) ListCycles(f CycleFilter) ([]cycle.Cycle, error) {
	query := `SELECT id, task, minutes_amount, start_date, interrupt_date FROM cycles WHERE 1=1`
	var args []any

	if f.Task != "" {
		query += ` AND task = ?`
		args = append(args, f.Task)
	}
	if f.Interrupted != nil {
		if *f.Interrupted {
			query += ` AND interrupt_date IS NOT NULL`
		} else {
			query += ` AND interrupt_date IS NULL`
		}
	}
	if f.From != nil {
		query += ` AND start_date >= ?`
		args = append(args, formatTime(*f.From))
	}
	if f.To != nil {
		query += ` AND start_date < ?`
		args = append(args, formatTime(*f.To))
	}
	query += ` ORDER BY seq`
	if f.Limit > 0 {
		query += fmt.Sprintf(` LIMIT %d`, f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	defer rows.Close()

	var cycles []cycle.Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, err
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

// GetTaskSummary aggregates cycles per task. A cycle still running counts its
// focus time up to now.
func (s *Store) GetTaskSummary(now time.Time) ([]TaskSummary, error) {
	rows, err := s.db.Query(`
		SELECT task,
		       COUNT(*),
		       SUM(CASE WHEN interrupt_date IS NOT NULL THEN 1 ELSE 0 END),
		       SUM(minutes_amount),
		       CAST(ROUND(SUM(MAX(0, (julianday(COALESCE(interrupt_date, ?)) - julianday(start_date)) * 86400))) AS INTEGER)
		FROM cycles
		GROUP BY task
		ORDER BY MIN(seq)`,
		formatTime(now),
	)
	if err != nil {
		return nil, fmt.Errorf("task summary: %w", err)
	}
	defer rows.Close()

	var summaries []TaskSummary
	for rows.Next() {
		var ts TaskSummary
		if err := rows.Scan(&ts.Task, &ts.CycleCount, &ts.InterruptedCount, &ts.PlannedMinutes, &ts.FocusedSeconds); err != nil {
			return nil, err
		}
		summaries = append(summaries, ts)
	}
	return summaries, rows.Err()
}

// GetTaskSuggestions returns the most recently used distinct task names.
func (s *Store) GetTaskSuggestions(limit int) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT task FROM cycles GROUP BY task ORDER BY MAX(seq) DESC LIMIT ?`, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("task suggestions: %w", err)
	}
	defer rows.Close()

	var tasks []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}
