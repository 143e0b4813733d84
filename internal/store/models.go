package store

import "time"

// CycleFilter narrows ListCycles.
type CycleFilter struct {
	Task        string
	Interrupted *bool
	From        *time.Time
	To          *time.Time
	Limit       int
}

// TaskSummary aggregates the session's cycles per task.
type TaskSummary struct {
	Task             string
	CycleCount       int
	InterruptedCount int
	PlannedMinutes   int
	FocusedSeconds   int64
}

type Setting struct {
	Key   string
	Value string
}
