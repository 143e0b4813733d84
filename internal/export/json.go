package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/cyclr/internal/cycle"
)

type document struct {
	ExportedAt string   `json:"exported_at" yaml:"exported_at"`
	Count      int      `json:"count" yaml:"count"`
	Cycles     []record `json:"cycles" yaml:"cycles"`
}

func newDocument(cycles []cycle.Cycle, now time.Time) document {
	doc := document{
		ExportedAt: now.UTC().Format(time.RFC3339),
		Count:      len(cycles),
	}
	for _, c := range cycles {
		doc.Cycles = append(doc.Cycles, toRecord(c, now))
	}
	return doc
}

func ToJSON(cycles []cycle.Cycle, now time.Time, path string) error {
	data, err := json.MarshalIndent(newDocument(cycles, now), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
