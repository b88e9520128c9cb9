package model

import (
	"time"

	"github.com/coffeepanda/dashcheck/pkg/domain/types"
)

// Run describes one execution of the checker
type Run struct {
	ID        types.RunID `firestore:"id"`
	StartedAt time.Time   `firestore:"started_at"`
	OutputDir string      `firestore:"output_dir"`
	Settings  Settings    `firestore:"settings"`
}

// NewRun creates a run with a fresh ID
func NewRun(startedAt time.Time, outputDir string, settings Settings) *Run {
	return &Run{
		ID:        types.NewRunID(),
		StartedAt: startedAt,
		OutputDir: outputDir,
		Settings:  settings,
	}
}

// TutorResult is the stored outcome of checking one tutor
type TutorResult struct {
	RunID        types.RunID       `firestore:"run_id"`
	TutorName    types.TutorName   `firestore:"tutor_name"`
	TutorID      types.AccountID   `firestore:"tutor_id"`
	Status       types.TutorStatus `firestore:"status"`
	Checked      int               `firestore:"checked"`
	OverdueCount int               `firestore:"overdue_count"`
	AverageHours *int              `firestore:"average_hours"`
	Histogram    []int             `firestore:"histogram"`
	Overdue      []float64         `firestore:"overdue"`
	CheckedAt    time.Time         `firestore:"checked_at"`
}

// NewTutorResult snapshots a tutor's counters
func NewTutorResult(runID types.RunID, t *Tutor, status types.TutorStatus, at time.Time) *TutorResult {
	hist := t.Histogram()
	result := &TutorResult{
		RunID:        runID,
		TutorName:    t.Name,
		TutorID:      t.ID,
		Status:       status,
		Checked:      t.Checked(),
		OverdueCount: t.OverdueCount(),
		Histogram:    hist[:],
		Overdue:      t.Overdue(),
		CheckedAt:    at,
	}

	if t.Checked() > 0 {
		if avg, err := t.AverageHours(); err == nil {
			result.AverageHours = &avg
		}
	}
	return result
}
