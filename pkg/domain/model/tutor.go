package model

import (
	"math"

	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// HistogramBuckets is the number of calendar-day buckets kept per tutor.
// Buckets 0-11 count exact days, the last one counts 12 days or more.
const HistogramBuckets = 13

// Tutor accumulates the checked submissions of one roster entry
type Tutor struct {
	Name types.TutorName
	ID   types.AccountID

	hours     []float64
	histogram [HistogramBuckets]int
	overdue   []float64
}

// NewTutor creates a tutor with empty counters
func NewTutor(name types.TutorName, id types.AccountID) *Tutor {
	return &Tutor{Name: name, ID: id}
}

// AddAssignment records one measured submission. The magnitude stored for
// an overdue submission is in the given unit.
func (t *Tutor) AddAssignment(e Elapsed, overdue bool, unit types.OverdueUnit) error {
	if !e.Valid() {
		return goerr.Wrap(ErrInvalidElapsed, "refusing to record submission",
			goerr.V("tutor", t.Name),
			goerr.V("hours", e.Hours),
			goerr.V("days", e.Days))
	}

	t.hours = append(t.hours, e.Hours)
	bucket := e.Days
	if bucket >= HistogramBuckets-1 {
		bucket = HistogramBuckets - 1
	}
	t.histogram[bucket]++

	if overdue {
		if unit == types.OverdueUnitHours {
			t.overdue = append(t.overdue, e.Hours)
		} else {
			t.overdue = append(t.overdue, float64(e.Days))
		}
	}
	return nil
}

// Checked returns how many submissions have been recorded
func (t *Tutor) Checked() int {
	return len(t.hours)
}

// OverdueCount returns the number of overdue submissions
func (t *Tutor) OverdueCount() int {
	return len(t.overdue)
}

// Overdue returns a copy of the overdue magnitudes
func (t *Tutor) Overdue() []float64 {
	return append([]float64(nil), t.overdue...)
}

// Histogram returns a copy of the calendar-day histogram
func (t *Tutor) Histogram() [HistogramBuckets]int {
	return t.histogram
}

// AverageHours returns the mean hours since submission rounded to the
// nearest integer. It fails when nothing has been recorded.
func (t *Tutor) AverageHours() (int, error) {
	if len(t.hours) == 0 {
		return 0, goerr.Wrap(ErrNoAssignmentsRecorded, "cannot average hours since submission",
			goerr.V("tutor", t.Name))
	}

	var sum float64
	for _, h := range t.hours {
		sum += h
	}
	return int(math.RoundToEven(sum / float64(len(t.hours)))), nil
}
