package model

import (
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
)

const (
	// submissionLayout matches "<year> <day> <month-abbrev> <hour>:<minute>"
	submissionLayout = "2006 2 Jan 15:04"

	// yearLookback is how many calendar years, counting the current one, are
	// recognised in a scraped timestamp. Anything older is read as the current
	// year; see DESIGN.md.
	yearLookback = 5

	markerMissing          = "missing"
	markerNoSubmissionTime = "no submission time"
)

// SubmissionTime is a scraped Canvas timestamp rewritten into a fixed layout
type SubmissionTime struct {
	Text       string // normalized text, "2024 5 Mar 14:30"
	YearOffset int    // 0 for the current year, up to yearLookback-1
}

// Parse parses the normalized text in the given location
func (s *SubmissionTime) Parse(loc *time.Location) (time.Time, error) {
	ts, err := time.ParseInLocation(submissionLayout, s.Text, loc)
	if err != nil {
		return time.Time{}, goerr.Wrap(ErrUnparseableSubmission, err.Error(),
			goerr.V("normalized", s.Text))
	}
	return ts, nil
}

// NormalizeSubmissionTime strips Canvas decoration from a scraped timestamp
// and prefixes the resolved year. It fails with ErrSubmissionMissing or
// ErrNoSubmissionTime when the page says there is nothing to measure.
func NormalizeSubmissionTime(raw string, now time.Time) (*SubmissionTime, error) {
	if strings.Contains(raw, markerMissing) {
		return nil, goerr.Wrap(ErrSubmissionMissing, "could not calculate time since submission",
			goerr.V("raw", raw))
	}
	if strings.Contains(raw, markerNoSubmissionTime) {
		return nil, goerr.Wrap(ErrNoSubmissionTime, "could not calculate time since submission",
			goerr.V("raw", raw))
	}

	s := strings.ReplaceAll(raw, "Submitted:\n", "")
	s = strings.ReplaceAll(s, "at ", "")
	s = strings.TrimRight(s, " \t\r\n")
	s = strings.ReplaceAll(s, "\n", "")

	offset := 0
	for i := 0; i < yearLookback; i++ {
		year := strconv.Itoa(now.Year() - i)
		if strings.Contains(s, year) {
			s = strings.ReplaceAll(s, year, "")
			offset = i
			break
		}
	}

	text := strconv.Itoa(now.Year()-offset) + " " + s
	return &SubmissionTime{
		Text:       strings.Join(strings.Fields(text), " "),
		YearOffset: offset,
	}, nil
}

// Elapsed is the time passed since a submission in both supported units.
// Both fields are -1 when the submission could not be measured.
type Elapsed struct {
	Hours float64
	Days  int
}

// Unmeasured is the sentinel for a submission that could not be parsed
var Unmeasured = Elapsed{Hours: -1, Days: -1}

// Valid reports whether both units hold a measurement
func (e Elapsed) Valid() bool {
	return e.Hours >= 0 && e.Days >= 0
}

// MeasureSubmission computes the elapsed hours and calendar days between a
// scraped timestamp and now. On any failure it returns Unmeasured together
// with the reason, which callers log and otherwise ignore.
func MeasureSubmission(raw string, now time.Time) (Elapsed, error) {
	st, err := NormalizeSubmissionTime(raw, now)
	if err != nil {
		return Unmeasured, err
	}

	submitted, err := st.Parse(now.Location())
	if err != nil {
		return Unmeasured, goerr.Wrap(err, "could not calculate time since submission",
			goerr.V("raw", raw))
	}

	return Elapsed{
		Hours: now.Sub(submitted).Hours(),
		Days:  calendarDays(submitted, now),
	}, nil
}

// HoursSinceSubmission returns fractional hours since the submission, or -1
func HoursSinceSubmission(raw string, now time.Time) float64 {
	e, _ := MeasureSubmission(raw, now)
	return e.Hours
}

// CalendarDaysSinceSubmission returns whole calendar days since the
// submission ignoring time of day, or -1
func CalendarDaysSinceSubmission(raw string, now time.Time) int {
	e, _ := MeasureSubmission(raw, now)
	return e.Days
}

func calendarDays(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
