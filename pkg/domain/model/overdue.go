package model

import (
	"log/slog"

	"github.com/coffeepanda/dashcheck/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// OverduePolicy decides whether a measured submission is overdue. It is
// fixed for the whole run.
type OverduePolicy struct {
	Unit      types.OverdueUnit `yaml:"overdue_unit"`
	Threshold float64           `yaml:"overdue_threshold"`
}

// Validate validates the policy
func (p OverduePolicy) Validate() error {
	if !p.Unit.IsValid() {
		return goerr.New("invalid overdue unit", goerr.V("unit", p.Unit))
	}
	if p.Threshold <= 0 {
		return goerr.New("overdue threshold must be positive", goerr.V("threshold", p.Threshold))
	}
	return nil
}

// Magnitude returns the elapsed value in the configured unit
func (p OverduePolicy) Magnitude(e Elapsed) float64 {
	if p.Unit == types.OverdueUnitHours {
		return e.Hours
	}
	return float64(e.Days)
}

// IsOverdue reports whether the elapsed value is strictly greater than the
// threshold. Invalid measurements are never overdue.
func (p OverduePolicy) IsOverdue(e Elapsed) bool {
	if !e.Valid() {
		return false
	}
	return p.Magnitude(e) > p.Threshold
}

// LogValue returns structured log value
func (p OverduePolicy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("unit", p.Unit.String()),
		slog.Float64("threshold", p.Threshold),
	)
}
