package threshold

import (
	"encoding/json"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Point is the accumulated outcome of every counted trial at one
// (distance, error_rate) grid point.
type Point struct {
	Distance        int     `json:"distance"`
	ErrorRate       float64 `json:"error_rate"`
	Trials          int     `json:"trials"`
	LogicalFailures int     `json:"logical_failures"`
	DecodeRounds    int     `json:"decode_rounds"`
}

// FailureRate is LogicalFailures/Trials, or zero if no trials were counted.
func (p Point) FailureRate() float64 {
	if p.Trials == 0 {
		return 0
	}

	return float64(p.LogicalFailures) / float64(p.Trials)
}

// Report is the complete output of a Run: one Point per (distance,
// error_rate) grid cell, tagged with a RunID so shard outputs from a
// partitioned Monte-Carlo sweep (spec.md §5 "embarrassingly parallel
// across (D, p, trial)") can be merged and attributed.
type Report struct {
	RunID  uuid.UUID  `json:"run_id"`
	Family CodeFamily `json:"family"`
	Points []Point    `json:"points"`
}

// WriteJSON marshals r as indented JSON to path.
func (r Report) WriteJSON(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return errors.Wrap(err, "Report.WriteJSON: marshal")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "Report.WriteJSON(%q)", path)
	}

	return nil
}
