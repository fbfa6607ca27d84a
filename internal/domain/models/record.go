package models

import "math"

// Metric names, also used as CSV column names.
const (
	MetricReleaseVar = "release_var"
	MetricVeloSep    = "velo_sep"
	MetricSpinDiff   = "spin_diff"
	MetricScore      = "deception_score"
)

// Components holds the three derived deception metrics.
type Components struct {
	ReleaseVar float64 `json:"release_var"`
	VeloSep    float64 `json:"velo_sep"`
	SpinDiff   float64 `json:"spin_diff"`
}

// Complete is false when any component is NaN.
func (c Components) Complete() bool {
	return !math.IsNaN(c.ReleaseVar) && !math.IsNaN(c.VeloSep) && !math.IsNaN(c.SpinDiff)
}

// Get returns the component named by one of the Metric* constants.
func (c Components) Get(metric string) float64 {
	switch metric {
	case MetricReleaseVar:
		return c.ReleaseVar
	case MetricVeloSep:
		return c.VeloSep
	case MetricSpinDiff:
		return c.SpinDiff
	default:
		return math.NaN()
	}
}

// PitcherRecord is the per-pitcher aggregate. When Available is false only
// Pitcher, PlayerID and Reason are meaningful.
type PitcherRecord struct {
	Pitcher      Pitcher    `json:"pitcher"`
	PlayerID     int        `json:"player_id"`
	Available    bool       `json:"mlb_data"`
	Reason       string     `json:"reason,omitempty"`
	Raw          Components `json:"raw"`
	TotalPitches int        `json:"total_pitches"`
}

// Unavailable builds a record for a pitcher without usable data.
func Unavailable(p Pitcher, playerID int, reason string) PitcherRecord {
	return PitcherRecord{Pitcher: p, PlayerID: playerID, Reason: reason}
}

// ScoredPitcher is one row of the final cohort table.
type ScoredPitcher struct {
	Name         string     `json:"name"`
	PlayerID     int        `json:"player_id"`
	Score        float64    `json:"deception_score"`
	Raw          Components `json:"raw"`
	Normalized   Components `json:"normalized"`
	TotalPitches int        `json:"total_pitches"`
}

// Value returns the raw metric or the score by column name.
func (s ScoredPitcher) Value(column string) float64 {
	if column == MetricScore {
		return s.Score
	}
	return s.Raw.Get(column)
}

// Table is the scored cohort. Rows are sorted by score descending.
type Table struct {
	Rows       []ScoredPitcher `json:"rows"`
	Excluded   []PitcherRecord `json:"excluded"`
	Degenerate []string        `json:"degenerate,omitempty"`
}
