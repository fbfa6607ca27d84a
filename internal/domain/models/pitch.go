package models

import (
	"strings"
	"time"
)

// FastballType is the Statcast code for the four-seam fastball.
const FastballType = "FF"

// Pitcher identifies a roster entry.
type Pitcher struct {
	First string `yaml:"first" json:"first" validate:"required"`
	Last  string `yaml:"last" json:"last" validate:"required"`
}

// Name returns "First Last".
func (p Pitcher) Name() string {
	return strings.TrimSpace(p.First + " " + p.Last)
}

// PitchEvent is one recorded pitch. Missing numeric values are NaN.
type PitchEvent struct {
	PitchType    string    `json:"pitch_type"`
	GameDate     time.Time `json:"game_date"`
	ReleaseSpeed float64   `json:"release_speed"`
	ReleasePosX  float64   `json:"release_pos_x"`
	ReleasePosZ  float64   `json:"release_pos_z"`
	SpinAxis     float64   `json:"spin_axis"`
}

// DateRange is an inclusive day range used for provider queries.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// StartDay formats Start as YYYY-MM-DD.
func (r DateRange) StartDay() string { return r.Start.Format(time.DateOnly) }

// EndDay formats End as YYYY-MM-DD.
func (r DateRange) EndDay() string { return r.End.Format(time.DateOnly) }
