package repository

import (
	"context"

	"DeceptionIndex/internal/domain/models"
)

// PlayerLookup resolves a pitcher's name to a provider player id.
type PlayerLookup interface {
	LookupPlayer(ctx context.Context, first, last string) (int, error)
}

// PitchSource retrieves pitch-level events for a player.
type PitchSource interface {
	PitchEvents(ctx context.Context, playerID int, window models.DateRange) ([]models.PitchEvent, error)
}

// ScoreSink receives the scored cohort of a run.
type ScoreSink interface {
	Save(ctx context.Context, runID string, rows []models.ScoredPitcher) error
	Close() error
}

type Metrics interface {
	RecordFetch(status, reason, source string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordCohort(size, excluded int)
	RecordScore(name string, score float64)
}
