package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"DeceptionIndex/internal/domain/models"
	drepo "DeceptionIndex/internal/domain/repository"
)

func day(m time.Month, d int) time.Time { return time.Date(2024, m, d, 0, 0, 0, 0, time.UTC) }

type fakeLookup struct {
	ids   map[string]int
	err   error
	calls int
}

func (f *fakeLookup) LookupPlayer(_ context.Context, first, last string) (int, error) {
	f.calls++
	if f.err != nil {
		return 0, f.err
	}
	id, ok := f.ids[first+" "+last]
	if !ok {
		return 0, drepo.ErrPlayerNotFound
	}
	return id, nil
}

type fakeSource struct {
	events map[int][]models.PitchEvent
	errs   map[int]error
	calls  int
}

func (f *fakeSource) PitchEvents(_ context.Context, id int, _ models.DateRange) ([]models.PitchEvent, error) {
	f.calls++
	if err := f.errs[id]; err != nil {
		return nil, err
	}
	return f.events[id], nil
}

type fetchCall struct{ status, reason, source string }

type fakeMetrics struct {
	mu      sync.Mutex
	fetches []fetchCall
	errs    []string
	cohort  [2]int
	scores  map[string]float64
}

func (m *fakeMetrics) RecordFetch(status, reason, source string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fetches = append(m.fetches, fetchCall{status, reason, source})
}
func (m *fakeMetrics) RecordError(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs = append(m.errs, kind)
}
func (m *fakeMetrics) RecordLatency(string, float64)   {}
func (m *fakeMetrics) RecordCohort(size, excluded int) { m.cohort = [2]int{size, excluded} }
func (m *fakeMetrics) RecordScore(name string, score float64) {
	if m.scores == nil {
		m.scores = map[string]float64{}
	}
	m.scores[name] = score
}

type fakeReporter struct {
	tables []models.Table
	err    error
}

func (r *fakeReporter) Write(t models.Table) error {
	r.tables = append(r.tables, t)
	return r.err
}

type fakeSink struct {
	runID string
	rows  []models.ScoredPitcher
	err   error
}

func (s *fakeSink) Save(_ context.Context, runID string, rows []models.ScoredPitcher) error {
	s.runID, s.rows = runID, rows
	return s.err
}
func (s *fakeSink) Close() error { return nil }

var errBoom = errors.New("connection reset by peer")

func pitch(pt string, month time.Month, speed, x, z, spin float64) models.PitchEvent {
	return models.PitchEvent{PitchType: pt, GameDate: day(month, 10), ReleaseSpeed: speed, ReleasePosX: x, ReleasePosZ: z, SpinAxis: spin}
}
