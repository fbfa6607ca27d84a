package usecase

import (
	"slices"
	"strings"
	"sync"
	"time"

	"DeceptionIndex/internal/domain/models"
)

// Scoreboard holds the most recent scored table for read access.
type Scoreboard struct {
	mu        sync.RWMutex
	runID     string
	updatedAt time.Time
	table     models.Table
	ready     bool
}

func NewScoreboard() *Scoreboard { return &Scoreboard{} }

// Update replaces the current table.
func (b *Scoreboard) Update(runID string, table models.Table) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.runID = runID
	b.table = table
	b.updatedAt = time.Now().UTC()
	b.ready = true
}

// Ready reports whether a table has been published.
func (b *Scoreboard) Ready() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.ready
}

// RunID returns the id and time of the last update.
func (b *Scoreboard) RunID() (string, time.Time) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.runID, b.updatedAt
}

// Len returns the number of scored rows.
func (b *Scoreboard) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.table.Rows)
}

// Top returns up to limit rows in table order, or reversed when ascending is
// set. A limit of zero returns every row.
func (b *Scoreboard) Top(limit int, ascending bool) []models.ScoredPitcher {
	b.mu.RLock()
	rows := append([]models.ScoredPitcher(nil), b.table.Rows...)
	b.mu.RUnlock()

	if ascending {
		slices.Reverse(rows)
	}
	if limit > 0 && len(rows) > limit {
		rows = rows[:limit]
	}
	return rows
}

// Find looks a scored pitcher up by full name, ignoring case.
func (b *Scoreboard) Find(name string) (models.ScoredPitcher, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	name = strings.TrimSpace(name)
	for _, row := range b.table.Rows {
		if strings.EqualFold(row.Name, name) {
			return row, true
		}
	}
	return models.ScoredPitcher{}, false
}

// Excluded returns pitchers left out of the last cohort.
func (b *Scoreboard) Excluded() []models.PitcherRecord {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]models.PitcherRecord(nil), b.table.Excluded...)
}

// Degenerate returns metrics that had no spread in the last cohort.
func (b *Scoreboard) Degenerate() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return append([]string(nil), b.table.Degenerate...)
}
