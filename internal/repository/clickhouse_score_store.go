package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"DeceptionIndex/internal/domain/models"
	domrepo "DeceptionIndex/internal/domain/repository"
	pkgch "DeceptionIndex/pkg/clickhouse"
	applogger "DeceptionIndex/pkg/logger"
)

const scoresTable = "scores"

// ScoreSchema returns idempotent DDL for the score archive in database.
func ScoreSchema(database string) []string {
	return []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", database),
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s.%s (
            run_id          String,
            scored_at       DateTime,
            name            String,
            player_id       UInt32,
            deception_score Float64,
            release_var     Float64,
            velo_sep        Float64,
            spin_diff       Float64,
            total_pitches   UInt32
        ) ENGINE = MergeTree ORDER BY (run_id, name)`, database, scoresTable),
	}
}

// CHScoreStore archives scored cohorts in ClickHouse.
type CHScoreStore struct {
	client *pkgch.Client
	db     *sql.DB
	table  string
	l      *applogger.Logger
}

// NewCHScoreStore creates the schema if needed and returns the store.
func NewCHScoreStore(ctx context.Context, ch *pkgch.Client, l *applogger.Logger) (*CHScoreStore, error) {
	if err := ch.InitSchema(ctx, ScoreSchema(ch.Database())); err != nil {
		return nil, err
	}
	return &CHScoreStore{client: ch, db: ch.DB(), table: ch.Database() + "." + scoresTable, l: l}, nil
}

// Save inserts rows as one batch tagged with runID.
func (s *CHScoreStore) Save(ctx context.Context, runID string, rows []models.ScoredPitcher) error {
	if len(rows) == 0 {
		return nil
	}
	start := time.Now()
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin batch: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx, InsertScoresQuery(s.table))
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("prepare batch: %w", err)
	}
	defer stmt.Close()

	scoredAt := time.Now().UTC()
	for _, r := range rows {
		if _, err := stmt.ExecContext(ctx, ScoreArgs(runID, scoredAt, r)...); err != nil {
			_ = tx.Rollback()
			s.l.Error("clickhouse append score failed",
				applogger.String("table", s.table),
				applogger.String("name", r.Name),
				applogger.Error(err),
			)
			return fmt.Errorf("append %s: %w", r.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("send batch: %w", err)
	}
	s.l.Info("scores archived",
		applogger.String("table", s.table),
		applogger.String("run_id", runID),
		applogger.Int("rows", len(rows)),
		applogger.Duration("elapsed", time.Since(start)),
	)
	return nil
}

// Close releases the connection pool.
func (s *CHScoreStore) Close() error { return s.client.Close() }

// InsertScoresQuery is the batch insert statement for table.
func InsertScoresQuery(table string) string {
	return fmt.Sprintf("INSERT INTO %s (run_id, scored_at, name, player_id, deception_score, release_var, velo_sep, spin_diff, total_pitches)", table)
}

// ScoreArgs orders r's values to match InsertScoresQuery.
func ScoreArgs(runID string, scoredAt time.Time, r models.ScoredPitcher) []any {
	return []any{
		runID,
		scoredAt,
		r.Name,
		uint32(r.PlayerID),
		r.Score,
		r.Raw.ReleaseVar,
		r.Raw.VeloSep,
		r.Raw.SpinDiff,
		uint32(r.TotalPitches),
	}
}

var _ domrepo.ScoreSink = (*CHScoreStore)(nil)
