package usecase

import (
	"context"
	"fmt"
	"time"

	"DeceptionIndex/internal/domain/models"
	drepo "DeceptionIndex/internal/domain/repository"
	"DeceptionIndex/internal/services/analytics"
	"DeceptionIndex/internal/services/features"
	"DeceptionIndex/pkg/logger"

	"github.com/google/uuid"
)

// Fetcher obtains the raw events of one pitcher.
type Fetcher interface {
	Fetch(ctx context.Context, p models.Pitcher) models.FetchResult
}

// Reporter renders a scored table to its outputs.
type Reporter interface {
	Write(table models.Table) error
}

// Pipeline runs fetch, season filter and aggregation for every rostered
// pitcher in order, then scores the cohort and reports it.
type Pipeline struct {
	fetcher  Fetcher
	roster   []models.Pitcher
	months   []int
	reporter Reporter
	sink     drepo.ScoreSink
	board    *Scoreboard
	metrics  drepo.Metrics
	log      *logger.Logger
}

// NewPipeline creates a new Pipeline. sink and board may be nil.
func NewPipeline(fetcher Fetcher, roster []models.Pitcher, months []int, reporter Reporter, sink drepo.ScoreSink, board *Scoreboard, metrics drepo.Metrics, log *logger.Logger) *Pipeline {
	return &Pipeline{fetcher: fetcher, roster: roster, months: months, reporter: reporter, sink: sink, board: board, metrics: metrics, log: log}
}

// Collect processes pitchers sequentially and returns one record each.
// It stops early when ctx is cancelled.
func (p *Pipeline) Collect(ctx context.Context, roster []models.Pitcher) []models.PitcherRecord {
	records := make([]models.PitcherRecord, 0, len(roster))
	for _, pitcher := range roster {
		if ctx.Err() != nil {
			break
		}
		p.log.Info("processing pitcher", logger.String("name", pitcher.Name()))

		res := p.fetcher.Fetch(ctx, pitcher)
		if !res.OK() {
			p.log.Info("no data", logger.String("name", pitcher.Name()), logger.String("reason", res.Reason))
			records = append(records, models.Unavailable(pitcher, res.PlayerID, res.Reason))
			continue
		}

		season := features.FilterRegularSeason(res.Events, p.months)
		rec := analytics.Aggregate(pitcher, res.PlayerID, season)
		if !rec.Available {
			p.log.Info("no data", logger.String("name", pitcher.Name()), logger.String("reason", rec.Reason),
				logger.Int("events", len(res.Events)))
		}
		records = append(records, rec)
	}
	return records
}

// Run executes one full pass over the configured roster.
func (p *Pipeline) Run(ctx context.Context) (models.Table, error) {
	start := time.Now()
	records := p.Collect(ctx, p.roster)
	if err := ctx.Err(); err != nil {
		return models.Table{}, fmt.Errorf("collect: %w", err)
	}

	table := analytics.BuildTable(records)
	for _, metric := range table.Degenerate {
		p.log.Warn("degenerate metric normalized to zero", logger.String("metric", metric), logger.Int("cohort", len(table.Rows)))
	}
	p.metrics.RecordCohort(len(table.Rows), len(table.Excluded))
	for _, row := range table.Rows {
		p.metrics.RecordScore(row.Name, row.Score)
	}

	if err := p.reporter.Write(table); err != nil {
		p.metrics.RecordError("report")
		return table, fmt.Errorf("write report: %w", err)
	}

	runID := uuid.NewString()
	if p.board != nil {
		p.board.Update(runID, table)
	}
	p.metrics.RecordLatency("run", time.Since(start).Seconds())
	p.log.Info("run complete", logger.String("run_id", runID), logger.Int("scored", len(table.Rows)),
		logger.Int("excluded", len(table.Excluded)), logger.Duration("elapsed", time.Since(start)))

	if p.sink != nil && len(table.Rows) > 0 {
		if err := p.sink.Save(ctx, runID, table.Rows); err != nil {
			p.metrics.RecordError("sink")
			return table, fmt.Errorf("save scores: %w", err)
		}
	}
	return table, nil
}

// Roster returns the configured pitchers.
func (p *Pipeline) Roster() []models.Pitcher { return p.roster }
