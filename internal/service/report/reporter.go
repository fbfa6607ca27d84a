// Package report renders a scored cohort as bar charts, a CSV file and a
// console table.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"DeceptionIndex/internal/domain/models"
	"DeceptionIndex/pkg/logger"
)

// Options configures where and under which names a Reporter writes.
type Options struct {
	Dir    string
	CSV    string
	Team   string
	Label  string
	Charts ChartFiles
}

// Reporter writes every output of a run.
type Reporter struct {
	opts Options
	out  io.Writer
	log  *logger.Logger
}

// New creates a Reporter printing its console table to out.
func New(opts Options, out io.Writer, log *logger.Logger) *Reporter {
	if opts.Dir == "" {
		opts.Dir = "."
	}
	if out == nil {
		out = io.Discard
	}
	return &Reporter{opts: opts, out: out, log: log}
}

// Write renders table. An empty cohort produces a header-only CSV and no charts.
func (r *Reporter) Write(table models.Table) error {
	if err := os.MkdirAll(r.opts.Dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	if len(table.Rows) == 0 {
		r.log.Warn("no pitchers with complete data; skipping charts", logger.Int("excluded", len(table.Excluded)))
	} else if err := r.drawCharts(table.Rows); err != nil {
		return err
	}

	fmt.Fprintln(r.out, "\nPitcher Scores:")
	if err := PrintTable(r.out, table.Rows); err != nil {
		return fmt.Errorf("print table: %w", err)
	}
	if err := PrintExcluded(r.out, table.Excluded); err != nil {
		return fmt.Errorf("print excluded: %w", err)
	}

	path := filepath.Join(r.opts.Dir, r.opts.CSV)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	if err := WriteCSV(f, table.Rows); err != nil {
		_ = f.Close()
		return fmt.Errorf("write csv: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close csv: %w", err)
	}
	r.log.Info("saved scores", logger.String("path", path), logger.Int("rows", len(table.Rows)))
	return nil
}

func (r *Reporter) drawCharts(rows []models.ScoredPitcher) error {
	for _, c := range Charts(r.opts.Team, r.opts.Label, r.opts.Charts) {
		if c.File == "" {
			continue
		}
		path, err := DrawBarChart(r.opts.Dir, c, rows)
		if err != nil {
			return fmt.Errorf("chart %s: %w", c.Column, err)
		}
		r.log.Info("saved chart", logger.String("path", path))
	}
	return nil
}
