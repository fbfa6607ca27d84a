package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"DeceptionIndex/internal/domain/models"
)

// CSVHeader is the column order of the score file.
var CSVHeader = []string{"name", models.MetricScore, models.MetricReleaseVar, models.MetricVeloSep, models.MetricSpinDiff}

// WriteCSV writes rows in the given order under CSVHeader.
func WriteCSV(w io.Writer, rows []models.ScoredPitcher) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		rec := []string{
			row.Name,
			formatFloat(row.Score),
			formatFloat(row.Raw.ReleaseVar),
			formatFloat(row.Raw.VeloSep),
			formatFloat(row.Raw.SpinDiff),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write %s: %w", row.Name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
