package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"DeceptionIndex/internal/domain/models"
)

// PrintTable writes a ranked, column-aligned view of rows.
func PrintTable(w io.Writer, rows []models.ScoredPitcher) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "rank\tname\tdeception_score\trelease_var\tvelo_sep\tspin_diff\t")
	for i, row := range rows {
		fmt.Fprintf(tw, "%d\t%s\t%.4f\t%.4f\t%.2f\t%.2f\t\n",
			i+1, row.Name, row.Score, row.Raw.ReleaseVar, row.Raw.VeloSep, row.Raw.SpinDiff)
	}
	return tw.Flush()
}

// PrintExcluded lists pitchers left out of the cohort with their reason.
func PrintExcluded(w io.Writer, records []models.PitcherRecord) error {
	if len(records) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "excluded\treason")
	for _, r := range records {
		fmt.Fprintf(tw, "%s\t%s\n", r.Pitcher.Name(), r.Reason)
	}
	return tw.Flush()
}
