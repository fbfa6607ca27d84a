package analytics

import (
    "sort"

    "DeceptionIndex/internal/domain/models"
)

// Score weights. Lower release variance and spin-axis spread with larger
// velocity separation score higher.
const (
    WeightReleaseVar = 0.4
    WeightVeloSep    = 0.3
    WeightSpinDiff   = 0.3
)

// DeceptionScore combines normalized components into a score in [0, 1].
func DeceptionScore(n models.Components) float64 {
    return WeightReleaseVar*(1-n.ReleaseVar) + WeightVeloSep*n.VeloSep + WeightSpinDiff*(1-n.SpinDiff)
}

// BuildTable normalizes and scores the complete-data cohort of records.
// Rows are ordered by score descending, then name ascending.
func BuildTable(records []models.PitcherRecord) models.Table {
    cohort, excluded := Cohort(records)
    table := models.Table{Excluded: excluded, Rows: make([]models.ScoredPitcher, len(cohort))}

    norm := make(map[string][]float64, 3)
    for _, metric := range []string{models.MetricReleaseVar, models.MetricVeloSep, models.MetricSpinDiff} {
        raw := make([]float64, len(cohort))
        for i, r := range cohort {
            raw[i] = r.Raw.Get(metric)
        }
        n, degenerate := Normalize(raw)
        if degenerate {
            table.Degenerate = append(table.Degenerate, metric)
        }
        norm[metric] = n
    }

    for i, r := range cohort {
        n := models.Components{
            ReleaseVar: norm[models.MetricReleaseVar][i],
            VeloSep:    norm[models.MetricVeloSep][i],
            SpinDiff:   norm[models.MetricSpinDiff][i],
        }
        table.Rows[i] = models.ScoredPitcher{
            Name:         r.Pitcher.Name(),
            PlayerID:     r.PlayerID,
            Score:        DeceptionScore(n),
            Raw:          r.Raw,
            Normalized:   n,
            TotalPitches: r.TotalPitches,
        }
    }

    sort.SliceStable(table.Rows, func(i, j int) bool {
        a, b := table.Rows[i], table.Rows[j]
        if a.Score != b.Score {
            return a.Score > b.Score
        }
        return a.Name < b.Name
    })
    return table
}
