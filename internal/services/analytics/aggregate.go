package analytics

import (
    "math"

    "DeceptionIndex/internal/domain/models"
    "DeceptionIndex/internal/services/features"
)

// Aggregate derives the deception components for one pitcher from its
// season-filtered events. No events yields an unavailable record with
// reason off_season. NaN components are kept; Cohort excludes them later.
func Aggregate(p models.Pitcher, playerID int, events []models.PitchEvent) models.PitcherRecord {
    if len(events) == 0 {
        return models.Unavailable(p, playerID, models.ReasonOffSeason)
    }
    groups, order := features.GroupByPitchType(events)
    return models.PitcherRecord{
        Pitcher:      p,
        PlayerID:     playerID,
        Available:    true,
        TotalPitches: len(events),
        Raw: models.Components{
            ReleaseVar: releaseVariance(groups, order),
            VeloSep:    velocitySeparation(groups, order),
            SpinDiff:   spinAxisRange(groups, order),
        },
    }
}

func releaseVariance(groups map[string][]models.PitchEvent, order []string) float64 {
    xs := make([]float64, 0, len(order))
    zs := make([]float64, 0, len(order))
    for _, pt := range order {
        x, z := column(groups[pt], posX), column(groups[pt], posZ)
        xs = append(xs, sampleStd(x))
        zs = append(zs, sampleStd(z))
    }
    return mean([]float64{mean(xs), mean(zs)})
}

func velocitySeparation(groups map[string][]models.PitchEvent, order []string) float64 {
    fb := 0.0
    var others []float64
    for _, pt := range order {
        m := mean(column(groups[pt], speed))
        if pt == models.FastballType {
            fb = m
            continue
        }
        others = append(others, m)
    }
    off := mean(others)
    if math.IsNaN(off) {
        return 0
    }
    return fb - off
}

func spinAxisRange(groups map[string][]models.PitchEvent, order []string) float64 {
    means := make([]float64, 0, len(order))
    for _, pt := range order {
        means = append(means, mean(column(groups[pt], spin)))
    }
    d, ok := span(means)
    if !ok {
        return 0
    }
    return d
}

func posX(e models.PitchEvent) float64  { return e.ReleasePosX }
func posZ(e models.PitchEvent) float64  { return e.ReleasePosZ }
func speed(e models.PitchEvent) float64 { return e.ReleaseSpeed }
func spin(e models.PitchEvent) float64  { return e.SpinAxis }

func column(events []models.PitchEvent, get func(models.PitchEvent) float64) []float64 {
    out := make([]float64, len(events))
    for i, e := range events {
        out[i] = get(e)
    }
    return out
}
