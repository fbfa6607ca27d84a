package features

import (
    "DeceptionIndex/internal/domain/models"
    "DeceptionIndex/pkg/util"
)

// DefaultSeasonMonths are April through October.
var DefaultSeasonMonths = []int{4, 5, 6, 7, 8, 9, 10}

// FilterRegularSeason keeps events whose game date falls in one of months.
// Events with a zero game date are dropped. An empty months list falls back
// to DefaultSeasonMonths.
func FilterRegularSeason(events []models.PitchEvent, months []int) []models.PitchEvent {
    if len(months) == 0 {
        months = DefaultSeasonMonths
    }
    set := util.MonthSet(months)
    out := make([]models.PitchEvent, 0, len(events))
    for _, e := range events {
        if e.GameDate.IsZero() || !set[e.GameDate.Month()] {
            continue
        }
        out = append(out, e)
    }
    return out
}

// GroupByPitchType buckets events by pitch type, skipping events without one.
// The returned order lists pitch types by first appearance.
func GroupByPitchType(events []models.PitchEvent) (map[string][]models.PitchEvent, []string) {
    groups := make(map[string][]models.PitchEvent)
    var order []string
    for _, e := range events {
        if e.PitchType == "" {
            continue
        }
        if _, ok := groups[e.PitchType]; !ok {
            order = append(order, e.PitchType)
        }
        groups[e.PitchType] = append(groups[e.PitchType], e)
    }
    return groups, order
}
