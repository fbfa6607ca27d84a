package analytics

import "DeceptionIndex/internal/domain/models"

// Cohort splits records into those eligible for scoring and the excluded
// rest. Records that are available but carry an undefined component are
// excluded with reason incomplete_metrics.
func Cohort(records []models.PitcherRecord) (cohort, excluded []models.PitcherRecord) {
    for _, r := range records {
        switch {
        case !r.Available:
            excluded = append(excluded, r)
        case !r.Raw.Complete():
            r.Reason = models.ReasonIncomplete
            excluded = append(excluded, r)
        default:
            cohort = append(cohort, r)
        }
    }
    return cohort, excluded
}

// Normalize min-max scales values into [0, 1]. When every value is equal the
// result is all zeros and degenerate is true.
func Normalize(values []float64) (out []float64, degenerate bool) {
    out = make([]float64, len(values))
    if len(values) == 0 {
        return out, false
    }
    lo, hi := values[0], values[0]
    for _, v := range values[1:] {
        lo = min(lo, v)
        hi = max(hi, v)
    }
    if hi == lo {
        return out, true
    }
    for i, v := range values {
        out[i] = (v - lo) / (hi - lo)
    }
    return out, false
}
