package analytics

import (
    "math"

    "gonum.org/v1/gonum/floats"
    "gonum.org/v1/gonum/stat"
)

// finite returns the non-NaN values of xs.
func finite(xs []float64) []float64 {
    out := make([]float64, 0, len(xs))
    for _, x := range xs {
        if !math.IsNaN(x) {
            out = append(out, x)
        }
    }
    return out
}

// mean skips NaN values; all-NaN or empty input yields NaN.
func mean(xs []float64) float64 {
    v := finite(xs)
    if len(v) == 0 {
        return math.NaN()
    }
    return stat.Mean(v, nil)
}

// sampleStd is the n-1 standard deviation over non-NaN values, NaN below two values.
func sampleStd(xs []float64) float64 {
    v := finite(xs)
    if len(v) < 2 {
        return math.NaN()
    }
    return stat.StdDev(v, nil)
}

// span returns max-min over non-NaN values and false when there are none.
func span(xs []float64) (float64, bool) {
    v := finite(xs)
    if len(v) == 0 {
        return 0, false
    }
    return floats.Max(v) - floats.Min(v), true
}
