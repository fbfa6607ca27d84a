package util

import (
    "strconv"
    "strings"
    "time"
)

// ParseDay parses YYYY-MM-DD, falling back to RFC3339. Returns (t, true) if any worked.
func ParseDay(s string) (time.Time, bool) {
    s = strings.TrimSpace(s)
    if s == "" {
        return time.Time{}, false
    }
    if t, err := time.Parse(time.DateOnly, s); err == nil {
        return t, true
    }
    if t, err := time.Parse(time.RFC3339, s); err == nil {
        return t, true
    }
    return time.Time{}, false
}

// ParseDayDefault parses a day or returns def if empty/invalid.
func ParseDayDefault(s string, def time.Time) time.Time {
    if t, ok := ParseDay(s); ok {
        return t
    }
    return def
}

// MonthSet builds a lookup set from month numbers, ignoring values outside 1..12.
func MonthSet(months []int) map[time.Month]bool {
    set := make(map[time.Month]bool, len(months))
    for _, m := range months {
        if m < 1 || m > 12 {
            continue
        }
        set[time.Month(m)] = true
    }
    return set
}

// ParseFloatNaN parses a float cell; empty or unparsable cells become NaN.
func ParseFloatNaN(s string) float64 {
    s = strings.TrimSpace(s)
    if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "nan") {
        return nan()
    }
    v, err := strconv.ParseFloat(s, 64)
    if err != nil {
        return nan()
    }
    return v
}
