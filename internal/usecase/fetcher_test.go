package usecase

import (
	"context"
	"fmt"
	"math"
	"testing"
	"time"

	"DeceptionIndex/internal/domain/models"
	drepo "DeceptionIndex/internal/domain/repository"
	"DeceptionIndex/internal/service/breaker"
	"DeceptionIndex/internal/service/ratelimit"
	"DeceptionIndex/pkg/cache"
	"DeceptionIndex/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var window = models.DateRange{Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), End: time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC)}

func newFetcher(t *testing.T, lookup *fakeLookup, source *fakeSource, store cache.Service, delay time.Duration) (*PitchFetcher, *fakeMetrics) {
	t.Helper()
	m := &fakeMetrics{}
	guard := breaker.New("test", 3, time.Minute, nil)
	f := NewPitchFetcher(lookup, source, store, guard, ratelimit.NewPacer(delay), m, logger.Nop(), FetchOptions{Window: window, TTL: time.Hour})
	return f, m
}

func TestFetchFromProvider(t *testing.T) {
	lookup := &fakeLookup{ids: map[string]int{"Pete Fairbanks": 664126}}
	source := &fakeSource{events: map[int][]models.PitchEvent{664126: {pitch("FF", time.May, 98, -1.5, 6, 210)}}}
	f, m := newFetcher(t, lookup, source, nil, 20*time.Millisecond)

	start := time.Now()
	res := f.Fetch(context.Background(), models.Pitcher{First: "Pete", Last: "Fairbanks"})

	require.True(t, res.OK())
	assert.Equal(t, 664126, res.PlayerID)
	assert.Equal(t, models.SourceProvider, res.Source)
	assert.Len(t, res.Events, 1)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Equal(t, []fetchCall{{"ok", "", "provider"}}, m.fetches)
}

func TestFetchNoDataReasons(t *testing.T) {
	cases := []struct {
		name   string
		lookup *fakeLookup
		source *fakeSource
		reason string
	}{
		{"unknown player", &fakeLookup{}, &fakeSource{}, models.ReasonPlayerNotFound},
		{"lookup error", &fakeLookup{err: errBoom}, &fakeSource{}, models.ReasonLookupFailed},
		{"retrieval error", &fakeLookup{ids: map[string]int{"Joe Boyle": 7}}, &fakeSource{errs: map[int]error{7: errBoom}}, models.ReasonRetrievalFailed},
		{"missing columns", &fakeLookup{ids: map[string]int{"Joe Boyle": 7}}, &fakeSource{errs: map[int]error{7: fmt.Errorf("statcast csv 7: %w", drepo.ErrMissingColumns)}}, models.ReasonMissingColumns},
		{"empty", &fakeLookup{ids: map[string]int{"Joe Boyle": 7}}, &fakeSource{}, models.ReasonEmpty},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f, m := newFetcher(t, tc.lookup, tc.source, nil, 0)
			res := f.Fetch(context.Background(), models.Pitcher{First: "Joe", Last: "Boyle"})
			assert.False(t, res.OK())
			assert.Equal(t, models.FetchNoData, res.Status)
			assert.Equal(t, tc.reason, res.Reason)
			require.Len(t, m.fetches, 1)
			assert.Equal(t, tc.reason, m.fetches[0].reason)
		})
	}
}

func TestFetchUsesCacheOnSecondCall(t *testing.T) {
	store := cache.NewMemoryCache()
	defer store.Close()
	lookup := &fakeLookup{ids: map[string]int{"Shane Baz": 669358}}
	source := &fakeSource{events: map[int][]models.PitchEvent{669358: {
		pitch("FF", time.June, 97.1, -1.2, 5.9, 205),
		pitch("CU", time.June, math.NaN(), -1.3, 6.0, 40),
	}}}
	f, _ := newFetcher(t, lookup, source, store, 0)
	p := models.Pitcher{First: "Shane", Last: "Baz"}

	first := f.Fetch(context.Background(), p)
	second := f.Fetch(context.Background(), p)

	require.True(t, second.OK())
	assert.Equal(t, models.SourceProvider, first.Source)
	assert.Equal(t, models.SourceCache, second.Source)
	assert.Equal(t, 1, lookup.calls)
	assert.Equal(t, 1, source.calls)
	require.Len(t, second.Events, 2)
	assert.True(t, math.IsNaN(second.Events[1].ReleaseSpeed))
	assert.Equal(t, first.Events[0].GameDate, second.Events[0].GameDate)
	assert.Equal(t, 40.0, second.Events[1].SpinAxis)
}

func TestFetchBreakerOpens(t *testing.T) {
	lookup := &fakeLookup{err: errBoom}
	f, _ := newFetcher(t, lookup, &fakeSource{}, nil, 0)
	p := models.Pitcher{First: "Kevin", Last: "Kelly"}

	for i := 0; i < 3; i++ {
		assert.Equal(t, models.ReasonLookupFailed, f.Fetch(context.Background(), p).Reason)
	}
	res := f.Fetch(context.Background(), p)
	assert.Equal(t, models.ReasonBreakerOpen, res.Reason)
	assert.Equal(t, 3, lookup.calls)
}
