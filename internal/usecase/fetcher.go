package usecase

import (
	"context"
	"errors"
	"math"
	"strconv"
	"time"

	"DeceptionIndex/internal/domain/models"
	drepo "DeceptionIndex/internal/domain/repository"
	"DeceptionIndex/internal/service/breaker"
	"DeceptionIndex/internal/service/ratelimit"
	"DeceptionIndex/pkg/cache"
	"DeceptionIndex/pkg/logger"
)

// FetchOptions configures the query window and cache lifetime of a PitchFetcher.
type FetchOptions struct {
	Window models.DateRange
	TTL    time.Duration
}

// PitchFetcher resolves a pitcher and retrieves its pitch events. Provider
// and lookup failures are reported as no-data results, never as errors.
type PitchFetcher struct {
	lookup  drepo.PlayerLookup
	source  drepo.PitchSource
	store   cache.Service
	guard   *breaker.Breaker
	pacer   *ratelimit.Pacer
	metrics drepo.Metrics
	log     *logger.Logger
	opts    FetchOptions
}

// NewPitchFetcher creates a new PitchFetcher instance. A nil store disables caching.
func NewPitchFetcher(lookup drepo.PlayerLookup, source drepo.PitchSource, store cache.Service, guard *breaker.Breaker, pacer *ratelimit.Pacer, metrics drepo.Metrics, log *logger.Logger, opts FetchOptions) *PitchFetcher {
	if store == nil {
		store = cache.Nop{}
	}
	return &PitchFetcher{lookup: lookup, source: source, store: store, guard: guard, pacer: pacer, metrics: metrics, log: log, opts: opts}
}

// Window returns the date range every fetch queries.
func (f *PitchFetcher) Window() models.DateRange { return f.opts.Window }

// Fetch makes a single attempt to obtain p's events inside the configured window.
func (f *PitchFetcher) Fetch(ctx context.Context, p models.Pitcher) models.FetchResult {
	start := time.Now()
	res := f.fetch(ctx, p)
	f.metrics.RecordLatency("fetch", time.Since(start).Seconds())
	f.metrics.RecordFetch(string(res.Status), res.Reason, res.Source)
	return res
}

func (f *PitchFetcher) fetch(ctx context.Context, p models.Pitcher) models.FetchResult {
	id, reason := f.Resolve(ctx, p)
	if reason != "" {
		return models.NoData(p, id, reason)
	}

	key := cache.GenerateKeyWithParams("pitches", id, f.opts.Window.StartDay(), f.opts.Window.EndDay())
	if cached, err := cache.GetTyped[[]cachedEvent](ctx, f.store, key); err == nil && len(cached) > 0 {
		return models.FetchResult{Pitcher: p, PlayerID: id, Status: models.FetchOK, Source: models.SourceCache, Events: fromCache(cached)}
	} else if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		f.cacheFailed("get", key, err)
	}

	v, err := f.call(func() (any, error) { return f.source.PitchEvents(ctx, id, f.opts.Window) })
	if err != nil {
		reason := models.ReasonRetrievalFailed
		switch {
		case errors.Is(err, breaker.ErrOpen):
			reason = models.ReasonBreakerOpen
		case errors.Is(err, drepo.ErrMissingColumns):
			reason = models.ReasonMissingColumns
		default:
			f.metrics.RecordError("retrieval")
		}
		f.log.Warn("pitch retrieval failed", logger.String("name", p.Name()), logger.Int("player_id", id), logger.Error(err))
		return models.NoData(p, id, reason)
	}
	events, _ := v.([]models.PitchEvent)
	if len(events) == 0 {
		return models.NoData(p, id, models.ReasonEmpty)
	}

	if err := f.store.Set(ctx, key, toCache(events), f.opts.TTL); err != nil {
		f.cacheFailed("set", key, err)
	}
	if err := f.pacer.Pause(ctx); err != nil {
		f.log.Debug("pacing interrupted", logger.Error(err))
	}
	return models.FetchResult{Pitcher: p, PlayerID: id, Status: models.FetchOK, Source: models.SourceProvider, Events: events}
}

// Resolve maps p to a provider player id. A non-empty reason means no id.
func (f *PitchFetcher) Resolve(ctx context.Context, p models.Pitcher) (int, string) {
	key := cache.GenerateKeyWithParams("player", p.First, p.Last)
	if id, err := cache.GetTyped[int](ctx, f.store, key); err == nil && id > 0 {
		return id, ""
	} else if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		f.cacheFailed("get", key, err)
	}

	v, err := f.call(func() (any, error) { return f.lookup.LookupPlayer(ctx, p.First, p.Last) })
	if err != nil {
		switch {
		case errors.Is(err, breaker.ErrOpen):
			return 0, models.ReasonBreakerOpen
		case errors.Is(err, drepo.ErrPlayerNotFound):
			return 0, models.ReasonPlayerNotFound
		}
		f.metrics.RecordError("lookup")
		f.log.Warn("player lookup failed", logger.String("name", p.Name()), logger.Error(err))
		return 0, models.ReasonLookupFailed
	}
	id, _ := v.(int)

	if err := f.store.Set(ctx, key, strconv.Itoa(id), f.opts.TTL); err != nil {
		f.cacheFailed("set", key, err)
	}
	return id, ""
}

func (f *PitchFetcher) call(fn func() (any, error)) (any, error) {
	if f.guard == nil {
		return fn()
	}
	return f.guard.Execute(fn)
}

func (f *PitchFetcher) cacheFailed(op, key string, err error) {
	f.metrics.RecordError("cache")
	f.log.Warn("cache "+op+" failed", logger.String("key", key), logger.Error(err))
}

// cachedEvent is the JSON form of a PitchEvent; NaN values are stored as null.
type cachedEvent struct {
	PitchType    string   `json:"pitch_type"`
	GameDate     string   `json:"game_date"`
	ReleaseSpeed *float64 `json:"release_speed"`
	ReleasePosX  *float64 `json:"release_pos_x"`
	ReleasePosZ  *float64 `json:"release_pos_z"`
	SpinAxis     *float64 `json:"spin_axis"`
}

func toCache(events []models.PitchEvent) []cachedEvent {
	out := make([]cachedEvent, len(events))
	for i, e := range events {
		out[i] = cachedEvent{
			PitchType:    e.PitchType,
			ReleaseSpeed: ptr(e.ReleaseSpeed),
			ReleasePosX:  ptr(e.ReleasePosX),
			ReleasePosZ:  ptr(e.ReleasePosZ),
			SpinAxis:     ptr(e.SpinAxis),
		}
		if !e.GameDate.IsZero() {
			out[i].GameDate = e.GameDate.Format(time.DateOnly)
		}
	}
	return out
}

func fromCache(cached []cachedEvent) []models.PitchEvent {
	out := make([]models.PitchEvent, len(cached))
	for i, c := range cached {
		out[i] = models.PitchEvent{
			PitchType:    c.PitchType,
			ReleaseSpeed: val(c.ReleaseSpeed),
			ReleasePosX:  val(c.ReleasePosX),
			ReleasePosZ:  val(c.ReleasePosZ),
			SpinAxis:     val(c.SpinAxis),
		}
		if t, err := time.Parse(time.DateOnly, c.GameDate); err == nil {
			out[i].GameDate = t
		}
	}
	return out
}

func ptr(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func val(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
