package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func TestMemoryCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	defer mc.Close()

	require.NoError(t, mc.Set(ctx, "player:shane:baz", sample{ID: 669358, Name: "Shane Baz"}, time.Minute))

	got, err := GetTyped[sample](ctx, mc, "player:shane:baz")
	require.NoError(t, err)
	assert.Equal(t, sample{ID: 669358, Name: "Shane Baz"}, got)
}

func TestMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache()
	defer mc.Close()

	require.NoError(t, mc.Set(ctx, "k", "v", time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	var s string
	assert.ErrorIs(t, mc.Get(ctx, "k", &s), ErrCacheMiss)
	assert.Equal(t, 0, mc.Len())
}

func TestMemoryCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(WithMemoryMaxSize(2))
	defer mc.Close()

	require.NoError(t, mc.Set(ctx, "a", "1", time.Minute))
	time.Sleep(time.Millisecond)
	require.NoError(t, mc.Set(ctx, "b", "2", time.Minute))
	time.Sleep(time.Millisecond)

	var s string
	require.NoError(t, mc.Get(ctx, "a", &s)) // touch a so b is oldest
	time.Sleep(time.Millisecond)
	require.NoError(t, mc.Set(ctx, "c", "3", time.Minute))

	assert.NoError(t, mc.Get(ctx, "a", &s))
	assert.ErrorIs(t, mc.Get(ctx, "b", &s), ErrCacheMiss)
	assert.NoError(t, mc.Get(ctx, "c", &s))
}

func TestRedisCacheGetSet(t *testing.T) {
	ctx := context.Background()
	db, mock := redismock.NewClientMock()
	rc := NewRedisCacheFromClient(db, "deception")

	mock.ExpectSet("deception:pitches:1", []byte(`{"id":1,"name":"x"}`), time.Hour).SetVal("OK")
	require.NoError(t, rc.Set(ctx, "pitches:1", sample{ID: 1, Name: "x"}, time.Hour))

	mock.ExpectGet("deception:pitches:1").SetVal(`{"id":1,"name":"x"}`)
	var got sample
	require.NoError(t, rc.Get(ctx, "pitches:1", &got))
	assert.Equal(t, sample{ID: 1, Name: "x"}, got)

	mock.ExpectGet("deception:pitches:2").RedisNil()
	assert.ErrorIs(t, rc.Get(ctx, "pitches:2", &got), ErrCacheMiss)

	mock.ExpectGet("deception:pitches:3").SetErr(errors.New("conn reset"))
	err := rc.Get(ctx, "pitches:3", &got)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrCacheMiss)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayeredCachePromotesRemoteHits(t *testing.T) {
	ctx := context.Background()
	remote := NewMemoryCache()
	lc := NewLayeredCache(remote, WithLayeredMemorySize(4))
	defer lc.Close()

	require.NoError(t, remote.Set(ctx, "k", sample{ID: 7}, time.Minute))

	got, err := GetTyped[sample](ctx, lc, "k")
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)

	// served from L1 once the remote copy is gone
	require.NoError(t, remote.Delete(ctx, "k"))
	got, err = GetTyped[sample](ctx, lc, "k")
	require.NoError(t, err)
	assert.Equal(t, 7, got.ID)
}

func TestNopAlwaysMisses(t *testing.T) {
	var c Service = Nop{}
	require.NoError(t, c.Set(context.Background(), "k", "v", 0))
	var s string
	assert.ErrorIs(t, c.Get(context.Background(), "k", &s), ErrCacheMiss)
}

func TestGenerateKeyWithParams(t *testing.T) {
	assert.Equal(t, "player:shane:mcclanahan", GenerateKeyWithParams("player", "Shane", " McClanahan "))
	assert.Equal(t, "pitches:669358:2023-01-01", GenerateKeyWithParams("pitches", 669358, "2023-01-01"))
}

func TestMemoryCacheDefaultTTL(t *testing.T) {
	ctx := context.Background()
	mc := NewMemoryCache(WithMemoryDefaultTTL(time.Millisecond))
	defer mc.Close()

	require.NoError(t, mc.Set(ctx, "player:pete:fairbanks", "664126", 0))
	time.Sleep(5 * time.Millisecond)

	var s string
	assert.ErrorIs(t, mc.Get(ctx, "player:pete:fairbanks", &s), ErrCacheMiss)
}

func TestMemoryCacheSweepsExpiredEntries(t *testing.T) {
	mc := NewMemoryCache(WithMemoryCleanup(time.Millisecond))
	defer mc.Close()

	require.NoError(t, mc.Set(context.Background(), "pitches:1", "[]", time.Millisecond))
	assert.Eventually(t, func() bool { return mc.Len() == 0 }, time.Second, 2*time.Millisecond)
}
