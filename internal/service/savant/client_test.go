package savant

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"DeceptionIndex/internal/domain/models"
	drepo "DeceptionIndex/internal/domain/repository"
	xhttp "DeceptionIndex/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeff\"pitch_type\",\"game_date\",\"release_speed\",\"release_pos_x\",\"release_pos_z\",\"player_name\",\"spin_axis\"\n" +
	"FF,2024-04-02,96.1,-1.52,5.81,\"Baz, Shane\",212\n" +
	"SL,2024-04-02,88.4,-1.61,5.74,\"Baz, Shane\",\n" +
	"CH,2024-03-20,,-1.40,5.90,\"Baz, Shane\",240\n"

func window() models.DateRange {
	return models.DateRange{
		Start: time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2025, 3, 25, 0, 0, 0, 0, time.UTC),
	}
}

func TestParseCSV(t *testing.T) {
	events, err := ParseCSV(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "FF", events[0].PitchType)
	assert.Equal(t, time.April, events[0].GameDate.Month())
	assert.Equal(t, 96.1, events[0].ReleaseSpeed)
	assert.Equal(t, 212.0, events[0].SpinAxis)
	assert.True(t, math.IsNaN(events[1].SpinAxis))
	assert.True(t, math.IsNaN(events[2].ReleaseSpeed))
}

func TestParseCSVEmptyPayload(t *testing.T) {
	events, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, events)

	events, err = ParseCSV(strings.NewReader("pitch_type,game_date\n"))
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestParseCSVMissingReleaseColumns(t *testing.T) {
	_, err := ParseCSV(strings.NewReader("pitch_type,game_date\nFF,2024-04-02\n"))
	assert.ErrorIs(t, err, drepo.ErrMissingColumns)
}

func TestClientRequestsPitcherWindow(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "/statcast_search/csv", r.URL.Path)
		assert.Equal(t, "pitcher", q.Get("player_type"))
		assert.Equal(t, "2023-01-01", q.Get("game_date_gt"))
		assert.Equal(t, "2025-03-25", q.Get("game_date_lt"))
		assert.Equal(t, "669358", q.Get("pitchers_lookup[]"))
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer srv.Close()

	events, err := New(srv.URL, xhttp.NewClient()).PitchEvents(context.Background(), 669358, window())
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestClientPropagatesStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := New(srv.URL, xhttp.NewClient()).PitchEvents(context.Background(), 1, window())
	assert.ErrorContains(t, err, "unexpected status 503")
}
