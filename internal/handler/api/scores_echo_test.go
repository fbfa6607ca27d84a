package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"DeceptionIndex/internal/domain/models"
	"DeceptionIndex/internal/usecase"
	xlogger "DeceptionIndex/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

func newTestServer(t *testing.T, ready bool) *echo.Echo {
	t.Helper()
	board := usecase.NewScoreboard()
	if ready {
		board.Update("run-42", models.Table{
			Rows: []models.ScoredPitcher{
				{Name: "Pete Fairbanks", PlayerID: 664126, Score: 0.82},
				{Name: "Shane Baz", PlayerID: 669358, Score: 0.51},
				{Name: "Zack Littell", PlayerID: 641793, Score: 0.12},
			},
			Excluded: []models.PitcherRecord{
				models.Unavailable(models.Pitcher{First: "Joe", Last: "Boyle"}, 0, models.ReasonPlayerNotFound),
			},
		})
	}
	e := echo.New()
	NewScoresEchoHandler(xlogger.Nop(), board).RegisterRoutes(e)
	return e
}

func get(t *testing.T, e *echo.Echo, target string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func TestScoresDefaultOrder(t *testing.T) {
	rec, env := get(t, newTestServer(t, true), "/api/scores")
	require.Equal(t, http.StatusOK, rec.Code)

	var list struct {
		Rows  []models.ScoreResponse `json:"rows"`
		Total int                    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Equal(t, 3, list.Total)
	require.Len(t, list.Rows, 3)
	assert.Equal(t, "Pete Fairbanks", list.Rows[0].Name)
	assert.Equal(t, 1, list.Rows[0].Rank)
}

func TestScoresAscendingWithLimit(t *testing.T) {
	_, env := get(t, newTestServer(t, true), "/api/scores?order=asc&limit=1")
	var list struct {
		Rows []models.ScoreResponse `json:"rows"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list.Rows, 1)
	assert.Equal(t, "Zack Littell", list.Rows[0].Name)
	assert.Equal(t, 3, list.Rows[0].Rank)
}

func TestScoresRejectsBadQuery(t *testing.T) {
	e := newTestServer(t, true)
	for _, target := range []string{"/api/scores?limit=500", "/api/scores?order=sideways"} {
		rec, env := get(t, e, target)
		assert.Equal(t, http.StatusBadRequest, rec.Code, target)
		assert.Equal(t, http.StatusBadRequest, env.Status)
	}
}

func TestScoreByName(t *testing.T) {
	e := newTestServer(t, true)

	rec, env := get(t, e, "/api/scores/shane%20baz")
	require.Equal(t, http.StatusOK, rec.Code)
	var row models.ScoredPitcher
	require.NoError(t, json.Unmarshal(env.Data, &row))
	assert.Equal(t, 669358, row.PlayerID)

	rec, _ = get(t, e, "/api/scores/Nobody%20Here")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExcluded(t *testing.T) {
	_, env := get(t, newTestServer(t, true), "/api/excluded")
	var out []models.ExcludedResponse
	require.NoError(t, json.Unmarshal(env.Data, &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Joe Boyle", out[0].Name)
	assert.Equal(t, models.ReasonPlayerNotFound, out[0].Reason)
}

func TestHealth(t *testing.T) {
	rec, _ := get(t, newTestServer(t, false), "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	rec, env := get(t, newTestServer(t, true), "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), "run-42")
}
