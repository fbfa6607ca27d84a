package mlbstats

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	drepo "DeceptionIndex/internal/domain/repository"
	xhttp "DeceptionIndex/pkg/http"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, body string, status int) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people/search", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("sportIds"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestLookupPrefersExactName(t *testing.T) {
	srv := newServer(t, `{"people":[
		{"id":1,"fullName":"Shane Bazz","firstName":"Shane","lastName":"Bazz"},
		{"id":669358,"fullName":"Shane Baz","firstName":"Shane","lastName":"Baz"}]}`, http.StatusOK)

	id, err := New(srv.URL, xhttp.NewClient()).LookupPlayer(context.Background(), "Shane", "Baz")
	require.NoError(t, err)
	assert.Equal(t, 669358, id)
}

func TestLookupFallsBackToFirstResult(t *testing.T) {
	srv := newServer(t, `{"people":[{"id":42,"firstName":"Joseph","lastName":"Boyle"}]}`, http.StatusOK)

	id, err := New(srv.URL+"/", xhttp.NewClient()).LookupPlayer(context.Background(), "Joe", "Boyle")
	require.NoError(t, err)
	assert.Equal(t, 42, id)
}

func TestLookupNotFound(t *testing.T) {
	srv := newServer(t, `{"people":[]}`, http.StatusOK)

	_, err := New(srv.URL, xhttp.NewClient()).LookupPlayer(context.Background(), "Nobody", "Here")
	assert.ErrorIs(t, err, drepo.ErrPlayerNotFound)
}

func TestLookupServerError(t *testing.T) {
	srv := newServer(t, `oops`, http.StatusBadGateway)

	_, err := New(srv.URL, xhttp.NewClient()).LookupPlayer(context.Background(), "Shane", "Baz")
	require.Error(t, err)
	assert.NotErrorIs(t, err, drepo.ErrPlayerNotFound)
}
