package clickhouse

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDSN(t *testing.T) {
	dsn := BuildDSN(ClientConfig{
		Host: "ch.local", Port: 9000, Database: "deception", User: "default", Password: "p@ss",
		DialTimeout: 5 * time.Second, ReadTimeout: 10 * time.Second,
	})
	u, err := url.Parse(dsn)
	require.NoError(t, err)
	assert.Equal(t, "clickhouse", u.Scheme)
	assert.Equal(t, "ch.local:9000", u.Host)
	assert.Equal(t, "/deception", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss", pw)
	assert.Equal(t, "5s", u.Query().Get("dial_timeout"))
}

func TestBuildDSNHTTP(t *testing.T) {
	u, err := url.Parse(BuildDSN(ClientConfig{Host: "ch.local", Port: 8123, Database: "deception", UseHTTP: true}))
	require.NoError(t, err)
	assert.Equal(t, "http", u.Scheme)
}

func TestNewClientRequiresHost(t *testing.T) {
	_, err := NewClient(WithHost(""))
	assert.ErrorContains(t, err, "host is required")
}
