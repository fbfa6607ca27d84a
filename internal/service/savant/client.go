// Package savant retrieves pitch-level Statcast data from Baseball Savant.
package savant

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"DeceptionIndex/internal/domain/models"
	drepo "DeceptionIndex/internal/domain/repository"
	xhttp "DeceptionIndex/pkg/http"
)

// Client implements repository.PitchSource over the statcast_search CSV export.
type Client struct {
	baseURL string
	http    *xhttp.Client
}

// New creates a Savant client against baseURL, e.g. https://baseballsavant.mlb.com.
func New(baseURL string, client *xhttp.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

// PitchEvents downloads every pitch thrown by playerID inside window.
func (c *Client) PitchEvents(ctx context.Context, playerID int, window models.DateRange) ([]models.PitchEvent, error) {
	var buf bytes.Buffer
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/statcast_search/csv",
		QueryParams: map[string][]string{
			"all":               {"true"},
			"type":              {"details"},
			"player_type":       {"pitcher"},
			"game_date_gt":      {window.StartDay()},
			"game_date_lt":      {window.EndDay()},
			"pitchers_lookup[]": {strconv.Itoa(playerID)},
		},
		Headers: map[string]string{"Accept": "text/csv"},
	}, &buf)
	if err != nil {
		return nil, fmt.Errorf("statcast search %d: %w", playerID, err)
	}

	events, err := ParseCSV(&buf)
	if err != nil {
		return nil, fmt.Errorf("statcast csv %d: %w", playerID, err)
	}
	return events, nil
}

var _ drepo.PitchSource = (*Client)(nil)
