// Package mlbstats resolves player names to MLBAM ids through the MLB Stats API.
package mlbstats

import (
	"context"
	"fmt"
	"strings"

	drepo "DeceptionIndex/internal/domain/repository"
	xhttp "DeceptionIndex/pkg/http"
)

// Client implements repository.PlayerLookup.
type Client struct {
	baseURL string
	http    *xhttp.Client
}

// New creates a lookup client against baseURL, e.g. https://statsapi.mlb.com/api/v1.
func New(baseURL string, client *xhttp.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: client}
}

type person struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullName"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	UseName   string `json:"useName"`
}

type searchResponse struct {
	People []person `json:"people"`
}

// LookupPlayer returns the MLBAM id for first/last. An exact name match is
// preferred; otherwise the first search result is used.
func (c *Client) LookupPlayer(ctx context.Context, first, last string) (int, error) {
	var resp searchResponse
	err := c.http.SendAndParse(ctx, &xhttp.RequestOptions{
		Method: xhttp.MethodGet,
		URL:    c.baseURL + "/people/search",
		QueryParams: map[string][]string{
			"names":    {strings.TrimSpace(first + " " + last)},
			"sportIds": {"1"},
		},
		Headers: map[string]string{"Accept": "application/json"},
	}, &resp)
	if err != nil {
		return 0, fmt.Errorf("people search %s %s: %w", first, last, err)
	}

	if len(resp.People) == 0 {
		return 0, fmt.Errorf("%s %s: %w", first, last, drepo.ErrPlayerNotFound)
	}
	for _, p := range resp.People {
		if p.matches(first, last) {
			return p.ID, nil
		}
	}
	return resp.People[0].ID, nil
}

func (p person) matches(first, last string) bool {
	if !strings.EqualFold(p.LastName, strings.TrimSpace(last)) {
		return false
	}
	first = strings.TrimSpace(first)
	return strings.EqualFold(p.FirstName, first) || strings.EqualFold(p.UseName, first)
}

var _ drepo.PlayerLookup = (*Client)(nil)
