package models

// FetchStatus discriminates a FetchResult.
type FetchStatus string

const (
	FetchOK     FetchStatus = "ok"
	FetchNoData FetchStatus = "no_data"
)

// Reasons attached to no-data results and excluded records.
const (
	ReasonLookupFailed    = "lookup_failed"
	ReasonPlayerNotFound  = "player_not_found"
	ReasonRetrievalFailed = "retrieval_failed"
	ReasonEmpty           = "empty"
	ReasonMissingColumns  = "missing_columns"
	ReasonBreakerOpen     = "breaker_open"
	ReasonOffSeason       = "off_season"
	ReasonIncomplete      = "incomplete_metrics"
)

// Where the events of a successful fetch came from.
const (
	SourceProvider = "provider"
	SourceCache    = "cache"
)

// FetchResult is the outcome of fetching one pitcher. Events is only set when
// Status is FetchOK.
type FetchResult struct {
	Pitcher  Pitcher
	PlayerID int
	Status   FetchStatus
	Reason   string
	Source   string
	Events   []PitchEvent
}

// OK reports whether the fetch produced events.
func (r FetchResult) OK() bool { return r.Status == FetchOK }

// NoData builds a no-data result.
func NoData(p Pitcher, playerID int, reason string) FetchResult {
	return FetchResult{Pitcher: p, PlayerID: playerID, Status: FetchNoData, Reason: reason}
}
