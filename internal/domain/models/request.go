package models

// ScoresRequest is the query of GET /api/scores.
type ScoresRequest struct {
	Limit int    `query:"limit" default:"50" validate:"min=1,max=100"`
	Order string `query:"order" default:"desc" validate:"oneof=asc desc"`
}

// ScoreResponse is one ranked row returned by the scores API.
type ScoreResponse struct {
	Rank int `json:"rank"`
	ScoredPitcher
}

// ExcludedResponse describes a pitcher left out of the cohort.
type ExcludedResponse struct {
	Name     string `json:"name"`
	PlayerID int    `json:"player_id,omitempty"`
	Reason   string `json:"reason"`
}
