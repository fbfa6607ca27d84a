package api

import (
	"net/http"
	"net/url"
	"time"

	models "DeceptionIndex/internal/domain/models"
	"DeceptionIndex/internal/usecase"
	xhttp "DeceptionIndex/pkg/http"
	xlogger "DeceptionIndex/pkg/logger"

	"github.com/labstack/echo/v4"
)

// ScoresEchoHandler serves the latest scored cohort.
type ScoresEchoHandler struct {
	logger *xlogger.Logger
	board  *usecase.Scoreboard
}

func NewScoresEchoHandler(logger *xlogger.Logger, board *usecase.Scoreboard) *ScoresEchoHandler {
	return &ScoresEchoHandler{logger: logger, board: board}
}

func (h *ScoresEchoHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", h.Health)
	g := e.Group("/api")
	g.GET("/scores", h.Scores)
	g.GET("/scores/:name", h.Score)
	g.GET("/excluded", h.Excluded)
}

func (h *ScoresEchoHandler) Health(c echo.Context) error {
	if !h.board.Ready() {
		return xhttp.AppErrorResponse(c, xhttp.UnavailableError("no scored run yet"))
	}
	runID, at := h.board.RunID()
	return xhttp.SuccessResponse(c, map[string]interface{}{
		"run_id":     runID,
		"updated_at": at.Format(time.RFC3339),
		"degenerate": h.board.Degenerate(),
	})
}

func (h *ScoresEchoHandler) Scores(c echo.Context) error {
	req := &models.ScoresRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	ascending := req.Order == "asc"
	rows := h.board.Top(req.Limit, ascending)
	out := make([]models.ScoreResponse, len(rows))
	total := h.board.Len()
	for i, row := range rows {
		rank := i + 1
		if ascending {
			rank = total - i
		}
		out[i] = models.ScoreResponse{Rank: rank, ScoredPitcher: row}
	}
	c.Response().Header().Set(echo.HeaderCacheControl, "private, max-age=15")
	return xhttp.ListResponse(c, out, total)
}

func (h *ScoresEchoHandler) Score(c echo.Context) error {
	name, err := url.PathUnescape(c.Param("name"))
	if err != nil {
		return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{Code: "ERR_BIND", Field: "name", Message: err.Error()}})
	}
	row, ok := h.board.Find(name)
	if !ok {
		h.logger.Debug("score lookup miss", xlogger.String("name", name))
		return xhttp.AppErrorResponse(c, xhttp.NotFoundErrorf("no score for %q", name).WithParam("name", name))
	}
	return xhttp.SuccessResponse(c, row)
}

func (h *ScoresEchoHandler) Excluded(c echo.Context) error {
	recs := h.board.Excluded()
	out := make([]models.ExcludedResponse, len(recs))
	for i, r := range recs {
		out[i] = models.ExcludedResponse{Name: r.Pitcher.Name(), PlayerID: r.PlayerID, Reason: r.Reason}
	}
	return xhttp.DataResponse(c, http.StatusOK, out)
}
