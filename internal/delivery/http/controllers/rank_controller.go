package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"stepup/internal/delivery/http/helpers"
	"stepup/internal/domain"
)

// UpdatePointRequest is the request body for POST /ranks/points.
type UpdatePointRequest struct {
	UserID    string  `json:"user_id" validate:"required,uuid"`
	PointType string  `json:"point_type" validate:"required,max=50"`
	DanceID   *string `json:"dance_id" validate:"omitempty,uuid"`
}

func (req *UpdatePointRequest) Normalize() {
	req.PointType = strings.TrimSpace(req.PointType)
}

type RankController struct {
	Logger  *slog.Logger
	Service domain.RankService
}

func NewRankController(logger *slog.Logger, svc domain.RankService) *RankController {
	return &RankController{
		Logger:  logger,
		Service: svc,
	}
}

// Leaderboard godoc
// @Summary Point leaderboard
// @Description Users ordered by points, highest first.
// @Tags ranks
// @Produce json
// @Param limit query int false "Number of users (default and max 100)"
// @Success 200 {object} helpers.APIResponse "data contains the users"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ranks [get]
func (c *RankController) Leaderboard(w http.ResponseWriter, r *http.Request) {
	users, err := c.Service.Leaderboard(r.Context(), helpers.QueryInt(r, "limit", domain.MaxLeaderboardSize))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if users == nil {
		users = []*domain.User{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, users)
}

// ListPolicies godoc
// @Summary List point policies
// @Tags ranks
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the policies"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ranks/policies [get]
func (c *RankController) ListPolicies(w http.ResponseWriter, r *http.Request) {
	policies, err := c.Service.ListPolicies(r.Context())
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if policies == nil {
		policies = []*domain.PointPolicy{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, policies)
}

// UpdatePoint godoc
// @Summary Grant points
// @Description Admin only. Grants the points of a policy to a user and records the history.
// @Tags ranks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdatePointRequest true "Grant data"
// @Success 201 {object} helpers.APIResponse "data contains the point history entry"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ranks/points [post]
func (c *RankController) UpdatePoint(w http.ResponseWriter, r *http.Request) {
	actorID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req UpdatePointRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	history, err := c.Service.UpdatePoint(r.Context(), actorID, req.UserID, req.PointType, req.DanceID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, history)
}

// ListHistory godoc
// @Summary A user's point history
// @Tags ranks
// @Produce json
// @Param userID path string true "User ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the history, newest first"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /ranks/users/{userID}/history [get]
func (c *RankController) ListHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := helpers.PathID(w, r, "userID")
	if !ok {
		return
	}
	history, err := c.Service.ListPointHistory(r.Context(), userID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if history == nil {
		history = []*domain.PointHistory{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, history)
}
