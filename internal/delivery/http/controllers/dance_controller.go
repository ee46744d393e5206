package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stepup/internal/delivery/http/helpers"
	"stepup/internal/delivery/http/middleware"
	"stepup/internal/domain"
)

// CreateDanceRequest is the request body for POST /dances.
// MusicIDs keeps the play order; the service enforces its size.
type CreateDanceRequest struct {
	Title     string           `json:"title" validate:"required,max=100"`
	Content   string           `json:"content" validate:"max=2000"`
	DanceType domain.DanceType `json:"dance_type" validate:"omitempty,oneof=BASIC RANKING SURVIVAL"`
	MaxUser   int              `json:"max_user" validate:"gte=0"`
	StartAt   time.Time        `json:"start_at" validate:"required"`
	EndAt     time.Time        `json:"end_at" validate:"required"`
	MusicIDs  []string         `json:"music_ids" validate:"dive,uuid"`
}

// UpdateDanceRequest is the request body for PATCH /dances/{danceID}. Omitted fields are unchanged.
type UpdateDanceRequest struct {
	Title     *string           `json:"title" validate:"omitempty,min=1,max=100"`
	Content   *string           `json:"content" validate:"omitempty,max=2000"`
	DanceType *domain.DanceType `json:"dance_type" validate:"omitempty,oneof=BASIC RANKING SURVIVAL"`
	MaxUser   *int              `json:"max_user" validate:"omitempty,gte=0"`
	StartAt   *time.Time        `json:"start_at"`
	EndAt     *time.Time        `json:"end_at"`
	HostID    *string           `json:"host_id" validate:"omitempty,uuid"`
}

// DanceSuccessResponse is the success response envelope for a single dance.
type DanceSuccessResponse struct {
	Data  *domain.DanceEvent `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// DanceListSuccessResponse is the success response envelope for dance lists.
type DanceListSuccessResponse struct {
	Data  []*domain.DanceEvent `json:"data"`
	Error *helpers.APIError    `json:"error"`
}

// DanceSearchSuccessResponse is the success response envelope for GET /dances.
type DanceSearchSuccessResponse struct {
	Data  []*domain.DanceSearchResult `json:"data"`
	Error *helpers.APIError           `json:"error"`
}

type DanceController struct {
	Logger  *slog.Logger
	Service domain.DanceService
}

func NewDanceController(logger *slog.Logger, svc domain.DanceService) *DanceController {
	return &DanceController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Host a dance
// @Description Create a random-play dance hosted by the caller with 2 to 50 songs in play order.
// @Tags dances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateDanceRequest true "Dance data"
// @Success 201 {object} controllers.DanceSuccessResponse "data contains the created dance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances [post]
func (c *DanceController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req CreateDanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	now := time.Now()
	dance := domain.NewDanceEvent(req.Title, req.Content, userID, req.DanceType, req.MaxUser, req.StartAt, req.EndAt, now, now)
	if err := c.Service.Create(r.Context(), userID, dance, req.MusicIDs); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, dance)
}

// Search godoc
// @Summary Search dances
// @Description Lists dances by progress type and title keyword. Authenticated callers get reserve_status 1 on dances they host or reserved. Ongoing dances come first, then by start time.
// @Tags dances
// @Produce json
// @Param progressType query string false "SCHEDULED, IN_PROGRESS or ALL (default ALL)"
// @Param keyword query string false "Title substring"
// @Success 200 {object} controllers.DanceSearchSuccessResponse "data contains the annotated dances"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances [get]
func (c *DanceController) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	progress := domain.ProgressType(strings.ToUpper(strings.TrimSpace(q.Get("progressType"))))
	if progress == "" {
		progress = domain.ProgressAll
	}
	userID, _ := middleware.UserIDFromContext(r.Context())
	results, err := c.Service.Search(r.Context(), userID, progress, q.Get("keyword"))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if results == nil {
		results = []*domain.DanceSearchResult{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, results)
}

// Get godoc
// @Summary Get a dance
// @Description Returns the dance and its music links.
// @Tags dances
// @Produce json
// @Param danceID path string true "Dance ID (UUID)"
// @Success 200 {object} controllers.DanceSuccessResponse "data contains the dance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances/{danceID} [get]
func (c *DanceController) Get(w http.ResponseWriter, r *http.Request) {
	danceID, ok := helpers.PathID(w, r, "danceID")
	if !ok {
		return
	}
	dance, err := c.Service.GetByID(r.Context(), danceID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dance)
}

// Update godoc
// @Summary Update a dance
// @Description Host only. Omitted fields are unchanged; the time window is re-checked and a new host_id must exist.
// @Tags dances
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param danceID path string true "Dance ID (UUID)"
// @Param body body UpdateDanceRequest true "Fields to update"
// @Success 200 {object} controllers.DanceSuccessResponse "data contains the updated dance"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances/{danceID} [patch]
func (c *DanceController) Update(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	danceID, ok := helpers.PathID(w, r, "danceID")
	if !ok {
		return
	}
	var req UpdateDanceRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	dance, err := c.Service.Update(r.Context(), userID, danceID, domain.DanceUpdate{
		Title:     req.Title,
		Content:   req.Content,
		DanceType: req.DanceType,
		MaxUser:   req.MaxUser,
		StartAt:   req.StartAt,
		EndAt:     req.EndAt,
		HostID:    req.HostID,
	})
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dance)
}

// Delete godoc
// @Summary Delete a dance
// @Description Host only. Removes the dance with its music, reservations and attendance.
// @Tags dances
// @Produce json
// @Security BearerAuth
// @Param danceID path string true "Dance ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances/{danceID} [delete]
func (c *DanceController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	danceID, ok := helpers.PathID(w, r, "danceID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), userID, danceID); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ListMusic godoc
// @Summary List a dance's music
// @Description Returns the dance's songs in play order.
// @Tags dances
// @Produce json
// @Param danceID path string true "Dance ID (UUID)"
// @Success 200 {object} controllers.MusicListSuccessResponse "data contains the songs"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances/{danceID}/music [get]
func (c *DanceController) ListMusic(w http.ResponseWriter, r *http.Request) {
	danceID, ok := helpers.PathID(w, r, "danceID")
	if !ok {
		return
	}
	music, err := c.Service.ListMusic(r.Context(), danceID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if music == nil {
		music = []*domain.Music{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, music)
}

// CreateReservation godoc
// @Summary Reserve a dance
// @Description Reserve a spot. Hosts cannot reserve their own dance and a user reserves a dance at most once.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param danceID path string true "Dance ID (UUID)"
// @Success 201 {object} helpers.APIResponse "data contains the reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances/{danceID}/reservations [post]
func (c *DanceController) CreateReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	danceID, ok := helpers.PathID(w, r, "danceID")
	if !ok {
		return
	}
	res, err := c.Service.CreateReservation(r.Context(), userID, danceID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, res)
}

// DeleteReservation godoc
// @Summary Cancel a reservation
// @Description Cancels the caller's reservation for the dance.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param danceID path string true "Dance ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances/{danceID}/reservations [delete]
func (c *DanceController) DeleteReservation(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	danceID, ok := helpers.PathID(w, r, "danceID")
	if !ok {
		return
	}
	if err := c.Service.DeleteReservation(r.Context(), userID, danceID); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateAttend godoc
// @Summary Record attendance
// @Description Records that the caller attended the dance. Attendance is recorded once per user.
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param danceID path string true "Dance ID (UUID)"
// @Success 201 {object} helpers.APIResponse "data contains the attendance record"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /dances/{danceID}/attendance [post]
func (c *DanceController) CreateAttend(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	danceID, ok := helpers.PathID(w, r, "danceID")
	if !ok {
		return
	}
	attend, err := c.Service.CreateAttend(r.Context(), userID, danceID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, attend)
}

// ListHosted godoc
// @Summary List my hosted dances
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DanceListSuccessResponse "data contains the dances"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/dances/hosted [get]
func (c *DanceController) ListHosted(w http.ResponseWriter, r *http.Request) {
	c.listMine(w, r, c.Service.ListHosted)
}

// ListReserved godoc
// @Summary List dances I reserved
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DanceListSuccessResponse "data contains the dances"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/dances/reserved [get]
func (c *DanceController) ListReserved(w http.ResponseWriter, r *http.Request) {
	c.listMine(w, r, c.Service.ListReserved)
}

// ListAttended godoc
// @Summary List dances I attended
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} controllers.DanceListSuccessResponse "data contains the dances"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /me/dances/attended [get]
func (c *DanceController) ListAttended(w http.ResponseWriter, r *http.Request) {
	c.listMine(w, r, c.Service.ListAttended)
}

func (c *DanceController) listMine(w http.ResponseWriter, r *http.Request,
	list func(ctx context.Context, userID string) ([]*domain.DanceEvent, error)) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	dances, err := list(r.Context(), userID)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if dances == nil {
		dances = []*domain.DanceEvent{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, dances)
}
