package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stepup/internal/delivery/http/helpers"
	"stepup/internal/domain"
)

// CreateMusicApplyRequest is the request body for POST /music-applies.
type CreateMusicApplyRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Artist  string `json:"artist" validate:"required,max=200"`
	Content string `json:"content" validate:"max=2000"`
}

func (req *CreateMusicApplyRequest) Normalize() {
	req.Title = strings.TrimSpace(req.Title)
	req.Artist = strings.TrimSpace(req.Artist)
}

type MusicApplyController struct {
	Logger  *slog.Logger
	Service domain.MusicApplyService
}

func NewMusicApplyController(logger *slog.Logger, svc domain.MusicApplyService) *MusicApplyController {
	return &MusicApplyController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Request a song
// @Description Ask for a song to be added to the catalog.
// @Tags music-applies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMusicApplyRequest true "Request data"
// @Success 201 {object} helpers.APIResponse "data contains the request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music-applies [post]
func (c *MusicApplyController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req CreateMusicApplyRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	apply := &domain.MusicApply{
		Title:     req.Title,
		Artist:    req.Artist,
		Content:   req.Content,
		WriterID:  userID,
		CreatedAt: time.Now(),
	}
	if err := c.Service.Create(r.Context(), apply); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, apply)
}

// List godoc
// @Summary List song requests
// @Tags music-applies
// @Produce json
// @Param keyword query string false "Title or artist substring"
// @Success 200 {object} helpers.APIResponse "data contains the requests"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music-applies [get]
func (c *MusicApplyController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if list == nil {
		list = []*domain.MusicApply{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// Get godoc
// @Summary Get a song request
// @Tags music-applies
// @Produce json
// @Param applyID path string true "Request ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the request"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music-applies/{applyID} [get]
func (c *MusicApplyController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "applyID")
	if !ok {
		return
	}
	apply, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, apply)
}

// Delete godoc
// @Summary Delete a song request
// @Tags music-applies
// @Produce json
// @Security BearerAuth
// @Param applyID path string true "Request ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music-applies/{applyID} [delete]
func (c *MusicApplyController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "applyID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
