package controllers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"stepup/internal/delivery/http/helpers"
	"stepup/internal/domain"
)

// CreateMusicRequest is the request body for POST /music.
type CreateMusicRequest struct {
	Title  string `json:"title" validate:"required,max=200"`
	Artist string `json:"artist" validate:"required,max=200"`
	Answer string `json:"answer" validate:"required,max=200"`
	URL    string `json:"url" validate:"required,url"`
}

func (req *CreateMusicRequest) Normalize() {
	req.Title = strings.TrimSpace(req.Title)
	req.Artist = strings.TrimSpace(req.Artist)
	req.Answer = strings.TrimSpace(req.Answer)
	req.URL = strings.TrimSpace(req.URL)
}

// MusicSuccessResponse is the success response envelope for a single song.
type MusicSuccessResponse struct {
	Data  *domain.Music     `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// MusicListSuccessResponse is the success response envelope for song lists.
type MusicListSuccessResponse struct {
	Data  []*domain.Music   `json:"data"`
	Error *helpers.APIError `json:"error"`
}

type MusicController struct {
	Logger  *slog.Logger
	Service domain.MusicService
}

func NewMusicController(logger *slog.Logger, svc domain.MusicService) *MusicController {
	return &MusicController{
		Logger:  logger,
		Service: svc,
	}
}

// Create godoc
// @Summary Add a song to the catalog
// @Tags music
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateMusicRequest true "Song data"
// @Success 201 {object} controllers.MusicSuccessResponse "data contains the created song"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music [post]
func (c *MusicController) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMusicRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	m := domain.NewMusic(req.Title, req.Artist, req.Answer, req.URL, time.Now())
	if err := c.Service.Create(r.Context(), m); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, m)
}

// List godoc
// @Summary Search the catalog
// @Description Matches keyword against title or artist. An empty keyword lists every song.
// @Tags music
// @Produce json
// @Param keyword query string false "Title or artist substring"
// @Success 200 {object} controllers.MusicListSuccessResponse "data contains the songs"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music [get]
func (c *MusicController) List(w http.ResponseWriter, r *http.Request) {
	list, err := c.Service.List(r.Context(), r.URL.Query().Get("keyword"))
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if list == nil {
		list = []*domain.Music{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, list)
}

// Get godoc
// @Summary Get a song
// @Tags music
// @Produce json
// @Param musicID path string true "Music ID (UUID)"
// @Success 200 {object} controllers.MusicSuccessResponse "data contains the song"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music/{musicID} [get]
func (c *MusicController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "musicID")
	if !ok {
		return
	}
	m, err := c.Service.GetByID(r.Context(), id)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, m)
}

// Delete godoc
// @Summary Remove a song from the catalog
// @Description Songs attached to a dance cannot be removed.
// @Tags music
// @Produce json
// @Security BearerAuth
// @Param musicID path string true "Music ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /music/{musicID} [delete]
func (c *MusicController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "musicID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), id); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
