package controllers

import (
	"log/slog"
	"net/http"
	"strings"

	"stepup/internal/delivery/http/helpers"
	"stepup/internal/domain"
)

// CreateBoardRequest is the request body for POST /notices and POST /talks.
// DanceID is kept only on notices.
type CreateBoardRequest struct {
	Title   string  `json:"title" validate:"required,max=200"`
	Content string  `json:"content" validate:"required,max=5000"`
	DanceID *string `json:"dance_id" validate:"omitempty,uuid"`
}

func (req *CreateBoardRequest) Normalize() {
	req.Title = strings.TrimSpace(req.Title)
}

// BoardListResponse is the data of a paginated board listing.
type BoardListResponse struct {
	Items []*domain.Board        `json:"items"`
	Meta  helpers.PaginationMeta `json:"meta"`
}

// BoardListSuccessResponse is the success response envelope for board listings.
type BoardListSuccessResponse struct {
	Data  BoardListResponse `json:"data"`
	Error *helpers.APIError `json:"error"`
}

// BoardController serves one board type; the router mounts one per type.
type BoardController struct {
	Logger    *slog.Logger
	Service   domain.BoardService
	BoardType domain.BoardType
}

func NewBoardController(logger *slog.Logger, svc domain.BoardService, boardType domain.BoardType) *BoardController {
	return &BoardController{
		Logger:    logger,
		Service:   svc,
		BoardType: boardType,
	}
}

// Create godoc
// @Summary Write a post
// @Description Creates a notice (POST /notices, optional dance_id) or a talk post (POST /talks).
// @Tags boards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CreateBoardRequest true "Post data"
// @Success 201 {object} helpers.APIResponse "data contains the post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notices [post]
// @Router /talks [post]
func (c *BoardController) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	var req CreateBoardRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	b := &domain.Board{
		Type:    c.BoardType,
		Title:   req.Title,
		Content: req.Content,
		DanceID: req.DanceID,
	}
	if err := c.Service.Create(r.Context(), userID, b); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, b)
}

// List godoc
// @Summary List posts
// @Description Newest first. keyword matches title or content.
// @Tags boards
// @Produce json
// @Param keyword query string false "Title or content substring"
// @Param page query int false "Page (default 1)"
// @Param page_size query int false "Page size (default 20, max 100)"
// @Success 200 {object} controllers.BoardListSuccessResponse "data contains items and meta"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notices [get]
// @Router /talks [get]
func (c *BoardController) List(w http.ResponseWriter, r *http.Request) {
	params := helpers.ParsePagination(r)
	items, total, err := c.Service.List(r.Context(), c.BoardType, r.URL.Query().Get("keyword"), params)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	if items == nil {
		items = []*domain.Board{}
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, BoardListResponse{
		Items: items,
		Meta:  helpers.NewPaginationMeta(params.Page, params.PageSize, total),
	})
}

// Get godoc
// @Summary Get a post
// @Tags boards
// @Produce json
// @Param boardID path string true "Post ID (UUID)"
// @Success 200 {object} helpers.APIResponse "data contains the post"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notices/{boardID} [get]
// @Router /talks/{boardID} [get]
func (c *BoardController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := helpers.PathID(w, r, "boardID")
	if !ok {
		return
	}
	b, err := c.Service.GetByID(r.Context(), c.BoardType, id)
	if err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, b)
}

// Delete godoc
// @Summary Delete a post
// @Description Writer only.
// @Tags boards
// @Produce json
// @Security BearerAuth
// @Param boardID path string true "Post ID (UUID)"
// @Success 204 "No Content"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 403 {object} helpers.APIResponse "error.code: forbidden"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /notices/{boardID} [delete]
// @Router /talks/{boardID} [delete]
func (c *BoardController) Delete(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}
	id, ok := helpers.PathID(w, r, "boardID")
	if !ok {
		return
	}
	if err := c.Service.Delete(r.Context(), userID, c.BoardType, id); err != nil {
		writeError(c.Logger, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
