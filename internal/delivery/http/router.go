package http

import (
	"log/slog"
	"net/http"

	"stepup/internal/delivery/http/controllers"
	"stepup/internal/delivery/http/middleware"
	"stepup/internal/domain"

	httpSwagger "github.com/swaggo/http-swagger"
)

// RouterConfig carries everything NewRouter mounts.
type RouterConfig struct {
	Logger         *slog.Logger
	Tokens         domain.TokenProvider
	AllowedOrigins []string
	RateLimiter    *middleware.RateLimiter
	Metrics        *middleware.Metrics

	Users      *controllers.UserController
	Dances     *controllers.DanceController
	Music      *controllers.MusicController
	MusicApply *controllers.MusicApplyController
	Notices    *controllers.BoardController
	Talks      *controllers.BoardController
	Ranks      *controllers.RankController
}

// NewRouter initializes the HTTP router with all application routes and wraps it
// in CORS, request id, metrics, logging and rate limiting.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(cfg.Tokens, cfg.Logger)
	optional := middleware.OptionalAuth(cfg.Tokens)

	// Auth
	mux.HandleFunc("POST /auth/signup", cfg.Users.SignUp)
	mux.HandleFunc("POST /auth/login", cfg.Users.Login)
	mux.HandleFunc("POST /auth/refresh", cfg.Users.Refresh)
	mux.HandleFunc("GET /users/me", auth(cfg.Users.GetMe))

	// Dances
	mux.HandleFunc("POST /dances", auth(cfg.Dances.Create))
	mux.HandleFunc("GET /dances", optional(cfg.Dances.Search))
	mux.HandleFunc("GET /dances/{danceID}", cfg.Dances.Get)
	mux.HandleFunc("PATCH /dances/{danceID}", auth(cfg.Dances.Update))
	mux.HandleFunc("DELETE /dances/{danceID}", auth(cfg.Dances.Delete))
	mux.HandleFunc("GET /dances/{danceID}/music", cfg.Dances.ListMusic)
	mux.HandleFunc("POST /dances/{danceID}/reservations", auth(cfg.Dances.CreateReservation))
	mux.HandleFunc("DELETE /dances/{danceID}/reservations", auth(cfg.Dances.DeleteReservation))
	mux.HandleFunc("POST /dances/{danceID}/attendance", auth(cfg.Dances.CreateAttend))
	mux.HandleFunc("GET /me/dances/hosted", auth(cfg.Dances.ListHosted))
	mux.HandleFunc("GET /me/dances/reserved", auth(cfg.Dances.ListReserved))
	mux.HandleFunc("GET /me/dances/attended", auth(cfg.Dances.ListAttended))

	// Music catalog and song requests
	mux.HandleFunc("POST /music", auth(cfg.Music.Create))
	mux.HandleFunc("GET /music", cfg.Music.List)
	mux.HandleFunc("GET /music/{musicID}", cfg.Music.Get)
	mux.HandleFunc("DELETE /music/{musicID}", auth(cfg.Music.Delete))
	mux.HandleFunc("POST /music-applies", auth(cfg.MusicApply.Create))
	mux.HandleFunc("GET /music-applies", cfg.MusicApply.List)
	mux.HandleFunc("GET /music-applies/{applyID}", cfg.MusicApply.Get)
	mux.HandleFunc("DELETE /music-applies/{applyID}", auth(cfg.MusicApply.Delete))

	// Boards
	for prefix, board := range map[string]*controllers.BoardController{"/notices": cfg.Notices, "/talks": cfg.Talks} {
		mux.HandleFunc("POST "+prefix, auth(board.Create))
		mux.HandleFunc("GET "+prefix, board.List)
		mux.HandleFunc("GET "+prefix+"/{boardID}", board.Get)
		mux.HandleFunc("DELETE "+prefix+"/{boardID}", auth(board.Delete))
	}

	// Ranks
	mux.HandleFunc("GET /ranks", cfg.Ranks.Leaderboard)
	mux.HandleFunc("GET /ranks/policies", cfg.Ranks.ListPolicies)
	mux.HandleFunc("POST /ranks/points", auth(cfg.Ranks.UpdatePoint))
	mux.HandleFunc("GET /ranks/users/{userID}/history", cfg.Ranks.ListHistory)

	// Ops
	mux.Handle("GET /metrics", cfg.Metrics.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	var h http.Handler = mux
	h = cfg.RateLimiter.Handler(h)
	h = middleware.Logging(cfg.Logger)(h)
	h = cfg.Metrics.Instrument(h)
	h = middleware.RequestID(h)
	return middleware.CORS(cfg.AllowedOrigins, h)
}
