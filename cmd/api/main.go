package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"stepup/config"
	_ "stepup/docs"
	"stepup/internal/adapters/auth"
	"stepup/internal/adapters/email"
	deliveryhttp "stepup/internal/delivery/http"
	"stepup/internal/delivery/http/controllers"
	"stepup/internal/delivery/http/middleware"
	"stepup/internal/domain"
	"stepup/internal/repository/cache"
	"stepup/internal/repository/postgres"
	"stepup/internal/services"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
)

// @title StepUp API
// @version 1.0
// @description Random-play dance events, reservations, music requests, boards and ranking.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		log.Fatalf("stepup: %v", err)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	logger := config.NewLogger()

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ContextTimeout)
	err = db.PingContext(pingCtx)
	cancel()
	if err != nil {
		return fmt.Errorf("ping database: %w", err)
	}

	userRepo := postgres.NewUserRepository(db)
	danceRepo := postgres.NewDanceRepository(db)
	boardRepo := postgres.NewBoardRepository(db)
	pointRepo := postgres.NewPointRepository(db)
	applyRepo := postgres.NewMusicApplyRepository(db)
	musicRepo, closeCache, err := newMusicRepository(ctx, cfg, db, logger)
	if err != nil {
		return err
	}
	defer closeCache()

	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.AWSRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretKey,
		},
	}, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	tokens := auth.NewJWTProvider(cfg.JWTSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	hasher := auth.NewBcryptHasher(0)

	userService := services.NewUserService(userRepo, hasher, tokens, cfg.ContextTimeout)
	danceService := services.NewDanceService(danceRepo, userRepo, musicRepo, emailService, logger, cfg.ContextTimeout)
	musicService := services.NewMusicService(musicRepo, cfg.ContextTimeout)
	applyService := services.NewMusicApplyService(applyRepo, userRepo, cfg.ContextTimeout)
	boardService := services.NewBoardService(boardRepo, userRepo, danceRepo, cfg.ContextTimeout)
	rankService := services.NewRankService(pointRepo, userRepo, danceRepo, cfg.ContextTimeout)

	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, logger)
	limiter.StartCleanup(10*time.Minute, ctx.Done())

	router := deliveryhttp.NewRouter(deliveryhttp.RouterConfig{
		Logger:         logger,
		Tokens:         tokens,
		AllowedOrigins: cfg.AllowedOrigins,
		RateLimiter:    limiter,
		Metrics:        middleware.NewMetrics(),
		Users:          controllers.NewUserController(logger, userService),
		Dances:         controllers.NewDanceController(logger, danceService),
		Music:          controllers.NewMusicController(logger, musicService),
		MusicApply:     controllers.NewMusicApplyController(logger, applyService),
		Notices:        controllers.NewBoardController(logger, boardService, domain.BoardNotice),
		Talks:          controllers.NewBoardController(logger, boardService, domain.BoardTalk),
		Ranks:          controllers.NewRankController(logger, rankService),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// newMusicRepository returns the postgres catalog, wrapped in the Redis cache when REDIS_URL is set.
func newMusicRepository(ctx context.Context, cfg *config.Config, db *sql.DB, logger *slog.Logger) (domain.MusicRepository, func(), error) {
	repo := postgres.NewMusicRepository(db)
	if cfg.RedisURL == "" {
		return repo, func() {}, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse REDIS_URL: %w", err)
	}
	rdb := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, cfg.ContextTimeout)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	logger.Info("music cache enabled", "ttl", cfg.MusicCacheTTL)
	return cache.NewMusicRepository(repo, rdb, cfg.MusicCacheTTL), func() { _ = rdb.Close() }, nil
}
