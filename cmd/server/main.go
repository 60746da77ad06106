package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"lobby/internal/api"
	"lobby/internal/config"
	"lobby/internal/events"
	"lobby/internal/lobby"
	"lobby/internal/metrics"
	"lobby/internal/routers"
)

func newRouter(cfg *config.Config, h *api.Handlers) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSAllow,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(metrics.Middleware)
	routers.LobbyRoutes(r, h)
	return r
}

// statusLoop logs the periodic registry snapshot until ctx is done.
func statusLoop(ctx context.Context, logger *zap.Logger, ctrl *lobby.Controller, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st := ctrl.Status()
			logger.Info("lobby status",
				zap.Int("rooms", st.TotalRooms),
				zap.Int("players", st.TotalPlayers))
			for _, room := range st.Rooms {
				logger.Info("room status",
					zap.String("roomCode", room.RoomCode),
					zap.String("roomType", room.RoomType),
					zap.Int("participants", room.ParticipantCount),
					zap.Bool("gameStarted", room.GameStarted))
			}
		case <-ctx.Done():
			return
		}
	}
}

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		logger.Info("event feed enabled", zap.String("redisAddr", cfg.RedisAddr))
	}
	feed := events.NewPublisher(rdb, logger)

	ctrl := lobby.NewController(logger, cfg.RoomCapacity, feed)
	h := api.NewHandlers(logger, ctrl)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go statusLoop(ctx, logger, ctrl, cfg.StatusInterval)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: newRouter(cfg, h),
	}

	go func() {
		logger.Info("lobby server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("shutdown", zap.Error(err))
	}
}
