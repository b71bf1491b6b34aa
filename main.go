package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/Loboo34/heliverse-api/config"
	"github.com/Loboo34/heliverse-api/database"
	"github.com/Loboo34/heliverse-api/handlers"
	"github.com/Loboo34/heliverse-api/middleware"
	"github.com/Loboo34/heliverse-api/services"
	"github.com/Loboo34/heliverse-api/utils"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	client, db, err := database.ConnectDB(ctx, cfg.Mongo, logger)
	if err != nil {
		logger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	store := database.NewMongoStore(db, cfg.Mongo, logger)

	bootCtx, cancelBoot := context.WithTimeout(ctx, cfg.Mongo.ConnectTimeout)
	if err := store.EnsureIndexes(bootCtx); err != nil {
		cancelBoot()
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}
	if err := store.SyncUserCounter(bootCtx, cfg.Counter.UserStart); err != nil {
		cancelBoot()
		logger.Fatal("Failed to sync user counter", zap.Error(err))
	}
	cancelBoot()

	validate := services.NewValidator()
	activity := services.NewActivityLog(store, logger, cfg.HTTP.RequestTimeout)
	defer activity.Wait()

	userService := services.NewUserService(store, activity, validate, services.PageLimits{
		Default: int64(cfg.Pagination.DefaultLimit),
		Max:     int64(cfg.Pagination.MaxLimit),
	}, logger)
	teamService := services.NewTeamService(store, activity, validate, logger)

	h := handlers.NewHandler(userService, teamService, store, cfg.HTTP.RequestTimeout, logger)
	r := handlers.NewRouter(h, middlewareChain(cfg, logger)...)

	srv := &http.Server{
		Addr:    cfg.ServerAddr(),
		Handler: r,
	}

	go func() {
		logger.Info("Server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("Server shutdown timeout", zap.Error(err))
	}
}

// middlewareChain lists the middleware outermost first. The access log wraps
// Recover so a recovered panic is logged with its 500.
func middlewareChain(cfg *config.Config, logger *zap.Logger) []mux.MiddlewareFunc {
	return []mux.MiddlewareFunc{
		middleware.RequestID(),
		middleware.RequestLogger(logger),
		middleware.Recover(logger),
		middleware.Cors(cfg.CORS.AllowedOrigins),
		middleware.RateLimit(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
	}
}
