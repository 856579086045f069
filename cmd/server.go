package cmd

import (
	"betawave/internal/cache"
	"betawave/internal/config"
	"betawave/internal/core"
	"betawave/internal/db"
	"betawave/internal/events"
	"betawave/internal/extractor"
	"betawave/internal/http/handler"
	"betawave/internal/http/handler/middleware"
	"betawave/internal/http/payload"
	"betawave/internal/http/server"
	"betawave/internal/repository"
	"betawave/pkg/jwt"
	"betawave/pkg/log"
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap/zapcore"
)

const activityTopic = "betawave.activity"

func Start() error {
	logger := log.NewZapLogger("betawave", zapcore.InfoLevel)

	// a missing .env file is fine, the environment may be set directly
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warnw("failed to load .env file", "error", err)
	}

	config, err := config.NewApp()
	if err != nil {
		logger.Errorw("failed to create config", "error", err)
		return err
	}

	dbConn, err := db.NewPostgresDB(config.DBConnectionURL)
	if err != nil {
		logger.Errorw("failed to connect to database", "error", err)
		return err
	}

	// jwt service
	jwtService := jwt.NewJWTService([]byte(config.JWTSecret))

	// repository
	repo := repository.NewLibraryRepository(dbConn)

	err = repo.MigrateAndSeed(context.Background())
	if err != nil {
		logger.Errorw("failed to migrate and seed database", "error", err)
		return err
	}

	// extraction sidecar
	extractService := extractor.NewService(extractor.NewHTTPClient(config.ExtractorURL))

	// stream url cache
	redisClient := redis.NewClient(&redis.Options{Addr: config.RedisAddr})
	streamCache := cache.NewStreamCache(redisClient, config.StreamCacheTTL)

	// activity events
	publisher := events.NewKafkaPublisher(config.KafkaBrokers, activityTopic)
	defer publisher.Close()

	// betawave
	betawave := core.NewBetawave(
		logger,
		repo,
		jwtService,
		extractService,
		streamCache,
		publisher)

	// handler
	libHlr := handler.NewLibraryHandler(
		logger,
		payload.Decoder{},
		betawave)

	// middleware
	mux := http.NewServeMux()
	hdlr := middleware.NewAuthMiddleware(logger, betawave,
		"/api/register",
		"/api/login").Authorize(mux)
	hdlr = middleware.NewLoggingMiddleware(logger).Logging(hdlr)
	hdlr = middleware.NewRequestIDMiddleware().RequestID(hdlr)

	// register routes
	mux.HandleFunc(handler.Register, libHlr.HandleRegister)
	mux.HandleFunc(handler.Login, libHlr.HandleLogin)
	mux.HandleFunc(handler.GetSongs, libHlr.HandleGetSongs)
	mux.HandleFunc(handler.SearchSongs, libHlr.HandleSearchSongs)
	mux.HandleFunc(handler.AddSong, libHlr.HandleAddSong)
	mux.HandleFunc(handler.PlaySong, libHlr.HandlePlaySong)
	mux.HandleFunc(handler.DownloadSong, libHlr.HandleDownloadSong)
	mux.HandleFunc(handler.DeleteSong, libHlr.HandleDeleteSong)
	mux.HandleFunc(handler.GetFavorites, libHlr.HandleGetFavorites)
	mux.HandleFunc(handler.ToggleFavorite, libHlr.HandleToggleFavorite)
	mux.HandleFunc(handler.IsFavorite, libHlr.HandleIsFavorite)
	mux.HandleFunc(handler.GetConfig, libHlr.HandleGetConfig)
	mux.HandleFunc(handler.SaveConfig, libHlr.HandleSaveConfig)
	mux.HandleFunc(handler.AdminUsers, libHlr.HandleAdminUsers)
	mux.HandleFunc(handler.AdminDeleteUser, libHlr.HandleAdminDeleteUser)

	srv := server.NewHTTP(logger, hdlr, config.Port)
	return run(srv)
}

func run(server *server.HTTPServer) error {
	// expect a signal to gracefully shutdown the server
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	errChan := server.Run()

	var err error
	select {
	case <-sig:
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if sdErr != nil && (err == nil || err == http.ErrServerClosed) {
		return fmt.Errorf("server shutdown: %w", sdErr)
	}

	return err
}
