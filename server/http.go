package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/config"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/constant"
	videoHandler "github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/handler"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/pkg/rabbitmq"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/repository"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/service"
	"github.com/Abhijit-cmd/3D-abhijit-portfolio-sub000/storage"
)

func RunHttp(cfg *config.Config) {
	ctx, cancel := signal.NotifyContext(setupLogger(cfg), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	zerolog.Ctx(ctx).Info().Str("env", cfg.App.Environment).Bool("isProduction", cfg.App.Environment == constant.EnvironmentProduction.String()).Send()
	if cfg.App.Environment == constant.EnvironmentProduction.String() {
		gin.SetMode(gin.ReleaseMode)
	}

	store, err := storage.New(ctx, cfg)
	if err != nil {
		zerolog.Ctx(ctx).Fatal().Err(err).Str("backend", cfg.Storage.Backend.String()).Msg("failed to init storage")
	}
	zerolog.Ctx(ctx).Info().Str("backend", cfg.Storage.Backend.String()).Msg("storage ready")

	var publisher *rabbitmq.Publisher
	if cfg.Queue != nil {
		conn, err := config.NewRabbitMQConn(ctx, cfg.Queue)
		if err != nil {
			zerolog.Ctx(ctx).Error().Err(err).Msg("NewRabbitMQConn")
		} else {
			publisher = rabbitmq.NewPublisher(conn, cfg.Queue)
		}
	}

	repo := repository.NewRepo(cfg.DB)
	videoService := service.NewVideoService(repo, store, publisher)

	r := gin.Default()
	r.Use(loggerMiddleware(ctx))
	addHealth(r)
	videoHandler.NewVideoHandler(videoService).Register(r)

	handler := http.Server{
		Handler:           r,
		Addr:              fmt.Sprintf(":%s", cfg.Server.HttpPort),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		zerolog.Ctx(ctx).Info().Str("env", cfg.App.Environment).Msg("start http server")
		if err := handler.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zerolog.Ctx(ctx).Error().Str("env", cfg.App.Environment).Msg(err.Error())
		}
	}()

	<-ctx.Done()
	zerolog.Ctx(ctx).Info().Msg("shutting down server")
	if err := handler.Shutdown(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Str("env", cfg.App.Environment).Msg(err.Error())
	}

	zerolog.Ctx(ctx).Info().Str("env", cfg.App.Environment).Msg("server shutdown")
}

func addHealth(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})
}

// loggerMiddleware attaches the process logger to each request context so
// handlers and services can use zerolog.Ctx.
func loggerMiddleware(ctx context.Context) gin.HandlerFunc {
	logger := zerolog.Ctx(ctx)
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context()))
		c.Next()
	}
}

func setupLogger(cfg *config.Config) context.Context {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.App.Environment == constant.EnvironmentDevelop.String() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// Log to standard output
	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := logger.WithContext(context.Background())

	return ctx
}
