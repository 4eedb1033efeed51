package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/exam-hub/internal/api/middleware"
	"github.com/linskybing/exam-hub/internal/api/routes"
	"github.com/linskybing/exam-hub/internal/application"
	"github.com/linskybing/exam-hub/internal/config"
	"github.com/spf13/cobra"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve spawn plans over HTTP",
	Args:    cobra.NoArgs,
	GroupID: "hub",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer func() { _ = log.Sync() }()

		loader := config.NewLoader(log)
		path := hubConfigPath()
		cfg, err := loader.Load(path)
		if err != nil {
			return err
		}
		state := config.NewState(cfg)

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		if config.WatchConfig {
			if err := config.WatchFile(ctx, path, loader, state, log); err != nil {
				log.Warnw("config watch disabled", "error", err)
			}
		}

		auth := middleware.NewJWTAuth(config.HubJwtSecret, config.Issuer)
		if !auth.Enabled() {
			log.Warnw("HUB_JWT_SECRET is empty, API is unauthenticated")
		}

		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.LoggingMiddleware(log))
		router.Use(middleware.CORSMiddleware(config.CorsAllowedOrigins))
		routes.RegisterRoutes(router, application.New(state), auth)

		port := servePort
		if port == "" {
			port = config.ServerPort
		}
		srv := &http.Server{Addr: ":" + port, Handler: router, ReadHeaderTimeout: 10 * time.Second}

		errCh := make(chan error, 1)
		go func() {
			log.Infow("exam hub api listening", "addr", srv.Addr, "config", path, "courses", len(cfg.NbGrader.Courses))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			return err
		case <-ctx.Done():
		}
		log.Infow("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Listen port (default $SERVER_PORT)")
}
