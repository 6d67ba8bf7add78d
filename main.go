package main

import (
	"context"
	"embed"
	"errors"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"os/signal"
	"syscall"
	"time"

	"spacexdash/adapters/excel"
	"spacexdash/internal"
	"spacexdash/internal/config"
	"spacexdash/ui"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
)

//go:embed ui/templates/* ui/static/* ui/content/*
var embeddedFiles embed.FS

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger := internal.NewLogger(appConfig.Log.Level)
	gin.SetMode(appConfig.Server.GinMode)

	// The table is loaded once; a bad file stops startup before anything listens
	table, err := excel.LoadLaunchTable(appConfig.Data.File)
	if err != nil {
		log.Fatalf("Failed to load launch records from %s: %v", appConfig.Data.File, err)
	}
	logger.Info("Loaded %d launch records from %s", table.Len(), appConfig.Data.File)

	server, err := ui.NewServer(embeddedFiles, table, logger)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Run(gctx, ":"+appConfig.Server.Port, appConfig.Server.ShutdownTimeout)
	})

	if appConfig.Profiling.Enabled {
		g.Go(func() error {
			return runProfiler(gctx, appConfig.Profiling.Port, logger)
		})
	}

	if err := g.Wait(); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
	logger.Info("Dashboard stopped")
}

// runProfiler serves net/http/pprof on its own port until ctx is done
func runProfiler(ctx context.Context, port string, logger *internal.Logger) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           http.DefaultServeMux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Performance profiling server starting on :%s", port)
	logger.Info("View profiles: go tool pprof -http=:8081 http://localhost:%s/debug/pprof/profile?seconds=30", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		// profiling is optional, the dashboard keeps serving
		logger.Error("pprof server failed: %v", err)
	}
	return nil
}
