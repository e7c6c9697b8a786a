package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

func main() {
	LoadEnv()
	config, err := ReadConfig(ConfigPath())
	if err != nil {
		slog.Error("failed to read config", "error", err)
		os.Exit(1)
	}
	if err := ApplyEnv(&config); err != nil {
		slog.Error("invalid environment", "error", err)
		os.Exit(1)
	}
	if err := config.Validate(); err != nil {
		slog.Error("invalid config", "error", err)
		os.Exit(1)
	}

	logger := slog.New(NewLogHandler(os.Stdout, &slog.HandlerOptions{Level: ParseLogLevel(config.Logging.Level)}))
	slog.SetDefault(logger)

	ctx, cancel := ShutdownContext(context.Background())
	defer cancel()

	manager := NewGraphManager(config)
	if err := manager.LoadGraph(ctx); err != nil {
		slog.Error("failed to load graph", "error", err)
		os.Exit(1)
	}

	gin.SetMode(gin.ReleaseMode)
	server := &http.Server{
		Addr:    config.Server.Addr,
		Handler: NewApp(manager, config.Server),
	}
	go func() {
		slog.Info("server listening", "addr", config.Server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	shutdown_ctx, shutdown_cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdown_cancel()
	if err := server.Shutdown(shutdown_ctx); err != nil {
		slog.Error("shutdown failed", "error", err)
	}
	slog.Info("server stopped")
}

func NewApp(manager *GraphManager, options ServerOptions) *gin.Engine {
	app := gin.New()
	app.Use(gin.Recovery(), RequestLogger())

	config := cors.DefaultConfig()
	if len(options.CorsOrigins) == 0 || (len(options.CorsOrigins) == 1 && options.CorsOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = options.CorsOrigins
	}
	config.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	config.AllowHeaders = []string{"*"}
	app.Use(cors.New(config))

	MapPost(app, "/process", HandleProcessRequest(manager))
	MapPost(app, "/process_single", HandleProcessSingleRequest(manager))
	MapGet(app, "/network", HandleNetworkRequest(manager))
	MapPost(app, "/delete_edges", HandleDeleteEdgesRequest(manager))
	app.GET("/health", func(c *gin.Context) {
		g := manager.Graph()
		if g == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "loading"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "nodes": g.NodeCount(), "edges": g.EdgeCount()})
	})
	return app
}

// Returns a context canceled on SIGINT or SIGTERM.
func ShutdownContext(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-signals:
			slog.Info("received termination signal, shutting down")
			cancel()
		case <-ctx.Done():
		}
		signal.Stop(signals)
	}()

	return ctx, cancel
}
