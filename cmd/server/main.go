package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"video-link-service/internal/adapters/primary/http/handlers"
	"video-link-service/internal/adapters/primary/http/middleware"
	"video-link-service/internal/adapters/secondary/ffprobe"
	"video-link-service/internal/adapters/secondary/filestore"
	"video-link-service/internal/adapters/secondary/imagesource"
	"video-link-service/internal/adapters/secondary/postgres"
	"video-link-service/internal/adapters/secondary/sqlite"
	"video-link-service/internal/config"
	ports "video-link-service/internal/core/ports/output"
	"video-link-service/internal/core/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	videoRepo, artifactRepo, ping, closeStore, err := openStorage(cfg)
	if err != nil {
		log.Fatalf("open storage: %v", err)
	}
	defer closeStore()
	log.WithField("driver", cfg.Storage.Driver).Info("record store connected")

	files, err := filestore.NewLocalStore(cfg.DownloadDir)
	if err != nil {
		log.Fatalf("open download root: %v", err)
	}

	// Secondary adapters
	prober := ffprobe.NewProber(cfg.Ingest.FFprobeBinary)
	images := imagesource.NewHTTPSource(cfg.Composite.FetchTimeout)

	// Core services
	videoSvc := services.NewVideoService(videoRepo, cfg.BaseURL)
	ingestSvc := services.NewIngestService(videoRepo, artifactRepo, prober, files, videoSvc, services.IngestOptions{
		ProbeConcurrency: cfg.Ingest.ProbeConcurrency,
		ProbeTimeout:     cfg.Ingest.ProbeTimeout,
		CallTimeout:      cfg.Ingest.CallTimeout,
	})
	lifecycleSvc := services.NewLifecycleService(videoRepo, artifactRepo, files)
	compositorSvc := services.NewCompositorService(images, cfg.Composite.Width, cfg.Composite.Height)

	// Primary adapter
	h := handlers.New(videoSvc, ingestSvc, lifecycleSvc, compositorSvc)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())

	h.RegisterRoutes(&router.RouterGroup)

	// Health check with storage ping
	router.GET("/healthz", func(c *gin.Context) {
		if err := ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func openStorage(cfg *config.Config) (ports.VideoRepository, ports.ArtifactRepository, func(context.Context) error, func(), error) {
	switch cfg.Storage.Driver {
	case "sqlite":
		store, err := sqlite.Open(cfg.Storage.SQLite.Path)
		if err != nil {
			return nil, nil, nil, nil, err
		}
		return sqlite.NewVideoRepository(store),
			sqlite.NewArtifactRepository(store),
			store.Ping,
			func() { _ = store.Close() },
			nil

	case "postgres":
		poolCfg, err := pgxpool.ParseConfig(cfg.Storage.Postgres.DSN())
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("parse db config: %w", err)
		}
		poolCfg.MaxConns = int32(cfg.Storage.Postgres.MaxOpenConns)
		poolCfg.MinConns = int32(cfg.Storage.Postgres.MaxIdleConns)
		poolCfg.MaxConnLifetime = cfg.Storage.Postgres.ConnMaxLifetime

		pool, err := pgxpool.NewWithConfig(context.Background(), poolCfg)
		if err != nil {
			return nil, nil, nil, nil, fmt.Errorf("create db pool: %w", err)
		}
		if err := pool.Ping(context.Background()); err != nil {
			pool.Close()
			return nil, nil, nil, nil, fmt.Errorf("ping db: %w", err)
		}
		if err := postgres.Migrate(context.Background(), pool); err != nil {
			pool.Close()
			return nil, nil, nil, nil, err
		}
		return postgres.NewVideoRepository(pool),
			postgres.NewArtifactRepository(pool),
			pool.Ping,
			pool.Close,
			nil

	default:
		return nil, nil, nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
