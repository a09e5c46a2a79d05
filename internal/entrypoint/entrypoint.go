package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/signsetu/signsetu/internal/config"
	"github.com/signsetu/signsetu/internal/database"
	"github.com/signsetu/signsetu/internal/database/words"
	"github.com/signsetu/signsetu/internal/dictionary"
	http_controllers "github.com/signsetu/signsetu/internal/http"
	"github.com/signsetu/signsetu/internal/scheduler"
	"github.com/signsetu/signsetu/internal/signs"
	"github.com/signsetu/signsetu/internal/store"
	"github.com/signsetu/signsetu/internal/tasks"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		fmt.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	// Call shutdown callback first (e.g., to stop the task queue)
	if onShutdown != nil {
		onShutdown(ctx)
	}

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting SignSetu v%s", version)

	db, err := database.NewDatabase(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	repo := words.NewRepository(db.DB)
	wordStore := store.New(repo, cfg.Cache.Freshness)
	dict := signs.Default()

	// Task queue for background definition enrichment
	var taskClient *tasks.Client
	var enrichScheduler *scheduler.EnrichmentScheduler
	if cfg.Tasks.Enabled {
		taskClient, err = tasks.NewClient(cfg.Database.Path, tasks.Config{
			Workers:           cfg.Tasks.Workers,
			MaxRetries:        cfg.Tasks.MaxRetries,
			RetryDelay:        cfg.Tasks.RetryDelay,
			TaskTimeout:       cfg.Tasks.TaskTimeout,
			ReleaseAfter:      cfg.Tasks.ReleaseAfter,
			CleanupInterval:   cfg.Tasks.CleanupInterval,
			RetentionDuration: cfg.Tasks.RetentionDuration,
		})
		if err != nil {
			log.Fatalf("Failed to initialize task queue: %v", err)
		}
		defer taskClient.Close()

		dictClient := dictionary.NewFreeDictionaryClient()
		taskClient.Register(
			tasks.NewEnrichWordQueue(repo, dictClient),
			tasks.NewEnrichAllPendingWordsQueue(repo, dictClient),
		)

		taskCtx, taskCancel := context.WithCancel(context.Background())
		defer taskCancel()
		go taskClient.Start(taskCtx)

		if cfg.Enrichment.Enabled {
			enrichScheduler = scheduler.NewEnrichmentScheduler(taskClient, cfg.Enrichment.Schedule)
			if err := enrichScheduler.Start(taskCtx); err != nil {
				log.Fatalf("Failed to start enrichment scheduler: %v", err)
			}
		}
	} else {
		log.Printf("Task queue disabled; definition enrichment unavailable")
	}

	router := http_controllers.NewRouter(http_controllers.RouterConfig{
		Database:   db,
		WordStore:  wordStore,
		Dictionary: dict,
		TaskClient: taskClient,
		Version:    version,
	})

	Serve(router, cfg, func(ctx context.Context) {
		if enrichScheduler != nil {
			enrichScheduler.Stop()
		}
		if taskClient != nil {
			taskClient.Stop(ctx)
		}
	})
}
