//	@title			Updates Service API
//	@version		1.0
//	@description	Backend for publishing and distributing versioned release artifacts.
//
//	@BasePath	/

package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yudzxml/updates-service/internal/config"
	"github.com/yudzxml/updates-service/internal/db"
	"github.com/yudzxml/updates-service/internal/server"
	"github.com/yudzxml/updates-service/internal/storage"
	"github.com/yudzxml/updates-service/internal/update"

	_ "github.com/yudzxml/updates-service/docs/swagger"
)

func main() {
	cfg := config.Load()

	if cfg.AdminKey == "" {
		log.Println("warning: ADMIN_SECRET_KEY not set, all writes will be rejected")
	}
	if cfg.PublicKey == "" {
		log.Println("warning: PUBLIC_KEY not set, all reads will be rejected")
	}

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	uploader, err := newUploader(cfg)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	// Wire dependencies: repository → service → handler
	repo := update.NewRepository(pool)
	svc := update.NewService(repo, uploader)
	handler := update.NewHandler(svc)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      server.New(cfg, handler),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s, storage=%s)", cfg.Port, cfg.AppEnv, cfg.StorageBackend)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}

// newUploader selects the artifact backend configured for this deployment.
func newUploader(cfg *config.Config) (storage.Uploader, error) {
	switch cfg.StorageBackend {
	case "s3":
		return storage.NewS3Storage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
	case "cdn":
		return storage.NewCDNStorage(cfg.CDNUploadURL), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_BACKEND %q (want \"s3\" or \"cdn\")", cfg.StorageBackend)
	}
}
