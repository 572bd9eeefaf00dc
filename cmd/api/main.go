package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"

	_ "github.com/redmonkez12/go-task-api/docs" // Swagger docs (generated)
	"github.com/redmonkez12/go-task-api/internal/auth"
	"github.com/redmonkez12/go-task-api/internal/blob"
	"github.com/redmonkez12/go-task-api/internal/category"
	"github.com/redmonkez12/go-task-api/internal/config"
	"github.com/redmonkez12/go-task-api/internal/database"
	"github.com/redmonkez12/go-task-api/internal/email"
	httpServer "github.com/redmonkez12/go-task-api/internal/http"
	"github.com/redmonkez12/go-task-api/internal/logging"
	"github.com/redmonkez12/go-task-api/internal/task"
	"github.com/redmonkez12/go-task-api/internal/user"
)

// @title           Task Tracker API
// @version         1.0
// @description     Task tracking API with bearer-token authentication, categories and profile images.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	slog.SetDefault(logger.Logger)
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
		"db_driver", cfg.Database.Driver,
		"token_format", cfg.Auth.TokenFormat,
		"blob_driver", cfg.Blob.Driver,
	)

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer db.Close()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, db, cfg.Database.Driver); err != nil {
			return err
		}
		logger.Info("migrations applied")
	}

	userRepo := user.NewRepository(db)

	// Principal lookups go through Redis when it is enabled
	var (
		principals  auth.PrincipalLookup = userRepo
		invalidator user.Invalidator     = user.NopInvalidator{}
	)
	if cfg.Redis.Enabled {
		redisClient, err := initRedis(ctx, cfg.Redis)
		if err != nil {
			return fmt.Errorf("failed to initialize Redis: %w", err)
		}
		defer redisClient.Close()

		cached := user.NewCachedRepository(userRepo, redisClient, cfg.Redis.CacheTTL, logger)
		principals = cached
		invalidator = cached
	}

	blobs, uploadDir, err := initBlobStore(ctx, cfg.Blob)
	if err != nil {
		return fmt.Errorf("failed to initialize blob store: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	emailService := email.NewService(cfg.Email, logger)

	profileService := user.NewService(userRepo, invalidator, blobs, logger)
	authService := auth.NewService(
		userRepo,
		tokenService,
		auth.NewPasswordHasher(auth.DefaultArgon2Params),
		profileService,
		invalidator,
		emailService,
		logger,
	)

	registry := category.NewRegistry(category.NewRepository(db), logger)
	if err := registry.SeedDefaults(ctx); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	guard := task.NewGuard(task.NewRepository(db), registry, logger)

	router := httpServer.NewRouter(cfg, httpServer.Handlers{
		Auth:       auth.NewHandler(authService),
		Users:      user.NewHandler(profileService, auth.PrincipalFromContext),
		Categories: category.NewHandler(registry),
		Tasks:      task.NewHandler(guard),
		Gate:       auth.NewMiddleware(tokenService, principals),
		UploadDir:  uploadDir,
	}, logger)

	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received signal", "signal", sig.String())

		// Graceful shutdown with timeout
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// initRedis initializes the Redis connection and returns a Redis client
func initRedis(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address(),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	// Verify connection
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to ping Redis: %w", err)
	}

	return client, nil
}

// initBlobStore returns the configured profile image store and, for the
// local driver, the directory the router should serve
func initBlobStore(ctx context.Context, cfg config.BlobConfig) (blob.Store, string, error) {
	if cfg.Driver == config.BlobDriverS3 {
		store, err := blob.NewS3Store(ctx, blob.S3Options{
			Bucket:     cfg.S3Bucket,
			Region:     cfg.S3Region,
			Endpoint:   cfg.S3Endpoint,
			AccessKey:  cfg.S3AccessKey,
			SecretKey:  cfg.S3SecretKey,
			PresignTTL: cfg.S3PresignTTL,
		})
		if err != nil {
			return nil, "", err
		}
		return store, "", nil
	}

	store, err := blob.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}
