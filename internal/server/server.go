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

	_ "taskboard/docs"
	"taskboard/internal/board"
	"taskboard/internal/config"
	"taskboard/internal/handler"
	"taskboard/internal/middleware"
	"taskboard/internal/repository"
	"taskboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Server struct {
	Engine *gin.Engine
	Store  *store.TaskStore
	Config *config.Config

	closeStorage func() error
}

// OpenPersistence connects the storage backend selected by cfg.StorageBackend.
// The returned func releases the backend's connections.
func OpenPersistence(ctx context.Context, cfg *config.Config) (store.Persistence, func() error, error) {
	switch cfg.StorageBackend {
	case config.BackendMemory:
		log.Warn("⚠️ Using in-memory storage, tasks are lost on restart")
		return repository.NewMemoryRepository(), func() error { return nil }, nil

	case config.BackendPostgres:
		db, err := gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{})
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to connect to DB: %w", err)
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, nil, fmt.Errorf("❌ failed to get DB handle: %w", err)
		}
		repo := repository.NewKVRepository(db)
		if err := repo.Migrate(ctx); err != nil {
			sqlDB.Close()
			return nil, nil, fmt.Errorf("❌ failed to migrate: %w", err)
		}
		log.Info("✅ Connected to database")
		return repo, sqlDB.Close, nil

	case config.BackendRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("❌ invalid REDIS_URL: %w", err)
		}
		client := redis.NewClient(opts)
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("❌ failed to connect to redis: %w", err)
		}
		log.Info("✅ Connected to redis")
		return repository.NewRedisRepository(client, cfg.RedisPrefix, 0), client.Close, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
	}
}

func Init(cfg *config.Config) (*Server, error) {
	if cfg.Debug {
		log.SetLevel(log.DebugLevel)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	logger := log.StandardLogger()

	ctx := context.Background()
	persistence, closeStorage, err := OpenPersistence(ctx, cfg)
	if err != nil {
		return nil, err
	}

	tasks, err := store.Open(ctx, persistence,
		store.WithKey(cfg.StorageKey),
		store.WithLogger(logger),
		store.WithResetOnCorrupt(cfg.ResetCorruptState),
	)
	if err != nil {
		closeStorage()
		return nil, fmt.Errorf("❌ failed to load tasks: %w", err)
	}
	log.WithField("count", len(tasks.List())).Info("✅ Tasks loaded")

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// Initialize handlers
	taskHandler := handler.NewTaskHandler(tasks)
	boardHandler := handler.NewBoardHandler(tasks, board.NewReassigner(tasks, logger), logger)
	eventsHandler := handler.NewEventsHandler(tasks, logger)

	// Task routes
	r.GET("/tasks", taskHandler.List)
	r.POST("/tasks", taskHandler.Create)
	r.GET("/tasks/:id", taskHandler.GetByID)
	r.PUT("/tasks/:id", taskHandler.Update)
	r.DELETE("/tasks/:id", taskHandler.Delete)

	// Board routes
	r.GET("/board", boardHandler.GetBoard)
	r.POST("/board/move", boardHandler.MoveTask)
	r.GET("/options", boardHandler.Options)

	r.GET("/events", eventsHandler.Stream)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return &Server{
		Engine:       r,
		Store:        tasks,
		Config:       cfg,
		closeStorage: closeStorage,
	}, nil
}

// Handler wraps the engine with the CORS policy from the config.
func (s *Server) Handler() http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: s.Config.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(s.Engine)
}

func (s *Server) Close() error {
	if s.closeStorage == nil {
		return nil
	}
	return s.closeStorage()
}

func (s *Server) Run() error {
	defer s.Close()

	srv := &http.Server{
		Addr:    ":" + s.Config.ServerPort,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Server running on port %s", s.Config.ServerPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("❌ failed to listen: %w", err)
	case <-quit:
	}
	log.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("❌ server forced to shutdown: %w", err)
	}

	log.Info("✅ Server exited properly")
	return nil
}
