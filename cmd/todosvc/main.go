package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/rizkyfahmi/todoauth/config"
	"github.com/rizkyfahmi/todoauth/internal/application"
	"github.com/rizkyfahmi/todoauth/internal/domain/repository"
	"github.com/rizkyfahmi/todoauth/internal/infrastructure/memory"
	pginfra "github.com/rizkyfahmi/todoauth/internal/infrastructure/postgres"
	handlers "github.com/rizkyfahmi/todoauth/internal/interface/http"
	"github.com/rizkyfahmi/todoauth/internal/interface/middleware"
	"github.com/rizkyfahmi/todoauth/internal/router"
	"github.com/rizkyfahmi/todoauth/internal/router/modules"
	"github.com/rizkyfahmi/todoauth/pkg/helpers"
	"github.com/rizkyfahmi/todoauth/pkg/validation"
)

func main() {
	_ = godotenv.Load() // load .env if present

	cfg := config.Load("todo-service", "8001")
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)
	gin.SetMode(cfg.GinMode)
	validation.Init()

	ctx := context.Background()

	// Todo store: Postgres when DATABASE_URL is set, in-memory otherwise
	var todoRepo repository.TodoRepository
	if cfg.DatabaseURL != "" {
		pool, err := pginfra.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to connect to postgres: %v", err)
		}
		defer pool.Close()

		if cfg.MigrationsDir != "" {
			if err := runMigrations(cfg.DatabaseURL, cfg.MigrationsDir, logger); err != nil {
				log.Fatalf("migration failed: %v", err)
			}
		}
		todoRepo = pginfra.NewTodoRepository(pool)
	} else {
		logger.Info("DATABASE_URL not set, using in-memory todo store")
		todoRepo = memory.NewTodoRepository()
	}

	// Token verifier: must be configured with the same SECRET_KEY and
	// ALGORITHM as the auth service for cross-service trust to hold.
	tokens, err := helpers.NewTokenManager(cfg.SecretKey, cfg.Algorithm, cfg.AccessTokenExpireMinutes)
	if err != nil {
		log.Fatalf("token manager: %v", err)
	}

	todoSvc := application.NewTodoService(todoRepo)
	todoHandler := handlers.NewTodoHandler(todoSvc, logger)

	// Gin engine and global middleware
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	if origins := cfg.CORSOrigins(); len(origins) > 0 {
		corsCfg := cors.Config{
			AllowOrigins:     origins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}
		r.Use(cors.New(corsCfg))
	}
	if cfg.HTTPLogEnabled {
		r.Use(gin.Logger())
	}

	reg := router.NewRegistry(r)
	reg.Add(modules.NewTodoModule(todoHandler, tokens))
	reg.RegisterAll()

	srv := &http.Server{Addr: ":" + cfg.Port, Handler: r}
	go func() {
		logger.Infof("todo service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("listen: %s\n", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server")

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Fatalf("server forced to shutdown: %v", err)
	}
	logger.Info("server exited properly")
}

func runMigrations(dsn string, migrationsDir string, logger *logrus.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()
	driver, err := pgmigrate.WithInstance(db, &pgmigrate.Config{})
	if err != nil {
		return err
	}
	m, err := migrate.NewWithDatabaseInstance(fmt.Sprintf("file://%s", migrationsDir), "postgres", driver)
	if err != nil {
		return err
	}
	logger.Info("running migrations...")
	err = m.Up()
	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to run")
		return nil
	}
	return err
}
