package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/static"
	"github.com/gofiber/template/html/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/dmarquez-dev/picboard"
	fiberadapter "github.com/dmarquez-dev/picboard/adapters/fiber"
	memoryadapter "github.com/dmarquez-dev/picboard/adapters/memory"
	pgxadapter "github.com/dmarquez-dev/picboard/adapters/pgx"
	redisadapter "github.com/dmarquez-dev/picboard/adapters/redis"
	"github.com/dmarquez-dev/picboard/internal/config"
	"github.com/dmarquez-dev/picboard/pkg/crypto"
	"github.com/dmarquez-dev/picboard/pkg/uploads"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}

	var storage picboard.Storage
	if cfg.DatabaseDSN != "" {
		if err := pgxadapter.RunMigrations(ctx, cfg.DatabaseDSN); err != nil {
			log.Fatalf("migrations: %v", err)
		}

		pool, err := pgxpool.New(ctx, cfg.DatabaseDSN)
		if err != nil {
			log.Fatalf("pgxpool.New: %v", err)
		}
		defer pool.Close()

		storage = pgxadapter.New(pool)
		log.Println("[storage] postgres")
	} else {
		storage = memoryadapter.New()
		log.Println("[storage] in-memory (set DATABASE_DSN for postgres)")
	}

	var sessions picboard.SessionStorage
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("redis.ParseURL: %v", err)
		}
		sessions = redisadapter.NewSessionStore(redis.NewClient(opt))
		log.Println("[sessions] redis")
	}

	app := fiber.New(fiber.Config{
		Views: html.New(cfg.ViewsDir, ".html"),
	})

	app.Use(logger.New())
	app.Get("/uploads/*", static.New(cfg.UploadDir))

	_, err = picboard.New(picboard.Config{
		Storage:        storage,
		Sessions:       sessions,
		HTTP:           fiberadapter.New(app),
		Uploads:        uploads.NewLocalStore(cfg.UploadDir),
		PasswordHasher: &crypto.Bcrypt{Cost: cfg.BcryptCost},
		SessionConfig:  &picboard.SessionConfig{MaxAge: cfg.SessionMaxAge},
		OpTimeout:      cfg.OpTimeout,
	})
	if err != nil {
		log.Fatalf("picboard.New: %v", err)
	}

	if err := app.Listen(cfg.Addr); err != nil {
		log.Fatalf("app.Listen: %v", err)
	}
}
