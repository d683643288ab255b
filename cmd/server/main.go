package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/planner-api/internal/config"
	"github.com/iliyamo/planner-api/internal/database"
	"github.com/iliyamo/planner-api/internal/handler"
	"github.com/iliyamo/planner-api/internal/queue"
	"github.com/iliyamo/planner-api/internal/repository"
	"github.com/iliyamo/planner-api/internal/router"
	"github.com/iliyamo/planner-api/internal/token"
)

func main() {
	// .env is optional; real deployments set variables in the environment
	_ = godotenv.Load()

	cfg := config.Load()

	if err := database.Migrate(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName); err != nil {
		log.Fatalf("migrate: %v", err)
	}
	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Print("redis unavailable, rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	tokens := token.New(cfg.JWTSecret, cfg.TokenTTL, cfg.IsProduction())
	auth := handler.NewAuthHandler(cfg, users, tokens)

	if cfg.RabbitURL != "" {
		go func() {
			if err := queue.StartUserRegisteredConsumer(cfg.RabbitURL); err != nil {
				log.Printf("signup-consumer stopped: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, auth, tokens, users, config.LoadRateLimitConfig(), rdb)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, session ttl=%s)", addr, cfg.Env, tokens.TTL())

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
