package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/iamasit07/connect4-agent/internal/config"
	"github.com/iamasit07/connect4-agent/internal/repository/redis"
	"github.com/iamasit07/connect4-agent/internal/service/bot"
	transportHttp "github.com/iamasit07/connect4-agent/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found")
		}
	}

	cfg := config.LoadConfig()

	opts, strategy, err := bot.OptionsFromConfig(cfg)
	if err != nil {
		log.Fatalf("Invalid search configuration: %v", err)
	}

	// Move cache is optional; the engine searches without it
	var cache bot.CacheRepository
	client, err := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword)
	if err != nil {
		log.Printf("Failed to initialize Redis: %v", err)
	}
	if client != nil {
		moveCache := redis.NewMoveCache(client)
		defer moveCache.Close()
		cache = moveCache
	}

	engine := bot.NewEngine(opts, cache)
	moveHandler := transportHttp.NewMoveHandler(engine, cfg.SearchDepth, strategy)
	router := transportHttp.NewRouter(moveHandler, cfg.AllowedOrigins)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s (depth=%d strategy=%s expansion=%s)", cfg.Port, cfg.SearchDepth, strategy, opts.Expansion)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited gracefully")
}
