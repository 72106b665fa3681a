package main

import (
	"fmt"
	"log"
	"net/http"

	"constructsite/cmd/app"
	"constructsite/internal/config"
	handlers "constructsite/internal/handler"
	"constructsite/internal/middleware"
	"constructsite/internal/ratelimit"
)

func main() {
	cfg := config.LoadConfig()

	if cfg.JWTSecretKey == "" {
		log.Fatal("JWT_SECRET_KEY is not set in the .env file")
	}

	db, repo, services, store := app.App(cfg)
	defer db.CloseDB()

	handler := handlers.NewHandlers(repo, services, store, cfg)

	limiter := ratelimit.NewMemoryStore(cfg.RateLimitWindow, cfg.RateLimitMax)
	router := handlers.NewRouter(handler, limiter)

	chain := middleware.Chain(
		router,
		middleware.Logging,
		middleware.CORS(cfg.CORSOrigins),
	)

	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	log.Printf("Server listening on %s", addr)

	if err := http.ListenAndServe(addr, chain); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
