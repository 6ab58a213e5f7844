package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/viktoryglory/blog-API/internal/auth"
	"github.com/viktoryglory/blog-API/internal/config"
	"github.com/viktoryglory/blog-API/internal/db"
	"github.com/viktoryglory/blog-API/internal/httpserver"
	"github.com/viktoryglory/blog-API/repository"
)

func main() {
	// .env is optional; environment variables win either way.
	if err := godotenv.Load(); err == nil {
		log.Println("loaded configuration from .env")
	}

	seedFlag := flag.Bool("seed", false, "create the default admin account and categories, then exit")
	flag.Parse()

	cfg, err := config.LoadWithDefaults()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	log.Printf("configuration loaded: %v", cfg)

	d, err := db.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer func() {
		if err := d.Close(); err != nil {
			log.Printf("close db: %v", err)
		}
	}()

	users := repository.NewUserRepository(d)
	categories := repository.NewCategoryRepository(d)
	posts := repository.NewPostRepository(d)
	comments := repository.NewCommentRepository(d)

	if *seedFlag {
		if err := seed(context.Background(), users, categories); err != nil {
			log.Fatalf("seed: %v", err)
		}
		log.Println("database seeded successfully")
		return
	}

	authSvc := auth.NewService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	srv := httpserver.New(authSvc, users, categories, posts, comments)

	server := &http.Server{
		Addr:         cfg.HTTP.Address,
		Handler:      srv.Router(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("HTTP server listening on %s", cfg.HTTP.Address)

	// Wait for signal
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	<-sigc

	log.Println("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
