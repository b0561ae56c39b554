package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/freshcart/grocery_backend/internal/config"
	"github.com/freshcart/grocery_backend/internal/es"
	"github.com/freshcart/grocery_backend/internal/handlers"
	"github.com/freshcart/grocery_backend/internal/logging"
	authmw "github.com/freshcart/grocery_backend/internal/middleware/auth"
	"github.com/freshcart/grocery_backend/internal/mykafka"
	"github.com/freshcart/grocery_backend/internal/respond"
	"github.com/freshcart/grocery_backend/internal/token"
	httpserver "github.com/freshcart/grocery_backend/internal/transport/http"
)

func main() {
	configuration, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := logging.New(configuration.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB(configuration)
	if err != nil {
		log.Fatalf("database bootstrap failed: %v", err)
	}

	tokens := &token.Service{Secret: []byte(configuration.JWT_SECRET)}

	var prod *mykafka.Producer
	if configuration.KAFKA_ADDRESS != "" {
		prod = mykafka.NewProducer([]string{configuration.KAFKA_ADDRESS})
	}

	deps := httpserver.Deps{
		DB:           db,
		AuthMW:       &authmw.Middleware{Tokens: tokens},
		AuthHandler:  &handlers.AuthHandler{DB: db, Tokens: tokens, Producer: prod},
		AdminHandler: &handlers.AdminHandler{DB: db, Tokens: tokens, Producer: prod},
		ItemHandler:  &handlers.ItemHandler{DB: db, Producer: prod},
		OrderHandler: &handlers.OrderHandler{DB: db, Producer: prod},
	}

	if configuration.ES_URL != "" {
		esClient, err := es.NewClient(configuration)
		if err != nil {
			log.Fatal(err)
		}
		deps.SearchHandler = &handlers.SearchHandler{ES: esClient, Index: "item"}
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.HTTPErrorHandler = respond.HTTPErrorHandler

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":8080",
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := prod.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
