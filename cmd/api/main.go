package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/mongodb"
)

// version is set at build time via -ldflags "-X main.version=x.y.z".
var version = "dev"

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}
	log.Printf("Starting Library API %s", version)

	conn := mustConnect(cfg)
	db, err := conn.Database()
	if err != nil {
		log.Fatalf("database handle: %v", err)
	}

	app := newApplication(cfg, conn,
		author.NewMongoRepo(db, cfg.Mongo.OpTimeout),
		book.NewMongoRepo(db, cfg.Mongo.OpTimeout),
	)

	httpServer := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      app.routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serve(httpServer, cfg.HTTP.ShutdownTimeout, func(ctx context.Context) {
		app.close()
		if err := conn.Close(ctx); err != nil {
			log.Printf("disconnect mongodb: %v", err)
		}
	})
}

// mustConnect exits the process when the initial connection fails; the
// server never starts without a database.
func mustConnect(cfg *config.Config) *mongodb.Client {
	conn, err := mongodb.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database, cfg.Mongo.ConnectTimeout)
	if err != nil {
		log.Fatalf("cannot connect to MongoDB: %v", err)
	}
	log.Printf("database connection OK db=%s uri=%s", cfg.Mongo.Database, mongodb.RedactURI(cfg.Mongo.URI))
	return conn
}

func serve(srv *http.Server, timeout time.Duration, onShutdown func(ctx context.Context)) {
	errCh := make(chan error, 1)
	go func() {
		log.Printf("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Printf("server error: %v", err)
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		onShutdown(ctx)
		cancel()
		os.Exit(1)
	case sig := <-quit:
		log.Printf("received %s, shutting down (timeout %v)", sig, timeout)
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	onShutdown(ctx)
	log.Println("Server exiting")
}
