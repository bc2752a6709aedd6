package main

import (
	"context"
	"net/http"
	"time"

	"libraryapi/internal/author"
	"libraryapi/internal/book"
	"libraryapi/internal/config"
	"libraryapi/internal/docs"
	"libraryapi/internal/httpx"
)

const rootMessage = "Library API is running. Visit /api-docs for Swagger documentation."

type pinger interface {
	Ping(ctx context.Context) error
}

type application struct {
	cfg     *config.Config
	db      pinger
	authors *author.HTTPHandler
	books   *book.HTTPHandler
	limiter *httpx.RateLimitMiddleware
}

func newApplication(cfg *config.Config, db pinger, authorRepo author.Repository, bookRepo book.Repository) *application {
	app := &application{
		cfg:     cfg,
		db:      db,
		authors: author.NewHTTPHandler(author.NewService(authorRepo)),
		books:   book.NewHTTPHandler(book.NewService(bookRepo)),
	}
	if cfg.Limits.RateLimitRPS > 0 {
		app.limiter = httpx.NewRateLimitMiddleware(cfg.Limits.RateLimitRPS, cfg.Limits.RateLimitBurst)
	}
	return app
}

func (app *application) routes() http.Handler {
	router := http.NewServeMux()

	router.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(rootMessage))
	})
	router.HandleFunc("GET "+docs.Path, docs.UIHandler)
	router.HandleFunc("GET "+docs.SpecPath, docs.SpecHandler)
	router.HandleFunc("GET "+docs.Path+"/init.js", docs.InitScriptHandler)

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := app.db.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	router.HandleFunc("GET /authors", app.authors.List)
	router.HandleFunc("POST /authors", app.authors.Create)
	router.HandleFunc("GET /authors/{id}", app.authors.Get)
	router.HandleFunc("PUT /authors/{id}", app.authors.Update)
	router.HandleFunc("DELETE /authors/{id}", app.authors.Delete)

	router.HandleFunc("GET /books", app.books.List)
	router.HandleFunc("POST /books", app.books.Create)
	router.HandleFunc("GET /books/{id}", app.books.Get)
	router.HandleFunc("PUT /books/{id}", app.books.Update)
	router.HandleFunc("DELETE /books/{id}", app.books.Delete)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(app.cfg.HTTP.EnableHSTS),
		httpx.CORSMiddleware(app.cfg.HTTP.AllowedOrigins),
	}
	if app.limiter != nil {
		middlewares = append(middlewares, app.limiter.Middleware)
	}
	middlewares = append(middlewares, httpx.RequestSizeLimitMiddleware(app.cfg.Limits.MaxBodyBytes))

	return httpx.Chain(router, middlewares...)
}

func (app *application) close() {
	if app.limiter != nil {
		app.limiter.Stop()
	}
}
