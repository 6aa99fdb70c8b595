package main

import (
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"

	httpadapter "svw.info/matchsticks/internal/adapters/http"
	"svw.info/matchsticks/internal/catalog"
	"svw.info/matchsticks/internal/config"
	"svw.info/matchsticks/internal/generator"
	"svw.info/matchsticks/internal/glyphs"
	"svw.info/matchsticks/internal/hint"
	"svw.info/matchsticks/internal/infrastructure/storage"
	"svw.info/matchsticks/internal/solver"
	"svw.info/matchsticks/internal/usecase"
	"svw.info/matchsticks/internal/validator"
)

// statusWriter captures HTTP status and bytes written.
type statusWriter struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.bytes += n
	return n, err
}

// requestLogger tags every request with an id and logs method, path,
// status, bytes and duration.
func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", id)
		sw := &statusWriter{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		logger.Info("http",
			"id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"bytes", sw.bytes,
			"dur", time.Since(start).Round(time.Millisecond),
		)
	})
}

// newHandler serves the JSON API, gzip-compressed when the client accepts it.
func newHandler(logger *slog.Logger, uc *usecase.Service) http.Handler {
	mux := http.NewServeMux()
	httpadapter.New(uc).Register(mux)
	return requestLogger(logger, gzhttp.GzipHandler(mux))
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	addr := flag.String("addr", cfg.Addr, "listen address")
	dir := flag.String("puzzle-dir", cfg.PuzzleDir, "puzzle library directory")
	levelStr := flag.String("log-level", cfg.LogLevel, "debug|info|warn|error")
	workers := flag.Int("workers", cfg.Workers, "concurrent search workers per solve")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: config.Level(*levelStr)}))

	c, err := catalog.New(glyphs.MustStandard())
	if err != nil {
		logger.Error("catalog", "err", err)
		os.Exit(1)
	}

	// Wire providers → use cases → HTTP adapter
	s := &solver.SingleMoveSolver{Catalog: c, Workers: *workers, Logger: logger}
	g := generator.NewReverseMoveGenerator(c, s)
	v := validator.New()
	lib := storage.NewFS(*dir)
	hin := hint.NewFirstMove(s)
	uc := usecase.NewService(c, s, g, v, hin, lib)

	srv := &http.Server{
		Addr:              *addr,
		Handler:           newHandler(logger, uc),
		ReadHeaderTimeout: 5 * time.Second,
	}
	logger.Info("listening", "addr", *addr, "puzzles", *dir, "glyphs", len(c.Symbols()), "workers", *workers)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server error", "err", err)
		os.Exit(1)
	}
}
