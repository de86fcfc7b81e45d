// Package server exposes conversions over HTTP for hosts that cannot link
// the library directly.
//
//	GET /v1/hex2rgb?q=%23ff0080
//	GET /v1/rgb2hex?q=255,0,128
//	GET /swatches/color_255_0_128.png
//	GET /healthz
//
// Result icons that live in the swatch cache are rewritten to their
// /swatches/ URL; the fallback icon path is passed through unchanged.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"
	"regexp"
	"time"

	"fortio.org/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/maax3v3/hexrgb/internal/pipeline"
)

var swatchName = regexp.MustCompile(`^color_\d{1,3}_\d{1,3}_\d{1,3}(_\d{1,3})?\.png$`)

// Config holds HTTP server configuration.
type Config struct {
	Addr      string
	RateLimit float64 // query requests per second, 0 disables limiting
	Burst     int
}

// DefaultConfig returns sensible default server configuration.
func DefaultConfig() Config {
	return Config{Addr: ":8080", RateLimit: 20, Burst: 40}
}

// Response is the JSON body of a query.
type Response struct {
	Direction string            `json:"direction"`
	Query     string            `json:"query"`
	Results   []pipeline.Result `json:"results"`
}

// NewRouter builds the HTTP handler for runner.
func NewRouter(runner *pipeline.Runner, cfg Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok\n"))
	})

	r.Group(func(r chi.Router) {
		if cfg.RateLimit > 0 {
			burst := cfg.Burst
			if burst < 1 {
				burst = 1
			}
			r.Use(limit(rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)))
		}
		r.Get("/v1/{direction}", queryHandler(runner))
	})

	r.Get("/swatches/{name}", swatchHandler(runner.Cache.Dir()))

	return log.LogAndCall("http", r.ServeHTTP)
}

func queryHandler(runner *pipeline.Runner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		dir, err := pipeline.ParseDirection(chi.URLParam(r, "direction"))
		if err != nil {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		q := r.URL.Query().Get("q")
		results := runner.Run(dir, q)
		for i := range results {
			results[i].IcoPath = iconURL(runner.Cache.Dir(), results[i].IcoPath)
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(Response{Direction: dir.String(), Query: q, Results: results}); err != nil {
			log.Warnf("Writing response: %v", err)
		}
	}
}

func swatchHandler(dir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if !swatchName.MatchString(name) {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Cache-Control", "public, max-age=31536000, immutable")
		http.ServeFile(w, r, filepath.Join(dir, name))
	}
}

func iconURL(cacheDir, icon string) string {
	if filepath.Dir(icon) == cacheDir && swatchName.MatchString(filepath.Base(icon)) {
		return "/swatches/" + filepath.Base(icon)
	}
	return icon
}

func limit(l *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !l.Allow() {
				w.Header().Set("Retry-After", "1")
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Serve listens on cfg.Addr until ctx is cancelled, then shuts down
// gracefully.
func Serve(ctx context.Context, cfg Config, h http.Handler) error {
	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Infof("Listening on %s", cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
