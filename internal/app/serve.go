// Purpose: HTTP render service.
// Exports: Server, NewServer, RunServe.
// Role: Renders documents and Markdown for callers that cannot link the
// library (build pipelines, editors, game tooling).
// Invariants: Each request gets its own builder; every response carries
// X-Request-ID; metrics live on a private registry.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sandover/tmpfmt/internal/compose"
)

const (
	headerRequestID = "X-Request-ID"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      Config
	logger   *slog.Logger
	app      *fiber.App
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func NewServer(cfg Config, logger *slog.Logger) *Server {
	s := &Server{
		cfg:    cfg,
		logger: logger,
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "tmpfmt_render_requests_total",
			Help: "Render requests by route and HTTP status.",
		}, []string{"route", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "tmpfmt_render_duration_seconds",
			Help:    "Render request latency by route.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
	registry := prometheus.NewRegistry()
	registry.MustRegister(s.requests, s.duration)

	s.app = fiber.New(fiber.Config{
		AppName:               "tmpfmt",
		ReadTimeout:           cfg.Serve.ReadTimeout,
		BodyLimit:             cfg.Serve.BodyLimit,
		DisableStartupMessage: true,
	})
	s.app.Use(s.requestID)
	s.app.Post("/v1/render", s.instrument("/v1/render", s.handleRender))
	s.app.Post("/v1/markdown", s.instrument("/v1/markdown", s.handleMarkdown))
	s.app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	return s
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- s.app.Listen(addr)
	}()
	s.logger.Debug("listening", "addr", addr)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}

func (s *Server) requestID(c *fiber.Ctx) error {
	id := c.Get(headerRequestID)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(headerRequestID, id)
	return c.Next()
}

func (s *Server) instrument(route string, h fiber.Handler) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := h(c)
		status := c.Response().StatusCode()
		var ferr *fiber.Error
		if errors.As(err, &ferr) {
			status = ferr.Code
		}
		s.requests.WithLabelValues(route, strconv.Itoa(status)).Inc()
		s.duration.WithLabelValues(route).Observe(time.Since(start).Seconds())
		s.logger.Debug("request", "route", route, "status", status, "id", c.GetRespHeader(headerRequestID))
		return err
	}
}

func (s *Server) handleRender(c *fiber.Ctx) error {
	format := compose.FormatJSON
	if strings.Contains(c.Get(fiber.HeaderContentType), "yaml") {
		format = compose.FormatYAML
	}
	doc, verr := compose.ParseDocument(c.Body(), format)
	if verr != nil {
		return sendValidation(c, http.StatusBadRequest, verr)
	}
	return s.render(c, doc)
}

func (s *Server) handleMarkdown(c *fiber.Ctx) error {
	doc := compose.FromMarkdown(c.Body(), s.cfg.markdownOptions())
	return s.render(c, doc)
}

func (s *Server) render(c *fiber.Ctx, doc *compose.Document) error {
	opts := s.cfg.renderOptions()
	if c.Query("strict") == "true" {
		opts.Strict = true
	}
	markup, verr := compose.Render(doc, opts)
	if verr != nil {
		return sendValidation(c, http.StatusUnprocessableEntity, verr)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return writeJSON(c, renderOutput{Markup: markup})
}

func sendValidation(c *fiber.Ctx, status int, verr *compose.ValidationError) error {
	c.Status(status)
	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSONCharsetUTF8)
	return verr.WriteJSON(c)
}

func RunServe(ctx context.Context, addr string, opts GlobalOptions) error {
	cfg, err := LoadConfig(opts)
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Serve.Addr
	}
	if !opts.Quiet {
		fmt.Fprintf(os.Stderr, "tmpfmt: serving on http://%s (Ctrl-C to stop)\n", addr)
	}
	return NewServer(cfg, NewLogger(opts)).Run(ctx, addr)
}
