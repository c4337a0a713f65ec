package devserver

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/google/uuid"

	"github.com/abhisek/pathway/internal/metrics"
	"github.com/abhisek/pathway/internal/provider"
)

// Options configures a Server.
type Options struct {
	// SessionCookie names the cookie that must carry SessionToken.
	SessionCookie string
	// SessionToken is the accepted session value. A random one is
	// generated when empty.
	SessionToken string

	RoadmapPath  string
	ProgressPath string

	Log *slog.Logger
}

// Server is the development roadmap provider.
type Server struct {
	app  *fiber.App
	repo Repository
	opts Options
	log  *slog.Logger
}

// New builds a Server over repo. Paths default to the client's defaults.
func New(repo Repository, opts Options) *Server {
	defaults := provider.DefaultConfig()
	if opts.SessionCookie == "" {
		opts.SessionCookie = defaults.SessionCookie
	}
	if opts.SessionToken == "" {
		opts.SessionToken = uuid.NewString()
	}
	if opts.RoadmapPath == "" {
		opts.RoadmapPath = defaults.RoadmapPath
	}
	if opts.ProgressPath == "" {
		opts.ProgressPath = defaults.ProgressPath
	}
	log := opts.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Server{
		app:  fiber.New(fiber.Config{AppName: "pathway-devserver"}),
		repo: repo,
		opts: opts,
		log:  log,
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Use(s.observe)

	s.app.Get("/healthz", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	s.app.Get("/metrics", adaptor.HTTPHandler(metrics.Handler()))

	s.app.Get(s.opts.RoadmapPath, s.requireSession, s.handleRoadmap)
	s.app.Post(s.opts.ProgressPath, s.requireSession, s.handleProgress)
}

// App exposes the fiber app, mainly for app.Test.
func (s *Server) App() *fiber.App {
	return s.app
}

// Token returns the accepted session token.
func (s *Server) Token() string {
	return s.opts.SessionToken
}

// CookieName returns the session cookie name.
func (s *Server) CookieName() string {
	return s.opts.SessionCookie
}

// Listen serves on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	return s.app.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true})
}

// Shutdown stops the listener, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// observe logs and counts every request.
func (s *Server) observe(c fiber.Ctx) error {
	err := c.Next()

	status := c.Response().StatusCode()
	if err != nil {
		status = fiber.StatusInternalServerError
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
	}

	metrics.RecordHTTPRequest(c.Path(), c.Method(), strconv.Itoa(status))
	s.log.Debug("request",
		"method", c.Method(),
		"path", c.Path(),
		"status", status,
		"request_id", c.Get(provider.RequestIDHeader),
	)
	return err
}

func (s *Server) requireSession(c fiber.Ctx) error {
	if c.Cookies(s.opts.SessionCookie) != s.opts.SessionToken {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "unauthorized"})
	}
	return c.Next()
}

func (s *Server) handleRoadmap(c fiber.Ctx) error {
	steps, err := s.repo.ListSteps(c.Context())
	if err != nil {
		s.log.Error("list steps", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(steps)
}

func (s *Server) handleProgress(c fiber.Ctx) error {
	var body provider.ProgressUpdate
	if err := c.Bind().JSON(&body); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid body"})
	}
	if body.StepID <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "roadmap_step_id is required"})
	}

	err := s.repo.SetCompleted(c.Context(), body.StepID, body.Completed)
	if errors.Is(err, ErrStepNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "step not found"})
	}
	if err != nil {
		s.log.Error("set completed", "step_id", body.StepID, "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if n, err := s.repo.CompletedCount(c.Context()); err == nil {
		metrics.SetStepsCompleted(n)
	}
	s.log.Info("progress recorded", "step_id", body.StepID, "completed", body.Completed)
	return c.JSON(body)
}
