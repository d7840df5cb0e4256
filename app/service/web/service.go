package web

import (
	"context"
	"log/slog"
	"time"

	"pmdsite/app/config"
	"pmdsite/app/service/content"
	"pmdsite/app/service/responder"
	"pmdsite/app/service/viewstate"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/samber/do"
)

const shutdownTimeout = 10 * time.Second

type Service struct {
	cfg          *config.Config
	contentSvc   *content.Service
	responderSvc *responder.Service
	viewstateSvc *viewstate.Service

	validate  *validator.Validate
	app       *fiber.App
	startedAt time.Time
}

func New(di *do.Injector) (*Service, error) {
	s := &Service{
		cfg:          do.MustInvoke[*config.Config](di),
		contentSvc:   do.MustInvoke[*content.Service](di),
		responderSvc: do.MustInvoke[*responder.Service](di),
		viewstateSvc: do.MustInvoke[*viewstate.Service](di),
		validate:     validator.New(validator.WithRequiredStructEnabled()),
		startedAt:    time.Now(),
	}

	s.app = fiber.New(fiber.Config{
		AppName:               "pmdsite",
		DisableStartupMessage: true,
		ReadTimeout:           s.cfg.Server.ReadTimeout,
		WriteTimeout:          s.cfg.Server.WriteTimeout,
		ErrorHandler:          errorHandler,
	})
	s.routes()

	return s, nil
}

func (s *Service) routes() {
	s.app.Use(requestLogger)
	s.app.Use(recover.New())
	if s.cfg.Server.CORSOrigins != "" {
		s.app.Use(cors.New(cors.Config{
			AllowOrigins:     s.cfg.Server.CORSOrigins,
			AllowHeaders:     "Content-Type",
			AllowMethods:     "GET,POST,OPTIONS",
			AllowCredentials: false,
		}))
	}

	s.app.Get("/health", s.handleHealth)

	api := s.app.Group("/api")
	api.Get("/languages", s.handleLanguages)
	api.Get("/content/:lang", s.handleContent)
	api.Get("/content/:lang/team/:id", s.handleTeamMember)
	api.Get("/content/:lang/projects/:id", s.handleProject)
	api.Post("/chat", s.handleChat)
	api.Get("/state", s.handleInitialState)
	api.Post("/state/:action", s.handleTransition)

	if s.cfg.Server.StaticDir != "" {
		s.app.Static("/", s.cfg.Server.StaticDir, fiber.Static{
			Index:    "index.html",
			Compress: true,
		})
	}
}

// App exposes the router for in-process requests.
func (s *Service) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled.
func (s *Service) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		slog.Info("HTTP server listening", "addr", s.cfg.Server.Listen)
		errCh <- s.app.Listen(s.cfg.Server.Listen)
	}()

	select {
	case <-ctx.Done():
		slog.Info("HTTP server shutting down")
		return s.app.ShutdownWithTimeout(shutdownTimeout)
	case err := <-errCh:
		return err
	}
}
