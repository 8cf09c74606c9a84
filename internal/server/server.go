package server

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/stonk-bot/stonk_bot/internal/routes"
)

// Server wraps the Fiber application serving the command surface.
type Server struct {
	app *fiber.App
	cfg ServerConfig
}

// ServerConfig is the subset of configuration the server needs.
type ServerConfig struct {
	AppName string
	Address string
}

// New instantiates the HTTP server and delegates route wiring to routes.Setup.
func New(cfg ServerConfig, deps routes.Deps) (*Server, error) {
	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	if err := routes.Setup(app, deps); err != nil {
		return nil, err
	}

	return &Server{app: app, cfg: cfg}, nil
}

// Listen starts the HTTP server.
func (s *Server) Listen() error {
	return s.app.Listen(s.cfg.Address)
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}
