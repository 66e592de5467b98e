// Package server exposes the dashboard and its load actions over HTTP.
package server

import (
	"context"
	"errors"
	"time"

	"space/explorer/internal/page"
	"space/explorer/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	log "github.com/sirupsen/logrus"
)

const (
	SessionCookie   = "explorer_session"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	app  *fiber.App
	addr string
}

func New(addr string, svc *service.Service, registry *page.Registry) *Server {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		Immutable:             true, // session ids from cookies outlive the request
		UnescapePath:          true,
		ErrorHandler:          errorHandler,
	})

	app.Use(recover.New())
	app.Use(requestLogger)

	h := NewHandler(svc, registry)
	h.RegisterRoutes(app)

	return &Server{app: app, addr: addr}
}

func (s *Server) App() *fiber.App {
	return s.app
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		log.Infof("🚀 Dashboard listening on %s", s.addr)
		errCh <- s.app.Listen(s.addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("🛑 Shutting down HTTP server...")
	if err := s.app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	return <-errCh
}

func requestLogger(c *fiber.Ctx) error {
	started := time.Now()
	err := c.Next()

	status := c.Response().StatusCode()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}

	log.WithFields(log.Fields{
		"method": c.Method(),
		"path":   c.Path(),
		"status": status,
		"took":   time.Since(started).Round(time.Millisecond),
	}).Debug("HTTP request")
	return err
}

func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	} else {
		log.Errorf("❌ Request %s %s failed: %v", c.Method(), c.Path(), err)
	}
	return c.Status(code).JSON(fiber.Map{"message": err.Error()})
}
