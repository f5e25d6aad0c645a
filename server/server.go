// Package server hosts the inbound webhook gateway.
package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/rs/zerolog/log"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/relay"
)

type Server struct {
	app         *fiber.App
	processor   *relay.Processor
	webhookPath string
	verifyToken string
}

func New(processor *relay.Processor, webhookPath, verifyToken string) *Server {
	app := fiber.New()

	server := &Server{
		app:         app,
		processor:   processor,
		webhookPath: webhookPath,
		verifyToken: verifyToken,
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}

func (s *Server) Start(port string) error {
	log.Info().
		Str("port", port).
		Str("webhook_path", s.webhookPath).
		Msg("Starting webhook gateway")

	return s.app.Listen(":"+port, fiber.ListenConfig{
		DisableStartupMessage: true,
	})
}

func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// App exposes the fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}
