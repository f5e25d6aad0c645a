package server

import (
	"github.com/gofiber/fiber/v3"
)

func (s *Server) setupRoutes() {
	s.app.Get("/health", s.healthCheckHandler)
	s.app.Get(s.webhookPath, s.verificationHandler)
	s.app.Post(s.webhookPath, s.webhookHandler)

	// Catch-all so unmatched methods on known paths get 404 instead of
	// fiber's automatic 405.
	s.app.Use(func(c fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNotFound)
	})
}
