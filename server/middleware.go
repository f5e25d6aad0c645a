package server

import (
	"github.com/gofiber/fiber/v3/middleware/recover"
)

// setupMiddleware configures middleware for the server. The recover
// middleware keeps one bad request from taking down the listener.
func (s *Server) setupMiddleware() {
	s.app.Use(recover.New())
}
