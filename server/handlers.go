package server

import (
	"bytes"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/webhook"
)

// verificationHandler answers the Meta webhook challenge handshake: 200 with
// the challenge echoed back when mode and verify token match, 403 otherwise.
func (s *Server) verificationHandler(c fiber.Ctx) error {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token == s.verifyToken && challenge != "" {
		log.Info().Msg("Webhook verification challenge accepted")
		return c.SendString(challenge)
	}

	log.Warn().Str("mode", mode).Msg("Webhook verification challenge rejected")
	return c.SendStatus(fiber.StatusForbidden)
}

// webhookHandler acknowledges every delivery with 200 immediately and hands
// the body off for asynchronous processing. The provider retries
// aggressively on non-2xx, so even forged or malformed payloads get 200;
// they are dropped after the signature check.
func (s *Server) webhookHandler(c fiber.Ctx) error {
	requestID := uuid.NewString()

	// The fiber buffer is reused once the handler returns; the goroutine
	// needs its own copy.
	body := bytes.Clone(c.Body())
	signature := c.Get(webhook.SignatureHeader)

	log.Debug().
		Str("request_id", requestID).
		Int("body_size", len(body)).
		Msg("Received webhook delivery")

	go s.processor.HandleWebhook(requestID, body, signature)

	return c.SendString("OK")
}

func (s *Server) healthCheckHandler(c fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"channel": "whatsapp",
	})
}
