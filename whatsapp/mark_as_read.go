package whatsapp

import (
	"github.com/rs/zerolog/log"
)

// MarkAsRead reports a received message as read. When typing is true a
// typing indicator is attached, which the provider shows until a reply is
// sent. This is a best-effort side call: failures should be logged by the
// caller and never affect the primary flow.
func (c *Client) MarkAsRead(messageID string, typing bool) error {
	log.Debug().Str("message_id", messageID).Bool("typing", typing).Msg("Marking message as read")

	request := messageRequest{
		MessagingProduct: messagingProduct,
		Status:           "read",
		MessageID:        messageID,
	}
	if typing {
		request.TypingIndicator = &typingIndicator{Type: "text"}
	}

	_, err := c.sendRequest("POST", c.messagesURL(), request)
	return err
}
