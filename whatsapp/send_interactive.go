package whatsapp

import (
	"github.com/rs/zerolog/log"
)

const (
	// maxButtons is the Cloud API limit on reply buttons per message.
	maxButtons = 3
	// maxButtonTitleLength is the Cloud API limit on a button title,
	// counted in characters.
	maxButtonTitleLength = 20
)

// SendInteractive sends an arbitrary interactive payload (buttons or list).
func (c *Client) SendInteractive(to string, interactive Interactive) SendResult {
	request := messageRequest{
		MessagingProduct: messagingProduct,
		RecipientType:    recipientTypeDM,
		To:               to,
		Type:             "interactive",
		Interactive:      &interactive,
	}

	res := result(c.sendMessageRequest(request))
	if !res.OK {
		log.Error().
			Str("to", to).
			Str("interactive_type", interactive.Type).
			Str("error", res.Error).
			Msg("Error sending interactive message")
		return res
	}

	log.Info().
		Str("to", to).
		Str("interactive_type", interactive.Type).
		Str("message_id", res.MessageID).
		Msg("Interactive message sent")

	return res
}

// SendButtons is a convenience wrapper around SendInteractive that builds a
// reply-button message. Only the first three buttons are kept and titles are
// truncated to the provider limit.
func (c *Client) SendButtons(to, bodyText string, buttons []ButtonReply) SendResult {
	if len(buttons) > maxButtons {
		buttons = buttons[:maxButtons]
	}

	interactiveButtons := make([]InteractiveButton, 0, len(buttons))
	for _, button := range buttons {
		title := button.Title
		if runes := []rune(title); len(runes) > maxButtonTitleLength {
			title = string(runes[:maxButtonTitleLength])
		}
		interactiveButtons = append(interactiveButtons, InteractiveButton{
			Type:  "reply",
			Reply: ButtonReply{ID: button.ID, Title: title},
		})
	}

	return c.SendInteractive(to, Interactive{
		Type:   "button",
		Body:   &InteractiveBody{Text: bodyText},
		Action: &InteractiveAction{Buttons: interactiveButtons},
	})
}
