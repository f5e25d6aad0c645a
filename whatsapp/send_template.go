package whatsapp

import (
	"github.com/rs/zerolog/log"
)

// SendTemplate sends a pre-approved message template. Templates are
// fixed-size, so no chunking applies.
func (c *Client) SendTemplate(to, templateName, languageCode string, components []TemplateComponent) SendResult {
	request := messageRequest{
		MessagingProduct: messagingProduct,
		RecipientType:    recipientTypeDM,
		To:               to,
		Type:             "template",
		Template: &templateBody{
			Name:       templateName,
			Language:   templateLanguage{Code: languageCode},
			Components: components,
		},
	}

	res := result(c.sendMessageRequest(request))
	if !res.OK {
		log.Error().
			Str("to", to).
			Str("template", templateName).
			Str("error", res.Error).
			Msg("Error sending template message")
		return res
	}

	log.Info().
		Str("to", to).
		Str("template", templateName).
		Str("message_id", res.MessageID).
		Msg("Template message sent")

	return res
}
