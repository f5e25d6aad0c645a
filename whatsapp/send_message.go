package whatsapp

import (
	"github.com/rs/zerolog/log"
)

// SendText sends a text message, splitting bodies longer than the Cloud API
// limit into ordered sequential chunks. The first failing chunk aborts the
// remaining sends and its error is returned; OK is true only when every
// chunk succeeded. The returned MessageID is that of the last sent chunk.
func (c *Client) SendText(to, text string) SendResult {
	return c.sendChunked(to, text, "")
}

// SendReply sends a text message threaded onto a prior message via the
// Cloud API context field. Only the first chunk carries the context.
func (c *Client) SendReply(to, text, quotedMessageID string) SendResult {
	return c.sendChunked(to, text, quotedMessageID)
}

func (c *Client) sendChunked(to, text, quotedMessageID string) SendResult {
	chunks := SplitMessage(text, MaxTextLength)
	if len(chunks) == 0 {
		return SendResult{OK: false, Error: "empty message text"}
	}

	var last SendResult
	for i, chunk := range chunks {
		request := messageRequest{
			MessagingProduct: messagingProduct,
			RecipientType:    recipientTypeDM,
			To:               to,
			Type:             "text",
			Text:             &textBody{Body: chunk},
		}
		if i == 0 && quotedMessageID != "" {
			request.Context = &messageContext{MessageID: quotedMessageID}
		}

		last = result(c.sendMessageRequest(request))
		if !last.OK {
			log.Error().
				Str("to", to).
				Int("chunk", i+1).
				Int("chunks", len(chunks)).
				Str("error", last.Error).
				Msg("Error sending text message chunk")
			return last
		}

		log.Info().
			Str("to", to).
			Str("message_id", last.MessageID).
			Int("chunk", i+1).
			Int("chunks", len(chunks)).
			Msg("Text message chunk sent")
	}

	return last
}
