package whatsapp

import (
	"github.com/rs/zerolog/log"
)

// MediaRef points at the media to send: either a public URL or the id of a
// previously uploaded media object. Caption applies to image, video and
// document messages; Filename to documents only.
type MediaRef struct {
	Link     string
	MediaID  string
	Caption  string
	Filename string
}

// SendMedia sends one media message of the given type (image, audio, video,
// document or sticker).
func (c *Client) SendMedia(to, mediaType string, ref MediaRef) SendResult {
	body := &mediaBody{
		Link:     ref.Link,
		ID:       ref.MediaID,
		Caption:  ref.Caption,
		Filename: ref.Filename,
	}

	request := messageRequest{
		MessagingProduct: messagingProduct,
		RecipientType:    recipientTypeDM,
		To:               to,
		Type:             mediaType,
	}

	switch mediaType {
	case "image":
		request.Image = body
	case "audio":
		body.Caption, body.Filename = "", ""
		request.Audio = body
	case "video":
		body.Filename = ""
		request.Video = body
	case "document":
		request.Document = body
	case "sticker":
		body.Caption, body.Filename = "", ""
		request.Sticker = body
	default:
		return SendResult{OK: false, Error: "unsupported media type: " + mediaType}
	}

	res := result(c.sendMessageRequest(request))
	if !res.OK {
		log.Error().
			Str("to", to).
			Str("media_type", mediaType).
			Str("error", res.Error).
			Msg("Error sending media message")
		return res
	}

	log.Info().
		Str("to", to).
		Str("media_type", mediaType).
		Str("message_id", res.MessageID).
		Msg("Media message sent")

	return res
}

type mediaBody struct {
	ID       string `json:"id,omitempty"`
	Link     string `json:"link,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}
