package relay

import (
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/message"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/whatsapp"
)

// Deliver converts one dispatcher reply payload into outbound sends: text
// first, then the single media URL, then each listed media URL, in order.
// A payload carrying both text and media results in separate sends. Partial
// failures are logged individually, never aggregated.
func (p *Processor) Deliver(to, quotedMessageID string, reply message.Reply) {
	if reply.Text != "" {
		res := p.client.SendReply(to, reply.Text, quotedMessageID)
		if !res.OK {
			log.Error().
				Str("to", to).
				Str("error", res.Error).
				Msg("Error delivering reply text")
		}
	}

	if reply.MediaURL != "" {
		p.deliverMedia(to, reply.MediaURL)
	}

	for _, url := range reply.MediaURLs {
		p.deliverMedia(to, url)
	}
}

func (p *Processor) deliverMedia(to, url string) {
	res := p.client.SendMedia(to, mediaTypeForURL(url), whatsapp.MediaRef{Link: url})
	if !res.OK {
		log.Error().
			Str("to", to).
			Str("media_url", url).
			Str("error", res.Error).
			Msg("Error delivering reply media")
	}
}

// mediaTypeForURL picks the Cloud API media type from the URL's file
// extension, defaulting to document for anything unrecognized.
func mediaTypeForURL(url string) string {
	if i := strings.IndexAny(url, "?#"); i >= 0 {
		url = url[:i]
	}
	lower := strings.ToLower(url)

	switch {
	case hasAnySuffix(lower, ".jpg", ".jpeg", ".png", ".webp"):
		return "image"
	case hasAnySuffix(lower, ".mp4", ".3gp"):
		return "video"
	case hasAnySuffix(lower, ".mp3", ".ogg", ".m4a", ".aac", ".amr", ".opus"):
		return "audio"
	default:
		return "document"
	}
}

func hasAnySuffix(s string, suffixes ...string) bool {
	for _, suffix := range suffixes {
		if strings.HasSuffix(s, suffix) {
			return true
		}
	}
	return false
}
