package relay

import (
	"context"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/message"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/whatsapp"
)

// WhatsAppClientInterface defines the outbound operations the relay needs.
type WhatsAppClientInterface interface {
	SendText(to, text string) whatsapp.SendResult
	SendReply(to, text, quotedMessageID string) whatsapp.SendResult
	SendMedia(to, mediaType string, ref whatsapp.MediaRef) whatsapp.SendResult
	MarkAsRead(messageID string, typing bool) error
	GetMediaURL(mediaID string) (string, error)
	DownloadMedia(url string) ([]byte, string, error)
}

// DedupInterface suppresses provider webhook redeliveries.
type DedupInterface interface {
	MarkSeen(messageID string) (bool, error)
}

// MediaStoreInterface archives downloaded attachments to durable storage.
type MediaStoreInterface interface {
	UploadMedia(mediaID string, data []byte, contentType string) (string, error)
}

// DeliverFunc is handed to the dispatcher; it may be called zero or more
// times with reply payloads to send back to the originating sender.
type DeliverFunc func(reply message.Reply)

// Dispatcher is the external collaborator that turns canonical inbound
// messages into replies.
type Dispatcher func(ctx context.Context, msg message.Inbound, deliver DeliverFunc) error

// StatusHandler receives delivery-status updates for previously sent messages.
type StatusHandler func(status message.StatusUpdate)
