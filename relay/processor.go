// Package relay orchestrates the webhook pipeline: signature verification,
// payload normalization, access control and hand-off to the dispatcher, plus
// delivery of the dispatcher's replies.
package relay

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/message"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/webhook"
)

type Processor struct {
	client        WhatsAppClientInterface
	dedup         DedupInterface
	mediaStore    MediaStoreInterface
	dispatcher    Dispatcher
	statusHandler StatusHandler

	appSecret        string
	policy           webhook.Policy
	sendReadReceipts bool
}

// Options carries the optional collaborators and policy knobs of a Processor.
type Options struct {
	Dedup            DedupInterface
	MediaStore       MediaStoreInterface
	StatusHandler    StatusHandler
	AppSecret        string
	Policy           webhook.Policy
	SendReadReceipts bool
}

func NewProcessor(client WhatsAppClientInterface, dispatcher Dispatcher, opts Options) *Processor {
	return &Processor{
		client:           client,
		dedup:            opts.Dedup,
		mediaStore:       opts.MediaStore,
		dispatcher:       dispatcher,
		statusHandler:    opts.StatusHandler,
		appSecret:        opts.AppSecret,
		policy:           opts.Policy,
		sendReadReceipts: opts.SendReadReceipts,
	}
}

// HandleWebhook processes one raw webhook body. It is called after the HTTP
// 200 has been written; every failure here is logged and swallowed so one
// bad request never affects the listener.
func (p *Processor) HandleWebhook(requestID string, body []byte, signature string) {
	if p.appSecret != "" {
		if !webhook.VerifySignature(body, signature, p.appSecret) {
			log.Warn().Str("request_id", requestID).Msg("Webhook signature verification failed, dropping payload")
			return
		}
	} else {
		log.Debug().Str("request_id", requestID).Msg("No app secret configured, skipping signature verification")
	}

	payload, err := webhook.ParsePayload(body)
	if err != nil {
		log.Error().Err(err).Str("request_id", requestID).Msg("Error parsing webhook payload")
		return
	}

	messages, statuses := webhook.Normalize(payload)

	for _, status := range statuses {
		if p.statusHandler != nil {
			p.statusHandler(status)
		}
	}

	for _, msg := range messages {
		p.processMessage(requestID, msg)
	}
}

func (p *Processor) processMessage(requestID string, msg message.Inbound) {
	log.Info().
		Str("request_id", requestID).
		Str("message_id", msg.ID).
		Str("from", msg.From).
		Str("kind", string(msg.Kind)).
		Msg("Processing inbound message")

	if !webhook.Allowed(msg.From, p.policy) {
		log.Info().
			Str("request_id", requestID).
			Str("from", msg.From).
			Msg("Sender not in allowlist, dropping message")
		return
	}

	if p.dedup != nil {
		seen, err := p.dedup.MarkSeen(msg.ID)
		if err != nil {
			log.Warn().Err(err).Str("message_id", msg.ID).Msg("Dedup check failed, processing anyway")
		} else if seen {
			log.Debug().Str("message_id", msg.ID).Msg("Duplicate webhook delivery, dropping message")
			return
		}
	}

	if p.sendReadReceipts {
		messageID := msg.ID
		detach("mark as read", func() error {
			return p.client.MarkAsRead(messageID, true)
		})
	}

	p.archiveMedia(&msg)

	deliver := func(reply message.Reply) {
		p.Deliver(msg.From, msg.ID, reply)
	}

	if err := p.dispatcher(context.Background(), msg, deliver); err != nil {
		log.Error().
			Err(err).
			Str("request_id", requestID).
			Str("message_id", msg.ID).
			Msg("Dispatcher failed for inbound message")
		return
	}

	log.Info().
		Str("request_id", requestID).
		Str("message_id", msg.ID).
		Msg("Completed message processing")
}

// archiveMedia resolves, downloads and stores the attachment of a media
// message, attaching the durable URL for the dispatcher. Best effort: the
// message is dispatched either way.
func (p *Processor) archiveMedia(msg *message.Inbound) {
	if msg.Media == nil || p.mediaStore == nil {
		return
	}

	url, err := p.client.GetMediaURL(msg.Media.ID)
	if err != nil || url == "" {
		return
	}

	data, contentType, err := p.client.DownloadMedia(url)
	if err != nil {
		return
	}
	if contentType == "" {
		contentType = msg.Media.MimeType
	}

	storedURL, err := p.mediaStore.UploadMedia(msg.Media.ID, data, contentType)
	if err != nil {
		return
	}

	msg.Media.URL = storedURL
}
