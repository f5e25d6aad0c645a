// Package whatsappcloud wires the WhatsApp Cloud API webhook relay: it
// accepts provider webhooks, authenticates and normalizes them, and forwards
// canonical messages to an external dispatcher whose replies are delivered
// back through the Cloud API.
package whatsappcloud

import (
	"context"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/aws"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/config"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/redis"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/relay"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/server"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/webhook"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/whatsapp"
)

// Options configures the collaborators of a Channel.
type Options struct {
	// Dispatcher receives every accepted inbound message. Required.
	Dispatcher relay.Dispatcher
	// StatusHandler receives delivery-status updates. Optional.
	StatusHandler relay.StatusHandler
}

// Channel is one configured WhatsApp Cloud API account: an inbound webhook
// gateway plus the outbound client, usable independently for proactive sends.
type Channel struct {
	config    *config.Config
	client    whatsapp.Client
	processor *relay.Processor
	server    *server.Server
}

// New loads configuration from the environment and wires every component.
// Running without an app secret disables signature verification and is
// refused unless ALLOW_INSECURE_WEBHOOKS is set.
func New(opts Options) (*Channel, error) {
	if opts.Dispatcher == nil {
		return nil, errors.New("a dispatcher is required")
	}

	cfg := config.Load()

	if cfg.AppSecret == "" {
		if !cfg.AllowInsecureWebhooks {
			return nil, errors.New("WHATSAPP_APP_SECRET is not set; refusing to start without webhook signature verification (set ALLOW_INSECURE_WEBHOOKS=true to override)")
		}
		log.Warn().Msg("Running without webhook signature verification, do not use in production")
	}

	httpClient := http.Client{}

	client := whatsapp.NewClient(
		cfg.AccessToken,
		cfg.GraphBaseURL,
		cfg.APIVersion,
		cfg.PhoneNumberID,
		httpClient,
	)

	relayOpts := relay.Options{
		StatusHandler: opts.StatusHandler,
		AppSecret:     cfg.AppSecret,
		Policy: webhook.Policy{
			Mode:      webhook.PolicyMode(cfg.DMPolicy),
			AllowFrom: cfg.AllowFrom,
		},
		SendReadReceipts: cfg.SendReadReceipts,
	}

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		relayOpts.Dedup = &redisClient
	}

	if cfg.S3Bucket != "" {
		relayOpts.MediaStore = aws.NewClient(cfg.S3Region, cfg.S3Bucket)
	}

	processor := relay.NewProcessor(&client, opts.Dispatcher, relayOpts)
	srv := server.New(processor, cfg.WebhookPath, cfg.VerifyToken)

	return &Channel{
		config:    cfg,
		client:    client,
		processor: processor,
		server:    srv,
	}, nil
}

// Start runs the webhook gateway until the context is cancelled or the
// listener fails.
func (ch *Channel) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- ch.server.Start(ch.config.Port)
	}()

	select {
	case <-ctx.Done():
		if err := ch.server.Shutdown(); err != nil {
			log.Error().Err(err).Msg("Error shutting down webhook gateway")
		}
		return ctx.Err()
	case err := <-errCh:
		return err
	}
}

// Stop shuts down the webhook gateway.
func (ch *Channel) Stop() error {
	return ch.server.Shutdown()
}

// SendText sends a proactive text message, independent of the listener.
func (ch *Channel) SendText(to, text string) whatsapp.SendResult {
	return ch.client.SendText(to, text)
}

// SendTemplate sends a pre-approved message template, the only message type
// allowed outside the provider's reply window.
func (ch *Channel) SendTemplate(to, templateName, languageCode string, components []whatsapp.TemplateComponent) whatsapp.SendResult {
	return ch.client.SendTemplate(to, templateName, languageCode, components)
}

// SendButtons sends an interactive reply-button message.
func (ch *Channel) SendButtons(to, bodyText string, buttons []whatsapp.ButtonReply) whatsapp.SendResult {
	return ch.client.SendButtons(to, bodyText, buttons)
}

// SendMedia sends a media message from a URL or an uploaded media id.
func (ch *Channel) SendMedia(to, mediaType string, ref whatsapp.MediaRef) whatsapp.SendResult {
	return ch.client.SendMedia(to, mediaType, ref)
}

// Client exposes the underlying Cloud API client.
func (ch *Channel) Client() *whatsapp.Client {
	return &ch.client
}
