package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"

	whatsappcloud "github.com/mcostantino-dev/openclaw-whatsapp-cloud-api"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/message"
	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/relay"
)

// echoDispatcher is a stand-in for a real agent dispatcher: it echoes text
// back and acknowledges media.
func echoDispatcher(ctx context.Context, msg message.Inbound, deliver relay.DeliverFunc) error {
	log.Info().
		Str("from", msg.From).
		Str("sender", msg.SenderName).
		Str("kind", string(msg.Kind)).
		Str("text", msg.Text).
		Msg("Dispatching inbound message")

	reply := message.Reply{Text: "You said: " + msg.Text}
	if strings.HasPrefix(msg.Text, "[") {
		reply.Text = "Received " + msg.Text
	}

	deliver(reply)
	return nil
}

func main() {
	channel, err := whatsappcloud.New(whatsappcloud.Options{
		Dispatcher: echoDispatcher,
		StatusHandler: func(status message.StatusUpdate) {
			log.Debug().
				Str("message_id", status.MessageID).
				Str("status", status.Status).
				Msg("Delivery status update")
		},
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create WhatsApp channel")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := channel.Start(ctx); err != nil && ctx.Err() == nil {
		log.Fatal().Err(err).Msg("Webhook gateway failed")
	}
}
