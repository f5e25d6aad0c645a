package webhook

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/message"
)

// expectedObject is the top-level discriminator of Cloud API webhook payloads.
const expectedObject = "whatsapp_business_account"

// messagesField marks the change notifications this relay processes.
const messagesField = "messages"

// ParsePayload decodes a raw webhook body.
func ParsePayload(body []byte) (*Payload, error) {
	var payload Payload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse webhook payload: %w", err)
	}
	return &payload, nil
}

// Normalize walks a webhook payload and extracts canonical inbound messages
// and delivery-status updates. Payloads for other objects and changes for
// other fields are ignored. The function is total over well-formed payloads:
// missing optional fields degrade to placeholder text, never to an error.
func Normalize(payload *Payload) ([]message.Inbound, []message.StatusUpdate) {
	if payload == nil {
		return nil, nil
	}
	if payload.Object != expectedObject {
		log.Debug().Str("object", payload.Object).Msg("Ignoring webhook for unexpected object")
		return nil, nil
	}

	var messages []message.Inbound
	var statuses []message.StatusUpdate

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			if change.Field != messagesField {
				log.Debug().Str("field", change.Field).Msg("Ignoring webhook change for unexpected field")
				continue
			}

			for _, e := range change.Value.Errors {
				log.Warn().
					Int("code", e.Code).
					Str("title", e.Title).
					Str("detail", e.Message).
					Msg("Webhook delivery carried an error object")
			}

			for _, status := range change.Value.Statuses {
				statuses = append(statuses, message.StatusUpdate{
					MessageID:   status.ID,
					Status:      status.Status,
					RecipientID: status.RecipientID,
					Timestamp:   parseTimestamp(status.Timestamp),
				})
			}

			for _, msg := range change.Value.Messages {
				messages = append(messages, normalizeMessage(msg, change.Value.Contacts))
			}
		}
	}

	return messages, statuses
}

func normalizeMessage(msg Message, contacts []Contact) message.Inbound {
	inbound := message.Inbound{
		From:       msg.From,
		SenderName: senderName(msg.From, contacts),
		ID:         msg.ID,
		Timestamp:  parseTimestamp(msg.Timestamp),
	}
	if msg.Context != nil {
		inbound.QuotedMessageID = msg.Context.ID
	}

	switch msg.Type {
	case "text":
		inbound.Kind = message.KindText
		if msg.Text != nil {
			inbound.Text = msg.Text.Body
		}
		if inbound.Text == "" {
			inbound.Text = "[Empty message]"
		}
	case "image":
		inbound.Kind = message.KindImage
		inbound.Text, inbound.Media = mediaText(msg.Image, "[Image]")
	case "audio":
		inbound.Kind = message.KindAudio
		inbound.Text, inbound.Media = mediaText(msg.Audio, "[Audio message]")
	case "video":
		inbound.Kind = message.KindVideo
		inbound.Text, inbound.Media = mediaText(msg.Video, "[Video]")
	case "document":
		inbound.Kind = message.KindDocument
		filename := "file"
		if msg.Document != nil && msg.Document.Filename != "" {
			filename = msg.Document.Filename
		}
		inbound.Text, inbound.Media = mediaText(msg.Document, "[Document: "+filename+"]")
	case "sticker":
		inbound.Kind = message.KindSticker
		inbound.Text, inbound.Media = mediaText(msg.Sticker, "[Sticker]")
	case "location":
		inbound.Kind = message.KindLocation
		inbound.Text = locationText(msg.Location)
	case "contacts":
		inbound.Kind = message.KindContact
		inbound.Text = contactsText(msg.Contacts)
	case "interactive":
		inbound.Kind, inbound.Text, inbound.Interactive = interactiveReply(msg.Interactive)
	case "button":
		inbound.Kind = message.KindButtonReply
		if msg.Button != nil {
			inbound.Text = msg.Button.Text
			inbound.Interactive = &message.InteractiveReply{
				ID:      msg.Button.Payload,
				Title:   msg.Button.Text,
				Subkind: message.SubkindButtonReply,
			}
		}
	default:
		inbound.Kind = message.KindUnsupported
	}

	if inbound.Text == "" {
		inbound.Text = unsupportedText(msg.Type)
	}

	return inbound
}

func senderName(from string, contacts []Contact) string {
	for _, contact := range contacts {
		if contact.WaID == from && contact.Profile.Name != "" {
			return contact.Profile.Name
		}
	}
	return from
}

func mediaText(content *MediaContent, placeholder string) (string, *message.Media) {
	if content == nil {
		return placeholder, nil
	}
	media := &message.Media{
		ID:       content.ID,
		MimeType: content.MimeType,
		Caption:  content.Caption,
		Filename: content.Filename,
	}
	if content.Caption != "" {
		return content.Caption, media
	}
	return placeholder, media
}

func locationText(loc *Location) string {
	if loc == nil {
		return "[Location]"
	}
	place := loc.Address
	if place == "" {
		place = strconv.FormatFloat(loc.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(loc.Longitude, 'f', -1, 64)
	}
	return "[Location: " + strings.TrimSpace(loc.Name+" "+place) + "]"
}

func contactsText(contacts []SharedContact) string {
	names := make([]string, 0, len(contacts))
	for _, contact := range contacts {
		if contact.Name.FormattedName != "" {
			names = append(names, contact.Name.FormattedName)
		}
	}
	return "[Contact: " + strings.Join(names, ", ") + "]"
}

func interactiveReply(interactive *Interactive) (message.Kind, string, *message.InteractiveReply) {
	if interactive == nil {
		return message.KindUnsupported, "", nil
	}
	if interactive.ListReply != nil {
		return message.KindInteractiveListReply, interactive.ListReply.Title, &message.InteractiveReply{
			ID:      interactive.ListReply.ID,
			Title:   interactive.ListReply.Title,
			Subkind: message.SubkindListReply,
		}
	}
	if interactive.ButtonReply != nil {
		return message.KindInteractiveButtonReply, interactive.ButtonReply.Title, &message.InteractiveReply{
			ID:      interactive.ButtonReply.ID,
			Title:   interactive.ButtonReply.Title,
			Subkind: message.SubkindButtonReply,
		}
	}
	return message.KindUnsupported, "", nil
}

func unsupportedText(kind string) string {
	if kind == "" {
		kind = "unknown"
	}
	return "[" + kind + " message — not yet supported]"
}

func parseTimestamp(value string) int64 {
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0
	}
	return ts
}
