// Package message holds the canonical, provider-agnostic message types
// shared by the webhook, relay and server packages.
package message

// Kind tags the content type of an inbound message.
type Kind string

const (
	KindText                   Kind = "text"
	KindImage                  Kind = "image"
	KindAudio                  Kind = "audio"
	KindVideo                  Kind = "video"
	KindDocument               Kind = "document"
	KindSticker                Kind = "sticker"
	KindLocation               Kind = "location"
	KindContact                Kind = "contacts"
	KindInteractiveButtonReply Kind = "interactive_button_reply"
	KindInteractiveListReply   Kind = "interactive_list_reply"
	KindButtonReply            Kind = "button_reply"
	KindUnsupported            Kind = "unsupported"
)

// Media describes the media attachment of a media-bearing message.
type Media struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
	// URL is set by the media pipeline when the attachment was archived
	// to external storage; empty otherwise.
	URL string `json:"url,omitempty"`
}

// InteractiveSubkind distinguishes button from list replies.
type InteractiveSubkind string

const (
	SubkindButtonReply InteractiveSubkind = "button_reply"
	SubkindListReply   InteractiveSubkind = "list_reply"
)

// InteractiveReply carries the selection a user made on an interactive message.
type InteractiveReply struct {
	ID      string             `json:"id"`
	Title   string             `json:"title"`
	Subkind InteractiveSubkind `json:"subkind"`
}

// Inbound is the canonical representation of one received message.
// Text is always non-empty: for non-text kinds it holds a synthesized
// placeholder description. At most one of Media and InteractiveReply is set.
type Inbound struct {
	From            string            `json:"from"`
	SenderName      string            `json:"sender_name"`
	Text            string            `json:"text"`
	ID              string            `json:"id"`
	Timestamp       int64             `json:"timestamp"`
	Kind            Kind              `json:"kind"`
	Media           *Media            `json:"media,omitempty"`
	Interactive     *InteractiveReply `json:"interactive,omitempty"`
	QuotedMessageID string            `json:"quoted_message_id,omitempty"`
}

// StatusUpdate is a delivery-status notification for a previously sent message.
type StatusUpdate struct {
	MessageID   string `json:"message_id"`
	Status      string `json:"status"`
	RecipientID string `json:"recipient_id"`
	Timestamp   int64  `json:"timestamp"`
}

// Reply is the payload the dispatch collaborator hands back for delivery.
// Text and media are independent: a reply carrying both results in separate
// outbound sends.
type Reply struct {
	Text      string   `json:"text,omitempty"`
	MediaURL  string   `json:"media_url,omitempty"`
	MediaURLs []string `json:"media_urls,omitempty"`
}
