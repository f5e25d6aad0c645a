package webhook

// Meta-standard WhatsApp Cloud API webhook types.

// Payload is the top-level webhook delivery.
type Payload struct {
	Object string  `json:"object"`
	Entry  []Entry `json:"entry"`
}

// Entry represents one business account entry.
type Entry struct {
	ID      string   `json:"id"`
	Changes []Change `json:"changes"`
}

// Change wraps a single change notification.
type Change struct {
	Field string `json:"field"`
	Value Value  `json:"value"`
}

// Value holds the message data of a change.
type Value struct {
	MessagingProduct string        `json:"messaging_product"`
	Metadata         Metadata      `json:"metadata"`
	Contacts         []Contact     `json:"contacts,omitempty"`
	Messages         []Message     `json:"messages,omitempty"`
	Statuses         []Status      `json:"statuses,omitempty"`
	Errors           []ErrorDetail `json:"errors,omitempty"`
}

// Metadata about the receiving phone number.
type Metadata struct {
	DisplayPhoneNumber string `json:"display_phone_number"`
	PhoneNumberID      string `json:"phone_number_id"`
}

// Contact maps a sender id to a profile name.
type Contact struct {
	Profile ContactProfile `json:"profile"`
	WaID    string         `json:"wa_id"`
}

// ContactProfile has the display name.
type ContactProfile struct {
	Name string `json:"name"`
}

// Message represents one incoming message of any type.
type Message struct {
	From        string          `json:"from"`
	ID          string          `json:"id"`
	Timestamp   string          `json:"timestamp"`
	Type        string          `json:"type"`
	Text        *TextContent    `json:"text,omitempty"`
	Image       *MediaContent   `json:"image,omitempty"`
	Audio       *MediaContent   `json:"audio,omitempty"`
	Video       *MediaContent   `json:"video,omitempty"`
	Document    *MediaContent   `json:"document,omitempty"`
	Sticker     *MediaContent   `json:"sticker,omitempty"`
	Location    *Location       `json:"location,omitempty"`
	Contacts    []SharedContact `json:"contacts,omitempty"`
	Interactive *Interactive    `json:"interactive,omitempty"`
	Button      *Button         `json:"button,omitempty"`
	Context     *Context        `json:"context,omitempty"`
	Errors      []ErrorDetail   `json:"errors,omitempty"`
}

// TextContent holds a text message body.
type TextContent struct {
	Body string `json:"body"`
}

// MediaContent is shared by image, audio, video, document and sticker messages.
type MediaContent struct {
	ID       string `json:"id"`
	MimeType string `json:"mime_type"`
	SHA256   string `json:"sha256,omitempty"`
	Caption  string `json:"caption,omitempty"`
	Filename string `json:"filename,omitempty"`
}

// Location is a shared pin or live location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Name      string  `json:"name,omitempty"`
	Address   string  `json:"address,omitempty"`
}

// SharedContact is a contact card forwarded inside a message.
type SharedContact struct {
	Name SharedContactName `json:"name"`
}

// SharedContactName carries the display form of a shared contact.
type SharedContactName struct {
	FormattedName string `json:"formatted_name"`
}

// Interactive is the user's selection on an interactive message.
type Interactive struct {
	Type        string       `json:"type"`
	ButtonReply *ReplyOption `json:"button_reply,omitempty"`
	ListReply   *ReplyOption `json:"list_reply,omitempty"`
}

// ReplyOption identifies the chosen button or list row.
type ReplyOption struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Button is a quick-reply button press on a template message.
type Button struct {
	Text    string `json:"text"`
	Payload string `json:"payload"`
}

// Context references the message this one replies to.
type Context struct {
	From string `json:"from"`
	ID   string `json:"id"`
}

// Status represents a message delivery status update.
type Status struct {
	ID          string `json:"id"`
	Status      string `json:"status"`
	Timestamp   string `json:"timestamp"`
	RecipientID string `json:"recipient_id"`
}

// ErrorDetail is an error object embedded in a webhook delivery.
type ErrorDetail struct {
	Code    int    `json:"code"`
	Title   string `json:"title"`
	Message string `json:"message,omitempty"`
	Details string `json:"error_data,omitempty"`
}
