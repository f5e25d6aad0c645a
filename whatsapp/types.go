package whatsapp

// Config holds the Cloud API credentials and addressing for one account.
type Config struct {
	AccessToken   string
	BaseURL       string
	APIVersion    string
	PhoneNumberID string
}

// SendResult is the terminal outcome of one outbound call. Remote failures
// are reported here as values, never as panics or errors to catch.
type SendResult struct {
	OK        bool
	MessageID string
	Error     string
}

const (
	messagingProduct = "whatsapp"
	recipientTypeDM  = "individual"
)

type messageRequest struct {
	MessagingProduct string           `json:"messaging_product"`
	RecipientType    string           `json:"recipient_type,omitempty"`
	To               string           `json:"to,omitempty"`
	Type             string           `json:"type,omitempty"`
	Text             *textBody        `json:"text,omitempty"`
	Template         *templateBody    `json:"template,omitempty"`
	Interactive      *Interactive     `json:"interactive,omitempty"`
	Image            *mediaBody       `json:"image,omitempty"`
	Audio            *mediaBody       `json:"audio,omitempty"`
	Video            *mediaBody       `json:"video,omitempty"`
	Document         *mediaBody       `json:"document,omitempty"`
	Sticker          *mediaBody       `json:"sticker,omitempty"`
	Context          *messageContext  `json:"context,omitempty"`
	Status           string           `json:"status,omitempty"`
	MessageID        string           `json:"message_id,omitempty"`
	TypingIndicator  *typingIndicator `json:"typing_indicator,omitempty"`
}

type textBody struct {
	Body       string `json:"body"`
	PreviewURL bool   `json:"preview_url,omitempty"`
}

type templateBody struct {
	Name       string              `json:"name"`
	Language   templateLanguage    `json:"language"`
	Components []TemplateComponent `json:"components,omitempty"`
}

type templateLanguage struct {
	Code string `json:"code"`
}

// TemplateComponent parameterizes one section of a message template.
type TemplateComponent struct {
	Type       string              `json:"type"`
	SubType    string              `json:"sub_type,omitempty"`
	Index      string              `json:"index,omitempty"`
	Parameters []TemplateParameter `json:"parameters,omitempty"`
}

// TemplateParameter is a single template placeholder value.
type TemplateParameter struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// Interactive is the payload of an interactive message (buttons or list).
type Interactive struct {
	Type   string             `json:"type"`
	Header *InteractiveHeader `json:"header,omitempty"`
	Body   *InteractiveBody   `json:"body,omitempty"`
	Footer *InteractiveBody   `json:"footer,omitempty"`
	Action *InteractiveAction `json:"action,omitempty"`
}

// InteractiveHeader is the optional header section.
type InteractiveHeader struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

// InteractiveBody carries the body or footer text.
type InteractiveBody struct {
	Text string `json:"text"`
}

// InteractiveAction holds the buttons or list sections.
type InteractiveAction struct {
	Button   string              `json:"button,omitempty"`
	Buttons  []InteractiveButton `json:"buttons,omitempty"`
	Sections []ListSection       `json:"sections,omitempty"`
}

// InteractiveButton is one reply button.
type InteractiveButton struct {
	Type  string      `json:"type"`
	Reply ButtonReply `json:"reply"`
}

// ButtonReply identifies a reply button.
type ButtonReply struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// ListSection groups list rows under a title.
type ListSection struct {
	Title string    `json:"title,omitempty"`
	Rows  []ListRow `json:"rows"`
}

// ListRow is one selectable row of a list message.
type ListRow struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
}

type messageContext struct {
	MessageID string `json:"message_id"`
}

type typingIndicator struct {
	Type string `json:"type"`
}

// MessageResponse is the Cloud API reply to a successful send.
type MessageResponse struct {
	MessagingProduct string `json:"messaging_product"`
	Contacts         []struct {
		Input string `json:"input"`
		WaID  string `json:"wa_id"`
	} `json:"contacts"`
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}

// MessageID returns the id of the first sent message, if any.
func (r *MessageResponse) MessageID() string {
	if r == nil || len(r.Messages) == 0 {
		return ""
	}
	return r.Messages[0].ID
}

type errorResponse struct {
	Error struct {
		Message   string `json:"message"`
		Type      string `json:"type"`
		Code      int    `json:"code"`
		Subcode   int    `json:"error_subcode"`
		FBTraceID string `json:"fbtrace_id"`
	} `json:"error"`
}

type mediaURLResponse struct {
	URL      string `json:"url"`
	MimeType string `json:"mime_type"`
	SHA256   string `json:"sha256"`
	FileSize int64  `json:"file_size"`
	ID       string `json:"id"`
}
