package relay

import (
	"sync"

	"github.com/mcostantino-dev/openclaw-whatsapp-cloud-api/whatsapp"
)

// MockWhatsAppClient implements WhatsAppClientInterface for tests. Calls are
// recorded in order; results can be scripted per operation.
type MockWhatsAppClient struct {
	mu sync.Mutex

	SentTexts   []SentText
	SentMedia   []SentMedia
	MarkedRead  []string
	TextResults []whatsapp.SendResult

	MediaURL      string
	MediaContent  []byte
	MediaMimeType string
}

// SentText records one SendText or SendReply call.
type SentText struct {
	To       string
	Text     string
	QuotedID string
}

// SentMedia records one SendMedia call.
type SentMedia struct {
	To        string
	MediaType string
	Ref       whatsapp.MediaRef
}

func (m *MockWhatsAppClient) SendText(to, text string) whatsapp.SendResult {
	return m.recordText(SentText{To: to, Text: text})
}

func (m *MockWhatsAppClient) SendReply(to, text, quotedMessageID string) whatsapp.SendResult {
	return m.recordText(SentText{To: to, Text: text, QuotedID: quotedMessageID})
}

func (m *MockWhatsAppClient) recordText(sent SentText) whatsapp.SendResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentTexts = append(m.SentTexts, sent)
	if len(m.TextResults) > 0 {
		res := m.TextResults[0]
		m.TextResults = m.TextResults[1:]
		return res
	}
	return whatsapp.SendResult{OK: true, MessageID: "mock-message-id"}
}

func (m *MockWhatsAppClient) SendMedia(to, mediaType string, ref whatsapp.MediaRef) whatsapp.SendResult {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.SentMedia = append(m.SentMedia, SentMedia{To: to, MediaType: mediaType, Ref: ref})
	return whatsapp.SendResult{OK: true, MessageID: "mock-media-id"}
}

func (m *MockWhatsAppClient) MarkAsRead(messageID string, typing bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.MarkedRead = append(m.MarkedRead, messageID)
	return nil
}

func (m *MockWhatsAppClient) GetMediaURL(mediaID string) (string, error) {
	return m.MediaURL, nil
}

func (m *MockWhatsAppClient) DownloadMedia(url string) ([]byte, string, error) {
	return m.MediaContent, m.MediaMimeType, nil
}

// Texts returns a snapshot of recorded text sends.
func (m *MockWhatsAppClient) Texts() []SentText {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]SentText, len(m.SentTexts))
	copy(out, m.SentTexts)
	return out
}

// MockDedup implements DedupInterface with an in-memory set.
type MockDedup struct {
	mu   sync.Mutex
	seen map[string]bool
}

func NewMockDedup() *MockDedup {
	return &MockDedup{seen: make(map[string]bool)}
}

func (m *MockDedup) MarkSeen(messageID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.seen[messageID] {
		return true, nil
	}
	m.seen[messageID] = true
	return false, nil
}
