package whatsapp

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

type fakeGraph struct {
	server   *httptest.Server
	requests []recordedRequest
	status   int
	response string
}

func newFakeGraph(t *testing.T) *fakeGraph {
	t.Helper()

	fake := &fakeGraph{
		status:   http.StatusOK,
		response: `{"messaging_product": "whatsapp", "messages": [{"id": "wamid.sent"}]}`,
	}

	fake.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var decoded map[string]any
		json.Unmarshal(body, &decoded)

		fake.requests = append(fake.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Body:   decoded,
		})

		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Expected bearer auth header, got %q", auth)
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(fake.status)
		w.Write([]byte(fake.response))
	}))
	t.Cleanup(fake.server.Close)

	return fake
}

func (f *fakeGraph) client() Client {
	return NewClient("test-token", f.server.URL, "v19.0", "123456", http.Client{})
}

func TestSendText_SingleChunk(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	res := client.SendText("393491234567", "Hello!")

	if !res.OK {
		t.Fatalf("Expected send to succeed, got error %q", res.Error)
	}
	if res.MessageID != "wamid.sent" {
		t.Errorf("Expected message id wamid.sent, got %q", res.MessageID)
	}
	if len(fake.requests) != 1 {
		t.Fatalf("Expected 1 request, got %d", len(fake.requests))
	}

	req := fake.requests[0]
	if req.Path != "/v19.0/123456/messages" {
		t.Errorf("Expected versioned messages path, got %q", req.Path)
	}
	if req.Body["type"] != "text" {
		t.Errorf("Expected type text, got %v", req.Body["type"])
	}
	text := req.Body["text"].(map[string]any)
	if text["body"] != "Hello!" {
		t.Errorf("Expected body Hello!, got %v", text["body"])
	}
}

func TestSendText_ChunksLongText(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	long := strings.Repeat("a", MaxTextLength) + " " + strings.Repeat("b", 100)
	res := client.SendText("393491234567", long)

	if !res.OK {
		t.Fatalf("Expected send to succeed, got error %q", res.Error)
	}
	if len(fake.requests) != 2 {
		t.Fatalf("Expected 2 chunk requests, got %d", len(fake.requests))
	}
}

func TestSendText_FirstFailureAborts(t *testing.T) {
	fake := newFakeGraph(t)
	fake.status = http.StatusBadRequest
	fake.response = `{"error": {"message": "Recipient not available", "type": "OAuthException", "code": 131026}}`
	client := fake.client()

	long := strings.Repeat("a", MaxTextLength) + " " + strings.Repeat("b", 100)
	res := client.SendText("393491234567", long)

	if res.OK {
		t.Fatalf("Expected send to fail")
	}
	if res.Error != "Recipient not available" {
		t.Errorf("Expected remote error message, got %q", res.Error)
	}
	if len(fake.requests) != 1 {
		t.Errorf("Expected remaining chunks to be aborted, got %d requests", len(fake.requests))
	}
}

func TestSendText_UnparseableErrorBody(t *testing.T) {
	fake := newFakeGraph(t)
	fake.status = http.StatusInternalServerError
	fake.response = "<html>gateway error</html>"
	client := fake.client()

	res := client.SendText("393491234567", "hi")

	if res.OK {
		t.Fatalf("Expected send to fail")
	}
	if res.Error != "HTTP 500" {
		t.Errorf("Expected generic HTTP status error, got %q", res.Error)
	}
}

func TestSendText_NetworkFailureReturnsResult(t *testing.T) {
	client := NewClient("test-token", "http://127.0.0.1:1", "v19.0", "123456", http.Client{})

	res := client.SendText("393491234567", "hi")

	if res.OK {
		t.Fatalf("Expected send to fail")
	}
	if res.Error == "" {
		t.Errorf("Expected a transport error message")
	}
}

func TestSendReply_AttachesContext(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	res := client.SendReply("393491234567", "threaded", "wamid.prev")

	if !res.OK {
		t.Fatalf("Expected send to succeed, got error %q", res.Error)
	}
	ctx, ok := fake.requests[0].Body["context"].(map[string]any)
	if !ok {
		t.Fatalf("Expected context on reply request")
	}
	if ctx["message_id"] != "wamid.prev" {
		t.Errorf("Expected context message id wamid.prev, got %v", ctx["message_id"])
	}
}

func TestSendTemplate(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	res := client.SendTemplate("393491234567", "order_update", "en_US", []TemplateComponent{
		{Type: "body", Parameters: []TemplateParameter{{Type: "text", Text: "Mario"}}},
	})

	if !res.OK {
		t.Fatalf("Expected send to succeed, got error %q", res.Error)
	}

	body := fake.requests[0].Body
	if body["type"] != "template" {
		t.Errorf("Expected type template, got %v", body["type"])
	}
	template := body["template"].(map[string]any)
	if template["name"] != "order_update" {
		t.Errorf("Expected template name order_update, got %v", template["name"])
	}
	language := template["language"].(map[string]any)
	if language["code"] != "en_US" {
		t.Errorf("Expected language en_US, got %v", language["code"])
	}
}

func TestSendButtons_TruncatesButtons(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	res := client.SendButtons("393491234567", "Pick one", []ButtonReply{
		{ID: "1", Title: "First"},
		{ID: "2", Title: "This title is definitely longer than twenty characters"},
		{ID: "3", Title: "Third"},
		{ID: "4", Title: "Dropped"},
	})

	if !res.OK {
		t.Fatalf("Expected send to succeed, got error %q", res.Error)
	}

	interactive := fake.requests[0].Body["interactive"].(map[string]any)
	if interactive["type"] != "button" {
		t.Errorf("Expected interactive type button, got %v", interactive["type"])
	}
	action := interactive["action"].(map[string]any)
	buttons := action["buttons"].([]any)

	if len(buttons) != 3 {
		t.Fatalf("Expected 3 buttons, got %d", len(buttons))
	}

	second := buttons[1].(map[string]any)["reply"].(map[string]any)
	title := second["title"].(string)
	if len(title) != 20 {
		t.Errorf("Expected title truncated to 20 characters, got %d (%q)", len(title), title)
	}
	if title != "This title is defini" {
		t.Errorf("Expected truncated prefix, got %q", title)
	}
}

// Button titles are limited in characters, not bytes: a short multibyte
// title passes through untouched and a long one is cut on a rune boundary.
func TestSendButtons_MultibyteTitles(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	short := strings.Repeat("あ", 10)
	long := strings.Repeat("あ", 25)

	res := client.SendButtons("393491234567", "Pick one", []ButtonReply{
		{ID: "1", Title: short},
		{ID: "2", Title: long},
	})

	if !res.OK {
		t.Fatalf("Expected send to succeed, got error %q", res.Error)
	}

	interactive := fake.requests[0].Body["interactive"].(map[string]any)
	action := interactive["action"].(map[string]any)
	buttons := action["buttons"].([]any)

	first := buttons[0].(map[string]any)["reply"].(map[string]any)["title"].(string)
	if first != short {
		t.Errorf("Expected 10-character title to pass through untouched, got %q", first)
	}

	second := buttons[1].(map[string]any)["reply"].(map[string]any)["title"].(string)
	if !utf8.ValidString(second) {
		t.Errorf("Expected truncated title to remain valid UTF-8")
	}
	if second != strings.Repeat("あ", 20) {
		t.Errorf("Expected title truncated to 20 characters, got %q", second)
	}
}

func TestSendMedia(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	res := client.SendMedia("393491234567", "image", MediaRef{
		Link:    "https://example.com/pic.jpg",
		Caption: "look",
	})

	if !res.OK {
		t.Fatalf("Expected send to succeed, got error %q", res.Error)
	}

	body := fake.requests[0].Body
	if body["type"] != "image" {
		t.Errorf("Expected type image, got %v", body["type"])
	}
	image := body["image"].(map[string]any)
	if image["link"] != "https://example.com/pic.jpg" {
		t.Errorf("Expected media link, got %v", image["link"])
	}
	if image["caption"] != "look" {
		t.Errorf("Expected caption, got %v", image["caption"])
	}
}

func TestSendMedia_UnsupportedType(t *testing.T) {
	fake := newFakeGraph(t)
	client := fake.client()

	res := client.SendMedia("393491234567", "hologram", MediaRef{Link: "https://example.com/x"})

	if res.OK {
		t.Fatalf("Expected unsupported media type to fail")
	}
	if len(fake.requests) != 0 {
		t.Errorf("Expected no request for unsupported media type")
	}
}

func TestMarkAsRead(t *testing.T) {
	fake := newFakeGraph(t)
	fake.response = `{"success": true}`
	client := fake.client()

	if err := client.MarkAsRead("wamid.abc", true); err != nil {
		t.Fatalf("Expected mark as read to succeed, got %v", err)
	}

	body := fake.requests[0].Body
	if body["status"] != "read" {
		t.Errorf("Expected status read, got %v", body["status"])
	}
	if body["message_id"] != "wamid.abc" {
		t.Errorf("Expected message id wamid.abc, got %v", body["message_id"])
	}
	if _, ok := body["typing_indicator"]; !ok {
		t.Errorf("Expected typing indicator to be attached")
	}
}

func TestGetMediaURL(t *testing.T) {
	fake := newFakeGraph(t)
	fake.response = `{"url": "https://lookaside.example.com/media/abc", "mime_type": "image/jpeg", "id": "media-1"}`
	client := fake.client()

	url, err := client.GetMediaURL("media-1")
	if err != nil {
		t.Fatalf("Expected media URL lookup to succeed, got %v", err)
	}
	if url != "https://lookaside.example.com/media/abc" {
		t.Errorf("Expected lookaside URL, got %q", url)
	}
	if fake.requests[0].Path != "/v19.0/media-1" {
		t.Errorf("Expected media path, got %q", fake.requests[0].Path)
	}
}

func TestGetMediaURL_Failure(t *testing.T) {
	fake := newFakeGraph(t)
	fake.status = http.StatusNotFound
	fake.response = `{"error": {"message": "Unknown media"}}`
	client := fake.client()

	url, err := client.GetMediaURL("media-404")
	if err == nil {
		t.Fatalf("Expected media URL lookup to fail")
	}
	if url != "" {
		t.Errorf("Expected empty URL on failure, got %q", url)
	}
}

func TestDownloadMedia(t *testing.T) {
	content := []byte("binary-bytes")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if auth := r.Header.Get("Authorization"); auth != "Bearer test-token" {
			t.Errorf("Expected bearer auth on media download, got %q", auth)
		}
		w.Header().Set("Content-Type", "image/jpeg")
		w.Write(content)
	}))
	defer srv.Close()

	client := NewClient("test-token", srv.URL, "v19.0", "123456", http.Client{})

	data, mimeType, err := client.DownloadMedia(srv.URL + "/media/abc")
	if err != nil {
		t.Fatalf("Expected download to succeed, got %v", err)
	}
	if string(data) != string(content) {
		t.Errorf("Expected downloaded bytes to match")
	}
	if mimeType != "image/jpeg" {
		t.Errorf("Expected mime type image/jpeg, got %q", mimeType)
	}
}
