package whatsapp

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplitMessage_ShortTextSingleChunk(t *testing.T) {
	testCases := []struct {
		name string
		text string
	}{
		{name: "Short", text: "Hello"},
		{name: "Exactly at limit", text: strings.Repeat("a", MaxTextLength)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			chunks := SplitMessage(tc.text, MaxTextLength)
			if len(chunks) != 1 {
				t.Fatalf("Expected 1 chunk, got %d", len(chunks))
			}
			if chunks[0] != tc.text {
				t.Errorf("Expected chunk to equal input")
			}
		})
	}
}

func TestSplitMessage_EmptyText(t *testing.T) {
	if chunks := SplitMessage("", MaxTextLength); chunks != nil {
		t.Errorf("Expected no chunks for empty text, got %d", len(chunks))
	}
	if chunks := SplitMessage("   \n  ", MaxTextLength); chunks != nil {
		t.Errorf("Expected no chunks for whitespace-only text, got %d", len(chunks))
	}
}

func TestSplitMessage_PrefersNewlineBoundary(t *testing.T) {
	first := strings.Repeat("a", 80)
	second := strings.Repeat("b", 80)
	chunks := SplitMessage(first+"\n"+second, 100)

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != first {
		t.Errorf("Expected first chunk to end at the newline")
	}
	if chunks[1] != second {
		t.Errorf("Expected second chunk to hold the remainder")
	}
}

func TestSplitMessage_FallsBackToSpaceBoundary(t *testing.T) {
	first := strings.Repeat("a", 90)
	second := strings.Repeat("b", 50)
	chunks := SplitMessage(first+" "+second, 100)

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != first {
		t.Errorf("Expected first chunk to end at the space, got %d chars", len(chunks[0]))
	}
	if chunks[1] != second {
		t.Errorf("Expected second chunk to hold the remainder")
	}
}

func TestSplitMessage_HardSplitWithoutBoundary(t *testing.T) {
	text := strings.Repeat("a", 250)
	chunks := SplitMessage(text, 100)

	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	if len(chunks[0]) != 100 || len(chunks[1]) != 100 || len(chunks[2]) != 50 {
		t.Errorf("Expected hard splits at the limit, got lengths %d/%d/%d",
			len(chunks[0]), len(chunks[1]), len(chunks[2]))
	}
}

// A space too early in the window is not a reasonable boundary; the chunk is
// hard-split instead of producing a tiny chunk.
func TestSplitMessage_IgnoresEarlyBoundary(t *testing.T) {
	text := "ab " + strings.Repeat("c", 150)
	chunks := SplitMessage(text, 100)

	if len(chunks[0]) != 100 {
		t.Errorf("Expected hard split at the limit, got first chunk of %d chars", len(chunks[0]))
	}
}

// The limit counts characters, not bytes: 2000 three-byte runes fit in one
// chunk even though they exceed the limit in bytes.
func TestSplitMessage_MultibyteCountsRunes(t *testing.T) {
	text := strings.Repeat("あ", 2000)

	chunks := SplitMessage(text, MaxTextLength)

	if len(chunks) != 1 {
		t.Fatalf("Expected 1 chunk for 2000 characters, got %d", len(chunks))
	}
	if chunks[0] != text {
		t.Errorf("Expected chunk to equal input")
	}
}

func TestSplitMessage_MultibyteHardSplitKeepsValidUTF8(t *testing.T) {
	text := strings.Repeat("あ", 5000)

	chunks := SplitMessage(text, MaxTextLength)

	if len(chunks) != 2 {
		t.Fatalf("Expected 2 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if !utf8.ValidString(chunk) {
			t.Errorf("Chunk %d is not valid UTF-8", i)
		}
		if n := utf8.RuneCountInString(chunk); n > MaxTextLength {
			t.Errorf("Chunk %d exceeds limit: %d characters", i, n)
		}
	}
	if strings.Join(chunks, "") != text {
		t.Errorf("Expected concatenated chunks to reconstruct the input")
	}
}

func TestSplitMessage_ReconstructsContent(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 500; i++ {
		b.WriteString("word word word word word")
		if i%7 == 0 {
			b.WriteString("\n")
		} else {
			b.WriteString(" ")
		}
	}
	text := strings.TrimSpace(b.String())

	chunks := SplitMessage(text, MaxTextLength)
	if len(chunks) < 2 {
		t.Fatalf("Expected multiple chunks, got %d", len(chunks))
	}

	for i, chunk := range chunks {
		if len(chunk) > MaxTextLength {
			t.Errorf("Chunk %d exceeds limit: %d chars", i, len(chunk))
		}
		if chunk != strings.TrimSpace(chunk) {
			t.Errorf("Chunk %d has boundary whitespace", i)
		}
	}

	normalize := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}
	if normalize(strings.Join(chunks, " ")) != normalize(text) {
		t.Errorf("Expected concatenated chunks to reconstruct the input up to boundary whitespace")
	}
}
