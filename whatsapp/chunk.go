package whatsapp

import "strings"

// MaxTextLength is the Cloud API limit for one text message body, counted
// in characters, not bytes.
const MaxTextLength = 4096

// SplitMessage breaks text into chunks of at most limit runes each.
// Chunk boundaries prefer a newline in the last half of the window, then a
// space; when neither falls in roughly the last 70% of the window the text
// is hard-split at the limit. Splits always land on rune boundaries so
// multibyte text is never corrupted. Boundary whitespace is trimmed.
func SplitMessage(text string, limit int) []string {
	runes := []rune(strings.TrimSpace(text))
	if len(runes) == 0 {
		return nil
	}

	var chunks []string
	for len(runes) > limit {
		cut := chunkBoundary(runes, limit)
		chunk := strings.TrimSpace(string(runes[:cut]))
		if chunk != "" {
			chunks = append(chunks, chunk)
		}
		runes = []rune(strings.TrimSpace(string(runes[cut:])))
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}

func chunkBoundary(runes []rune, limit int) int {
	window := runes[:limit]

	if cut := lastIndexRune(window, '\n'); cut > limit/2 {
		return cut
	}
	if cut := lastIndexRune(window, ' '); cut > limit*3/10 {
		return cut
	}
	return limit
}

func lastIndexRune(runes []rune, r rune) int {
	for i := len(runes) - 1; i >= 0; i-- {
		if runes[i] == r {
			return i
		}
	}
	return -1
}
