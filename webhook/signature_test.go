package webhook

import (
	"strings"
	"testing"
)

func TestVerifySignature_Roundtrip(t *testing.T) {
	body := []byte(`{"object":"whatsapp_business_account","entry":[]}`)
	secret := "test-secret"

	header := Sign(body, secret)

	if !strings.HasPrefix(header, "sha256=") {
		t.Fatalf("Expected sha256= prefix, got %q", header)
	}
	if !VerifySignature(body, header, secret) {
		t.Errorf("Expected signature to verify for the signed body")
	}
}

func TestVerifySignature_MutatedBody(t *testing.T) {
	body := []byte("payload-bytes-to-sign")
	secret := "test-secret"
	header := Sign(body, secret)

	for i := range body {
		mutated := make([]byte, len(body))
		copy(mutated, body)
		mutated[i] ^= 0x01

		if VerifySignature(mutated, header, secret) {
			t.Errorf("Expected verification to fail after mutating byte %d", i)
		}
	}
}

func TestVerifySignature_Rejections(t *testing.T) {
	body := []byte("body")
	secret := "secret"
	valid := Sign(body, secret)

	testCases := []struct {
		name   string
		body   []byte
		header string
		secret string
	}{
		{name: "Empty secret", body: body, header: valid, secret: ""},
		{name: "Missing header", body: body, header: "", secret: secret},
		{name: "Missing prefix", body: body, header: strings.TrimPrefix(valid, "sha256="), secret: secret},
		{name: "Invalid hex", body: body, header: "sha256=zznothex", secret: secret},
		{name: "Truncated digest", body: body, header: valid[:len(valid)-2], secret: secret},
		{name: "Wrong secret", body: body, header: valid, secret: "other-secret"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if VerifySignature(tc.body, tc.header, tc.secret) {
				t.Errorf("Expected verification to fail")
			}
		})
	}
}

// Equal-length forgeries must be rejected regardless of where the first
// differing byte sits; the comparator is constant-time.
func TestVerifySignature_EqualLengthForgeries(t *testing.T) {
	body := []byte("body")
	secret := "secret"
	valid := Sign(body, secret)
	digest := strings.TrimPrefix(valid, "sha256=")

	flip := func(c byte) byte {
		if c == '0' {
			return '1'
		}
		return '0'
	}

	earlyDiff := "sha256=" + string(flip(digest[0])) + digest[1:]
	lateDiff := "sha256=" + digest[:len(digest)-1] + string(flip(digest[len(digest)-1]))

	if VerifySignature(body, earlyDiff, secret) {
		t.Errorf("Expected early-diff forgery to be rejected")
	}
	if VerifySignature(body, lateDiff, secret) {
		t.Errorf("Expected late-diff forgery to be rejected")
	}
}
