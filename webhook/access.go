package webhook

import "strings"

// PolicyMode selects how inbound senders are filtered.
type PolicyMode string

const (
	PolicyOpen      PolicyMode = "open"
	PolicyAllowlist PolicyMode = "allowlist"
)

// Policy is the access-control configuration for inbound messages.
type Policy struct {
	Mode      PolicyMode
	AllowFrom []string
}

// Allowed reports whether a sender may be processed under the policy.
// Phone numbers arrive in inconsistent formats, so allowlist matching
// compares digit-only forms: "+39 349 123 4567" matches "393491234567".
func Allowed(senderID string, policy Policy) bool {
	if policy.Mode != PolicyAllowlist {
		return true
	}

	sender := digitsOnly(senderID)
	for _, entry := range policy.AllowFrom {
		if digitsOnly(entry) == sender {
			return true
		}
	}
	return false
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
