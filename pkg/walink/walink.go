// Package walink builds wa.me deep links for the manual send channel.
package walink

import (
	"net/url"
	"strings"

	"veggiequote/pkg/phone"
)

// DeepLink builds the wa.me link carrying the message text. When the phone
// does not normalize to a sendable number the phone segment is omitted so
// the user can pick a recipient inside their messaging client.
func DeepLink(rawPhone, message string) string {
	encoded := encodeComponent(message)
	if normalized, err := phone.Normalize(rawPhone); err == nil {
		return "https://wa.me/" + normalized + "?text=" + encoded
	}
	return "https://wa.me/?text=" + encoded
}

// encodeComponent mirrors JS encodeURIComponent: spaces become %20, not +,
// so the text survives the wa.me redirect intact. QueryEscape additionally
// percent-encodes *!'() which encodeURIComponent leaves literal; wa.me
// decodes both forms identically, so the stricter escaping is fine.
func encodeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
