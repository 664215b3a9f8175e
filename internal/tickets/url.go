package tickets

import "strings"

// URL renders a ticket link from a base URL template. A "{ticket}"
// placeholder is substituted; without one the key is appended.
// An empty template returns the bare key.
func URL(template, key string) string {
	if template == "" {
		return key
	}
	if strings.Contains(template, "{ticket}") {
		return strings.ReplaceAll(template, "{ticket}", key)
	}
	return template + key
}
