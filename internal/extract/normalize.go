package extract

import "strings"

const fence = "```"

// NormalizeResponse strips surrounding whitespace and a wrapping code fence,
// including its language tag, from a model reply.
func NormalizeResponse(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, fence) {
		return text
	}

	body := strings.TrimLeft(text, "`")
	if nl := strings.IndexByte(body, '\n'); nl >= 0 {
		if tag := strings.TrimSpace(body[:nl]); isLanguageTag(tag) {
			body = body[nl+1:]
		}
	} else {
		body = strings.TrimPrefix(body, "json")
	}

	body = strings.TrimSpace(body)
	body = strings.TrimRight(body, "`")
	return strings.TrimSpace(body)
}

func isLanguageTag(value string) bool {
	if value == "" {
		return true
	}
	for _, r := range value {
		if !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '-' || r == '_') {
			return false
		}
	}
	return true
}
