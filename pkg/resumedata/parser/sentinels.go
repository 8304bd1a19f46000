package parser

import "strings"

// sentinels recognizes key values that mark a header or label row rather
// than data. An empty key is always a sentinel.
type sentinels []string

func (s sentinels) match(key string) bool {
	if key == "" {
		return true
	}
	for _, label := range s {
		if label != "" && strings.EqualFold(key, label) {
			return true
		}
	}
	return false
}

// Header labels that may appear as rows inside the data.
var (
	textBlockSentinels = sentinels{"id used for finding text block"}
	ratingSentinels    = sentinels{"skill", "name of language"}
	contactSentinels   = sentinels{"id of contact section"}
	entrySentinels     = sentinels{"section"}
)

// isContactHeader reports a stray header row of the contact sheet.
func isContactHeader(icon, value string) bool {
	return strings.EqualFold(icon, "icon") && strings.EqualFold(value, "contact")
}
