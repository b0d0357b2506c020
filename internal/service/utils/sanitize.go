package utils

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strictPolicy = bluemonday.StrictPolicy()

// SanitizeText strips any markup from user-supplied free text fields
// (restaurant names, addresses) before they reach storage.
func SanitizeText(text string) string {
	return strings.TrimSpace(strictPolicy.Sanitize(text))
}
