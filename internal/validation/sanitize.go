package validation

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var policy = bluemonday.StrictPolicy()

// Clean strips markup from free-text input and trims surrounding
// whitespace. Applied to username and email before they reach the store.
func Clean(s string) string {
	return strings.TrimSpace(policy.Sanitize(s))
}
