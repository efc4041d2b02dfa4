// Package sanitize strips markup from user supplied free text.
package sanitize

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// maxTextPasses bounds how often escaped markup may be peeled off.
const maxTextPasses = 8

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// Text removes every HTML element from raw and returns the remaining
// text. Input without markup is returned unchanged, whitespace included.
// Markup that only appears once entities are unescaped is removed as
// well, so Text(Text(s)) == Text(s).
func Text(raw string) string {
	out := raw
	for pass := 0; strings.ContainsRune(out, '<'); pass++ {
		if pass == maxTextPasses {
			return strings.NewReplacer("<", "", ">", "").Replace(out)
		}
		next := html.UnescapeString(textSanitizer().Sanitize(out))
		if next == out {
			break
		}
		out = next
	}
	return out
}

// Texts applies Text to every item of values.
func Texts(values []string) []string {
	if values == nil {
		return nil
	}
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = Text(v)
	}
	return out
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
