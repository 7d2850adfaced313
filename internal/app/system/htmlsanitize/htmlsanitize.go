// Package htmlsanitize cleans user-supplied text (exercise comments, link
// descriptions) so it can be rendered with light inline formatting.
package htmlsanitize

import (
	"html/template"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	policyOnce sync.Once
	policy     *bluemonday.Policy
)

func ugc() *bluemonday.Policy {
	policyOnce.Do(func() {
		policy = bluemonday.UGCPolicy()
	})
	return policy
}

// Sanitize strips scripts, event handlers, and any element or attribute not
// allowed by the user-generated-content policy.
func Sanitize(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return ugc().Sanitize(s)
}

// SanitizeToHTML is Sanitize for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
