// Package htmlsanitize cleans record text that comes from the external data
// service before it reaches a template.
package htmlsanitize

import (
	"html"
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	// ugc allows the formatting subset typical of rich-text course descriptions.
	ugc = bluemonday.UGCPolicy()
	// strict removes every tag; used for titles and names.
	strict = bluemonday.StrictPolicy()
)

// Sanitize returns s with unsafe markup removed, keeping safe formatting,
// links and tables.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// SanitizeToHTML is Sanitize typed for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// Text reduces s to plain text: all tags are stripped and surrounding space trimmed.
// Entities produced by the policy are decoded so html/template escapes once.
func Text(s string) string {
	if s == "" {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(strict.Sanitize(s)))
}
