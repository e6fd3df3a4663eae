package htmlsanitize_test

import (
	"html/template"
	"strings"
	"testing"

	"github.com/dalemusser/kursmanager/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if result := htmlsanitize.Sanitize(""); result != "" {
		t.Errorf("expected empty string, got %q", result)
	}
}

func TestSanitize_SafeHTML(t *testing.T) {
	input := "<p><strong>Bold</strong> and <em>italic</em></p>"
	if result := htmlsanitize.Sanitize(input); result != input {
		t.Errorf("expected safe HTML preserved, got %q", result)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	input := "<p>Hello</p><script>alert('xss')</script>"
	if result := htmlsanitize.Sanitize(input); result != "<p>Hello</p>" {
		t.Errorf("expected script removed, got %q", result)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	input := `<a href="https://example.com" onclick="alert('xss')">Click</a>`
	result := htmlsanitize.Sanitize(input)
	if strings.Contains(result, "onclick") {
		t.Errorf("expected onclick removed, got %q", result)
	}
	if !strings.Contains(result, "https://example.com") {
		t.Errorf("expected safe link preserved, got %q", result)
	}
}

func TestSanitize_AllowsLists(t *testing.T) {
	input := "<ul><li>Item 1</li><li>Item 2</li></ul>"
	if result := htmlsanitize.Sanitize(input); result != input {
		t.Errorf("expected list preserved, got %q", result)
	}
}

func TestSanitizeToHTML_ReturnsTemplateHTML(t *testing.T) {
	result := htmlsanitize.SanitizeToHTML("<p>Hello</p>")
	if result != template.HTML("<p>Hello</p>") {
		t.Errorf("got %v", result)
	}
}

func TestText_StripsAllTags(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"Yoga für Einsteiger", "Yoga für Einsteiger"},
		{"<b>Python</b> Grundlagen", "Python Grundlagen"},
		{"  Aquarell <script>alert(1)</script> ", "Aquarell"},
		{"Yoga & Pilates", "Yoga & Pilates"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.Text(tt.in); got != tt.want {
			t.Errorf("Text(%q): got %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestText_DecodesEntitiesOnce(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Tom &amp; Jerry's <b>Kurs</b>", "Tom & Jerry's Kurs"},
		{"Caf&eacute; Deutsch", "Café Deutsch"},
		{`Kurs "Grundlagen"`, `Kurs "Grundlagen"`},
		{"a &amp;lt; b", "a &lt; b"},
	}
	for _, tt := range tests {
		if got := htmlsanitize.Text(tt.in); got != tt.want {
			t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
