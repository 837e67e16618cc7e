package htmlsanitize_test

import (
	"strings"
	"testing"

	"github.com/amanguptabounteous/benchboard/internal/app/system/htmlsanitize"
)

func TestSanitize_Empty(t *testing.T) {
	if got := htmlsanitize.Sanitize(""); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestSanitize_PlainFeedbackUnchanged(t *testing.T) {
	in := "Strong on concurrency, needs system design practice."
	if got := htmlsanitize.Sanitize(in); got != in {
		t.Errorf("expected plain text unchanged, got %q", got)
	}
}

func TestSanitize_RemovesScript(t *testing.T) {
	got := htmlsanitize.Sanitize("<p>Good round</p><script>alert('xss')</script>")
	if got != "<p>Good round</p>" {
		t.Errorf("expected script removed, got %q", got)
	}
}

func TestSanitize_RemovesOnclick(t *testing.T) {
	in := `<span onclick="alert('xss')">note</span>`
	if got := htmlsanitize.Sanitize(in); strings.Contains(got, "onclick") {
		t.Errorf("expected onclick stripped, got %q", got)
	}
}

func TestSanitize_RemovesJavascriptHref(t *testing.T) {
	in := `<a href="javascript:alert('xss')">Click</a>`
	if got := htmlsanitize.Sanitize(in); strings.Contains(got, "javascript:") {
		t.Errorf("expected javascript: href stripped, got %q", got)
	}
}
