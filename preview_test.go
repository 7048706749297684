package contextpack

import (
	"strings"
	"testing"
)

func TestPreviewHTML(t *testing.T) {
	cc := &CompactedContext{
		SummaryPrefix: "header\n\n• 09:00-10:00: discussed **deployment**\n\nfooter",
		WasSummarized: true,
	}

	html, err := PreviewHTML(cc)
	if err != nil {
		t.Fatalf("PreviewHTML() failed: %v", err)
	}
	if !strings.Contains(html, "<strong>deployment</strong>") {
		t.Errorf("markdown not rendered:\n%s", html)
	}
}

func TestPreviewHTMLEmpty(t *testing.T) {
	if html, err := PreviewHTML(nil); err != nil || html != "" {
		t.Errorf("PreviewHTML(nil) = (%q, %v), want empty", html, err)
	}
	if html, err := PreviewHTML(&CompactedContext{}); err != nil || html != "" {
		t.Errorf("PreviewHTML(no prefix) = (%q, %v), want empty", html, err)
	}
}

func TestPreviewHTMLSanitizesScript(t *testing.T) {
	// Summary text is produced out-of-process and must not be trusted.
	cc := &CompactedContext{
		SummaryPrefix: `• 09:00-10:00: <script>alert("hi")</script> quiet hour`,
		WasSummarized: true,
	}

	html, err := PreviewHTML(cc)
	if err != nil {
		t.Fatalf("PreviewHTML() failed: %v", err)
	}
	if strings.Contains(html, "<script>") {
		t.Errorf("script tag survived sanitization:\n%s", html)
	}
	if !strings.Contains(html, "quiet hour") {
		t.Errorf("benign text was stripped:\n%s", html)
	}
}
