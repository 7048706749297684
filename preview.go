package contextpack

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// previewPolicy allows common formatting markup and strips everything else.
// Summary text comes from an external producer and is not trusted.
var previewPolicy = bluemonday.UGCPolicy()

// PreviewHTML renders the summary prefix as sanitized HTML for operator
// dashboards and debugging views. Returns an empty string when the context
// carries no prefix.
func PreviewHTML(cc *CompactedContext) (string, error) {
	if cc == nil || cc.SummaryPrefix == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(cc.SummaryPrefix), &buf); err != nil {
		return "", fmt.Errorf("failed to render summary prefix: %w", err)
	}

	return previewPolicy.Sanitize(buf.String()), nil
}
