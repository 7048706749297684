package contextpack

import (
	"strings"

	"github.com/youssefsiam38/contextpack/store"
)

// MaxPrefixSummaries is the maximum number of summaries rendered into the
// prefix. Older entries beyond the cap are dropped to bound prefix size.
// This is a coarse fixed bound, not a token budget.
const MaxPrefixSummaries = 6

// summaryPrefixHeader and summaryPrefixFooter frame the rendered summary
// block so the model treats it as background rather than a turn to answer.
const (
	summaryPrefixHeader = "The following are summaries of earlier parts of this conversation, provided for reference only:"
	summaryPrefixFooter = "Treat the summaries above as background context. Respond to the messages that follow."
)

// FormatPrefix renders stored summaries into the textual context prefix.
//
// An empty input yields an empty string. Otherwise the chronologically last
// MaxPrefixSummaries entries are rendered in original order as one bullet
// line each, framed by a fixed header and footer. Output is byte-stable for
// a given input.
func FormatPrefix(summaries []store.StoredSummary) string {
	if len(summaries) == 0 {
		return ""
	}

	kept := summaries
	if len(kept) > MaxPrefixSummaries {
		kept = kept[len(kept)-MaxPrefixSummaries:]
	}

	var b strings.Builder
	b.WriteString(summaryPrefixHeader)
	b.WriteString("\n\n")
	for _, s := range kept {
		b.WriteString("• ")
		b.WriteString(s.Period)
		b.WriteString(": ")
		b.WriteString(s.Text)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(summaryPrefixFooter)
	return b.String()
}
