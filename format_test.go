package contextpack

import (
	"fmt"
	"strings"
	"testing"

	"github.com/youssefsiam38/contextpack/store"
)

func summaries(n int) []store.StoredSummary {
	out := make([]store.StoredSummary, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, store.StoredSummary{
			Period:  fmt.Sprintf("%02d:00-%02d:00", 9+i, 10+i),
			HourKey: fmt.Sprintf("2026-08-25-%02d", 9+i),
			Text:    fmt.Sprintf("summary %d", i),
		})
	}
	return out
}

func countBullets(s string) int {
	return strings.Count(s, "• ")
}

func TestFormatPrefixEmpty(t *testing.T) {
	if got := FormatPrefix(nil); got != "" {
		t.Errorf("FormatPrefix(nil) = %q, want empty string", got)
	}
	if got := FormatPrefix([]store.StoredSummary{}); got != "" {
		t.Errorf("FormatPrefix(empty) = %q, want empty string", got)
	}
}

func TestFormatPrefixBulletCount(t *testing.T) {
	for _, n := range []int{1, 2, 5, 6, 7, 20} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			got := FormatPrefix(summaries(n))

			want := n
			if want > MaxPrefixSummaries {
				want = MaxPrefixSummaries
			}
			if bullets := countBullets(got); bullets != want {
				t.Errorf("got %d bullet lines, want %d", bullets, want)
			}
		})
	}
}

func TestFormatPrefixKeepsLastEntriesInOrder(t *testing.T) {
	all := summaries(10)
	got := FormatPrefix(all)

	// The first 4 (oldest) entries are dropped by the cap.
	for i := 0; i < 4; i++ {
		if strings.Contains(got, all[i].Text) {
			t.Errorf("prefix contains dropped summary %q", all[i].Text)
		}
	}

	// The last 6 appear in original chronological order.
	lastIdx := -1
	for i := 4; i < 10; i++ {
		idx := strings.Index(got, all[i].Text)
		if idx < 0 {
			t.Fatalf("prefix missing kept summary %q", all[i].Text)
		}
		if idx < lastIdx {
			t.Errorf("summary %q appears out of order", all[i].Text)
		}
		lastIdx = idx
	}
}

func TestFormatPrefixLayout(t *testing.T) {
	got := FormatPrefix([]store.StoredSummary{
		{Period: "09:00-10:00", Text: "talked about the weather"},
	})

	if !strings.HasPrefix(got, summaryPrefixHeader) {
		t.Errorf("prefix does not start with the header line:\n%s", got)
	}
	if !strings.HasSuffix(got, summaryPrefixFooter) {
		t.Errorf("prefix does not end with the footer line:\n%s", got)
	}
	if !strings.Contains(got, "• 09:00-10:00: talked about the weather\n") {
		t.Errorf("bullet line not rendered as expected:\n%s", got)
	}
}

func TestFormatPrefixIdempotent(t *testing.T) {
	in := summaries(8)

	first := FormatPrefix(in)
	second := FormatPrefix(in)
	if first != second {
		t.Errorf("FormatPrefix is not byte-stable:\n%q\nvs\n%q", first, second)
	}
}
