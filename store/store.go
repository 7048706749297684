// Package store provides read access to per-session rolling summary records.
//
// Summary records are created and appended to exclusively by an out-of-process
// summarization job; implementations in this package only read best-effort
// snapshots and never persist changes. A read that races an in-progress write
// by the producer must resolve to "absent" rather than a surfaced parse fault.
package store

import (
	"context"
	"time"
)

// SummaryStore loads the persisted summary record for a session.
type SummaryStore interface {
	// LoadSummaries returns the summary record for a session, or nil when no
	// record exists. Implementations reading local state report absence and
	// corruption as (nil, nil); implementations backed by remote storage may
	// return an error, which callers treat the same as absence.
	LoadSummaries(ctx context.Context, sessionID string) (*SummaryFile, error)
}

// StoredSummary is one rolling-window summary.
type StoredSummary struct {
	// Period is a human-readable label for the summarized span,
	// e.g. "09:00-10:00".
	Period string `json:"period"`

	// HourKey is the canonical bucket key used by the producer for ordering
	// and dedup. Opaque to readers.
	HourKey string `json:"hourKey"`

	// Text is the summary body.
	Text string `json:"text"`

	// MessageCount is the number of source messages folded into this summary.
	MessageCount int `json:"messageCount"`

	// CreatedAt is when the summary was created.
	CreatedAt time.Time `json:"createdAt"`
}

// SummaryFile is the persisted per-session summary record.
//
// Summaries are stored in chronological order, oldest first. Readers rely on
// but do not re-verify this ordering; it is the producer's invariant.
type SummaryFile struct {
	// Summaries is the ordered list of rolling summaries. An empty list is
	// valid and treated by consumers the same as an absent record.
	Summaries []StoredSummary `json:"summaries"`

	// LastSummarizedAt is the timestamp of the most recent summarization
	// run, if any.
	LastSummarizedAt *time.Time `json:"lastSummarizedAt,omitempty"`

	// LastProcessedLine is the offset into the raw history log already
	// folded into summaries. Owned by the producer; read-only here.
	LastProcessedLine int `json:"lastProcessedLine,omitempty"`
}
