package contextpack

import (
	"context"
	"time"

	"github.com/youssefsiam38/contextpack/store"
)

// CompactedContext is the bounded context payload produced by Assemble.
// It is constructed fresh on every call and never cached.
type CompactedContext struct {
	// SummaryPrefix is the formatted summary block to prepend to the agent's
	// context. Empty when no summaries were available.
	SummaryPrefix string

	// RecentMessages is the ordered subsequence of the input messages to
	// keep verbatim.
	RecentMessages []Message

	// WasSummarized reports whether a non-empty summary prefix was produced.
	WasSummarized bool

	// SummaryCount is the number of stored summaries available before
	// capping, for observability.
	SummaryCount int
}

// Assembler builds bounded context payloads from a summary store and the
// caller's message history. It is safe for concurrent use.
type Assembler struct {
	store  store.SummaryStore
	config *Config
	logger Logger
	now    func() time.Time
}

// New creates an Assembler.
//
// If st is nil, a store.FileStore rooted at the configured SessionsRoot is
// used. If config is nil, default configuration is used.
func New(st store.SummaryStore, config *Config, opts ...Option) (*Assembler, error) {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.ApplyDefaults()
	}
	if err := config.Validate(); err != nil {
		return nil, NewAssemblyError("New", err)
	}

	if st == nil {
		st = store.NewFileStore(config.SessionsRoot)
	}

	a := &Assembler{
		store:  st,
		config: config,
		logger: noopLogger{},
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Assemble builds the bounded context for a session from the full known
// message sequence.
//
// When the session has no persisted summaries (store absent, unreadable,
// corrupt, or holding an empty summary list), Assemble degrades to a no-op:
// the full, unfiltered input is returned and WasSummarized is false. History
// is never truncated unless summaries exist to cover it.
func (a *Assembler) Assemble(ctx context.Context, sessionID string, messages []Message) *CompactedContext {
	file, err := a.store.LoadSummaries(ctx, sessionID)
	if err != nil {
		a.logger.Warn("summary load failed, keeping full history",
			"session_id", sessionID,
			"error", err,
		)
		file = nil
	}

	if file == nil || len(file.Summaries) == 0 {
		a.logger.Debug("no summaries for session",
			"session_id", sessionID,
			"total_messages", len(messages),
		)
		return &CompactedContext{RecentMessages: messages}
	}

	recent := PartitionRecent(messages, a.now(), a.config.RecencyWindow)
	prefix := FormatPrefix(file.Summaries)

	result := &CompactedContext{
		SummaryPrefix:  prefix,
		RecentMessages: recent,
		WasSummarized:  prefix != "",
		SummaryCount:   len(file.Summaries),
	}

	a.logger.Info("context assembled",
		"session_id", sessionID,
		"summaries", result.SummaryCount,
		"recent_messages", len(recent),
		"total_messages", len(messages),
		"estimated_tokens", EstimateTokens(recent),
	)

	return result
}

// Config returns the assembler's configuration.
func (a *Assembler) Config() *Config {
	return a.config
}
