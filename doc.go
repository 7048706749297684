// Package contextpack assembles bounded conversation context for AI agents
// from precomputed rolling summaries plus a verbatim tail of recent messages.
//
// Long-running agent sessions accumulate more history than fits in a model's
// context window. An out-of-process summarization job periodically folds older
// messages into rolling summaries and persists them per session. This package
// is the read side of that arrangement: given a session ID and the full known
// message sequence, it loads the persisted summaries, keeps only the recent
// messages verbatim, and renders the summaries into a capped textual prefix.
//
// # Usage
//
// Create an Assembler backed by the default file store:
//
//	assembler, err := contextpack.New(nil, &contextpack.Config{
//	    SessionsRoot:  "/var/lib/myagent/sessions",
//	    RecencyWindow: 60 * time.Minute,
//	})
//	if err != nil {
//	    return err
//	}
//
//	cc := assembler.Assemble(ctx, sessionID, messages)
//	params := contextpack.ToAnthropicMessages(cc)
//
// # Graceful degradation
//
// Every failure mode degrades to a safe fallback rather than an error:
//
//   - Missing, unreadable, or corrupt summary store: the full, unfiltered
//     message sequence is returned and WasSummarized is false. A brand-new
//     session, or one the producer has not yet visited, loses nothing.
//   - A message without a parseable timestamp is always retained in the
//     recent window. Dropping it would risk losing content the summarizer
//     never saw.
//   - Unrecognized content shapes contribute zero to the token estimate.
//
// # Message polymorphism
//
// Messages are externally defined. The package treats each message as a raw
// JSON document and extracts only two projections: an estimated content cost
// and an optional timestamp taken from the first matching candidate field.
// No other property is required.
//
// # Storage
//
// The producer owns the summary store and is its only writer. The default
// store.FileStore reads one JSON document per session at
// <root>/<sessionID>.summary.json. A store.PostgresStore is provided for
// deployments where the producer writes rows instead of files. Reads are
// best-effort single-attempt snapshots; a read racing an in-progress write
// parses as absent rather than surfacing a fault.
//
// # Thread safety
//
// The Assembler holds no per-call mutable state and is safe for concurrent
// use across any mix of sessions.
package contextpack
