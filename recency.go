package contextpack

import "time"

// PartitionRecent returns the ordered subsequence of messages considered
// recent: those timestamped at or after now minus window (inclusive), plus
// every message with no extractable timestamp.
//
// Messages with a valid timestamp strictly before the cutoff are dropped;
// they are presumed covered by the rolling summaries. Messages whose
// timestamp cannot be extracted are retained: dropping them would risk
// losing content the summarizer never saw.
func PartitionRecent(messages []Message, now time.Time, window time.Duration) []Message {
	cutoff := now.Add(-window)

	recent := make([]Message, 0, len(messages))
	for _, msg := range messages {
		ts, ok := msg.Timestamp()
		if !ok || !ts.Before(cutoff) {
			recent = append(recent, msg)
		}
	}
	return recent
}
