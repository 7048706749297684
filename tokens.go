package contextpack

// ApproximateTokens provides a fast token estimate for a piece of text
// without an API call. Roughly 4 characters per token, rounded up.
func ApproximateTokens(content string) int {
	if content == "" {
		return 0
	}
	return (len(content) + 3) / 4
}

// EstimateTokens estimates the token cost of a message sequence.
//
// The estimate sums character counts across each message's content (text
// blocks contribute their length, unrecognized shapes contribute zero) and
// divides by 4, rounding up. This is a deliberately cheap proxy for a real
// tokenizer and never fails on malformed content.
func EstimateTokens(messages []Message) int {
	total := 0
	for _, msg := range messages {
		total += contentChars(msg)
	}
	if total == 0 {
		return 0
	}
	return (total + 3) / 4
}

// contentChars sums the character count of a message's text content.
func contentChars(msg Message) int {
	chars := 0
	for _, block := range msg.ContentBlocks() {
		if block.Kind == BlockText {
			chars += len(block.Text)
		}
	}
	return chars
}
