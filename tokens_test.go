package contextpack

import "testing"

func TestApproximateTokens(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected int
	}{
		{
			name:     "empty string",
			content:  "",
			expected: 0,
		},
		{
			name:     "short string",
			content:  "hi",
			expected: 1, // (2 + 3) / 4 = 1
		},
		{
			name:     "4 chars",
			content:  "test",
			expected: 1, // (4 + 3) / 4 = 1
		},
		{
			name:     "8 chars",
			content:  "12345678",
			expected: 2, // (8 + 3) / 4 = 2
		},
		{
			name:     "longer text",
			content:  "This is a longer piece of text for testing token approximation.",
			expected: 16, // (63 + 3) / 4 = 16
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApproximateTokens(tt.content)
			if got != tt.expected {
				t.Errorf("ApproximateTokens(%q) = %d, want %d", tt.content, got, tt.expected)
			}
		})
	}
}

func TestEstimateTokens(t *testing.T) {
	tests := []struct {
		name     string
		messages []Message
		expected int
	}{
		{
			name:     "nil messages",
			messages: nil,
			expected: 0,
		},
		{
			name:     "empty messages",
			messages: []Message{},
			expected: 0,
		},
		{
			name: "plain string content",
			messages: []Message{
				Message(`{"role":"user","content":"12345678"}`),
			},
			expected: 2, // (8 + 3) / 4
		},
		{
			name: "array of string blocks",
			messages: []Message{
				Message(`{"content":["1234","5678"]}`),
			},
			expected: 2, // 8 chars total
		},
		{
			name: "structured block with text field",
			messages: []Message{
				Message(`{"content":[{"type":"text","text":"12345678"}]}`),
			},
			expected: 2,
		},
		{
			name: "unrecognized block shapes contribute zero",
			messages: []Message{
				Message(`{"content":[{"type":"tool_use","input":{"a":1}},42,null,{"type":"text","text":"1234"}]}`),
			},
			expected: 1, // only the text block counts
		},
		{
			name: "missing content",
			messages: []Message{
				Message(`{"role":"user"}`),
			},
			expected: 0,
		},
		{
			name: "numeric content",
			messages: []Message{
				Message(`{"content":42}`),
			},
			expected: 0,
		},
		{
			name: "malformed JSON never panics",
			messages: []Message{
				Message(`{"content":`),
				Message(`not json at all`),
			},
			expected: 0,
		},
		{
			name: "sums across messages before dividing",
			messages: []Message{
				Message(`{"content":"123"}`), // 3 chars
				Message(`{"content":"456"}`), // 3 chars
			},
			expected: 2, // (6 + 3) / 4 = 2
		},
		{
			name: "single division over the total",
			messages: []Message{
				Message(`{"content":"1"}`),
				Message(`{"content":"1"}`),
				Message(`{"content":"1"}`),
			},
			expected: 1, // (3 + 3) / 4 = 1, per-message rounding would give 3
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EstimateTokens(tt.messages)
			if got != tt.expected {
				t.Errorf("EstimateTokens() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestEstimateTokensMonotonic(t *testing.T) {
	messages := []Message{
		Message(`{"content":"some text"}`),
		Message(`{"content":["more","text blocks"]}`),
		Message(`{"content":[{"type":"text","text":"structured"}]}`),
		Message(`{"content":{"weird":"shape"}}`),
	}

	// The estimate for any prefix must not exceed the estimate for the
	// full sequence.
	full := EstimateTokens(messages)
	for i := 0; i <= len(messages); i++ {
		subset := EstimateTokens(messages[:i])
		if subset > full {
			t.Errorf("EstimateTokens(messages[:%d]) = %d exceeds full estimate %d", i, subset, full)
		}
	}
}
