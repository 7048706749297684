package contextpack

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/tidwall/gjson"
)

// Message is a single conversation message as a raw JSON document.
//
// Messages are owned by the host process; this package only extracts two
// projections from them: an estimated content cost and an optional timestamp.
// A message may carry any other fields and any content shape; nothing here
// requires a particular schema, and malformed documents simply yield no
// projections.
type Message []byte

// BlockKind tags the decoded shape of a single content block.
type BlockKind string

const (
	// BlockText is a block carrying plain text, either as a bare string or
	// as an object exposing a "text" field.
	BlockText BlockKind = "text"

	// BlockUnknown is any block shape this package does not recognize.
	// Unknown blocks contribute zero to the token estimate.
	BlockUnknown BlockKind = "unknown"
)

// ContentBlock is the decoded form of one unit of message content.
type ContentBlock struct {
	Kind BlockKind
	Text string
}

// NewMessage creates a message with the given role and text content.
// The host process is free to construct messages any other way; this
// constructor exists for hosts that build their history through this package.
func NewMessage(role, text string) Message {
	raw, _ := json.Marshal(map[string]any{
		"id":        uuid.New().String(),
		"role":      role,
		"content":   text,
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
	return Message(raw)
}

// NewUserMessage creates a user message with text content.
func NewUserMessage(text string) Message {
	return NewMessage("user", text)
}

// NewAssistantMessage creates an assistant message with text content.
func NewAssistantMessage(text string) Message {
	return NewMessage("assistant", text)
}

// Role returns the message role, or "" if absent.
func (m Message) Role() string {
	if !gjson.ValidBytes(m) {
		return ""
	}
	return gjson.GetBytes(m, "role").Str
}

// ContentBlocks decodes the message content into tagged blocks.
//
// Content is polymorphic: a plain string is one text block; an array yields
// one block per element, where a bare string or an object with a string
// "text" field decodes as text and anything else as unknown. A missing or
// unrecognized content field yields no blocks.
func (m Message) ContentBlocks() []ContentBlock {
	if !gjson.ValidBytes(m) {
		return nil
	}

	content := gjson.GetBytes(m, "content")
	switch {
	case content.Type == gjson.String:
		return []ContentBlock{{Kind: BlockText, Text: content.Str}}

	case content.IsArray():
		var blocks []ContentBlock
		content.ForEach(func(_, block gjson.Result) bool {
			blocks = append(blocks, decodeBlock(block))
			return true
		})
		return blocks
	}

	return nil
}

// decodeBlock decodes a single element of an array-shaped content field.
func decodeBlock(block gjson.Result) ContentBlock {
	if block.Type == gjson.String {
		return ContentBlock{Kind: BlockText, Text: block.Str}
	}
	if block.IsObject() {
		if text := block.Get("text"); text.Type == gjson.String {
			return ContentBlock{Kind: BlockText, Text: text.Str}
		}
	}
	return ContentBlock{Kind: BlockUnknown}
}

// timestampFields are the candidate fields probed for a message timestamp,
// in priority order. The first field present and coercible to a valid
// point-in-time wins.
var timestampFields = []string{"timestamp", "ts", "createdAt", "created_at", "date"}

// Timestamp extracts the message timestamp, if any. The second return value
// reports whether a valid timestamp was found.
func (m Message) Timestamp() (time.Time, bool) {
	if !gjson.ValidBytes(m) {
		return time.Time{}, false
	}
	for _, field := range timestampFields {
		value := gjson.GetBytes(m, field)
		if !value.Exists() {
			continue
		}
		if ts, ok := coerceTime(value); ok {
			return ts, true
		}
	}
	return time.Time{}, false
}

// unixMillisFloor is the threshold above which a numeric timestamp is read
// as Unix milliseconds rather than seconds. Values this large as seconds
// would be tens of thousands of years in the future.
const unixMillisFloor = 1e12

// coerceTime converts a JSON value into a point-in-time. Strings are parsed
// as RFC 3339 (with or without fractional seconds); numbers are read as Unix
// seconds or milliseconds.
func coerceTime(value gjson.Result) (time.Time, bool) {
	switch value.Type {
	case gjson.String:
		if ts, err := time.Parse(time.RFC3339Nano, value.Str); err == nil {
			return ts, true
		}

	case gjson.Number:
		n := value.Float()
		if n <= 0 {
			return time.Time{}, false
		}
		if n >= unixMillisFloor {
			return time.UnixMilli(int64(n)), true
		}
		return time.Unix(int64(n), 0), true
	}

	return time.Time{}, false
}
