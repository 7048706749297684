package contextpack

import (
	"github.com/anthropics/anthropic-sdk-go"
)

// ToAnthropicMessages converts an assembled context into Anthropic message
// parameters: the summary prefix (when present) becomes a synthetic leading
// user turn, followed by the recent messages verbatim.
//
// Messages without a user or assistant role, or without any text content,
// are skipped; the conversion never fails.
func ToAnthropicMessages(cc *CompactedContext) []anthropic.MessageParam {
	if cc == nil {
		return nil
	}

	params := make([]anthropic.MessageParam, 0, len(cc.RecentMessages)+1)

	if cc.WasSummarized && cc.SummaryPrefix != "" {
		params = append(params, anthropic.MessageParam{
			Role: anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{
				anthropic.NewTextBlock(cc.SummaryPrefix),
			},
		})
	}

	for _, msg := range cc.RecentMessages {
		if param, ok := toMessageParam(msg); ok {
			params = append(params, param)
		}
	}

	return params
}

// toMessageParam converts a single message, reporting whether it produced a
// usable parameter.
func toMessageParam(msg Message) (anthropic.MessageParam, bool) {
	var role anthropic.MessageParamRole
	switch msg.Role() {
	case "user":
		role = anthropic.MessageParamRoleUser
	case "assistant":
		role = anthropic.MessageParamRoleAssistant
	default:
		// System and unknown roles are handled separately by the runtime.
		return anthropic.MessageParam{}, false
	}

	blocks := msg.ContentBlocks()
	content := make([]anthropic.ContentBlockParamUnion, 0, len(blocks))
	for _, block := range blocks {
		if block.Kind == BlockText && block.Text != "" {
			content = append(content, anthropic.NewTextBlock(block.Text))
		}
	}
	if len(content) == 0 {
		return anthropic.MessageParam{}, false
	}

	return anthropic.MessageParam{Role: role, Content: content}, true
}
