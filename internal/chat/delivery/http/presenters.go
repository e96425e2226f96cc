package http

import (
	"time"

	"outreach-agent/internal/agent/output"
	"outreach-agent/internal/chat"
)

// --- Request DTOs ---

type sendMessageReq struct {
	UserID     string `json:"userId"`
	Message    string `json:"message" binding:"required"`
	SequenceID string `json:"sequenceId"`
}

func (r sendMessageReq) toInput(defaultUserID string) chat.SendMessageInput {
	userID := r.UserID
	if userID == "" {
		userID = defaultUserID
	}
	return chat.SendMessageInput{UserID: userID, Message: r.Message, SequenceID: r.SequenceID}
}

type historyReq struct {
	UserID string `uri:"user_id" binding:"required"`
	Limit  int    `form:"limit" binding:"omitempty,min=1"`
}

func (r historyReq) toInput() chat.HistoryInput {
	return chat.HistoryInput{UserID: r.UserID, Limit: r.Limit}
}

// --- Response DTOs ---

type toolCallResp struct {
	Name      string         `json:"name"`
	Arguments map[string]any `json:"arguments"`
	Result    any            `json:"result"`
}

type sendMessageResp struct {
	ID        string         `json:"id"`
	Role      string         `json:"role"`
	Content   string         `json:"content"`
	ToolCalls []toolCallResp `json:"tool_calls"`
}

func newSendMessageResp(o chat.SendMessageOutput) sendMessageResp {
	return sendMessageResp{
		ID:        o.AssistantMessage.ID,
		Role:      o.AssistantMessage.Role,
		Content:   o.AssistantMessage.Content,
		ToolCalls: newToolCallResps(o.ToolCalls),
	}
}

func newToolCallResps(calls []output.ToolCall) []toolCallResp {
	out := make([]toolCallResp, len(calls))
	for i, c := range calls {
		out[i] = toolCallResp{Name: c.Name, Arguments: c.Arguments, Result: c.Result}
	}
	return out
}

type messageResp struct {
	ID         string    `json:"id"`
	Role       string    `json:"role"`
	Content    string    `json:"content"`
	SequenceID string    `json:"sequence_id,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type historyResp struct {
	Messages []messageResp `json:"messages"`
}

func newHistoryResp(msgs []chat.Message) historyResp {
	out := make([]messageResp, len(msgs))
	for i, m := range msgs {
		out[i] = messageResp{
			ID:         m.ID,
			Role:       m.Role,
			Content:    m.Content,
			SequenceID: m.SequenceID,
			CreatedAt:  m.CreatedAt,
		}
	}
	return historyResp{Messages: out}
}
