package telegram

import (
	"encoding/json"
	"errors"
)

// ErrInvalidJSON is returned by ParseUpdate for a body that is not JSON at all.
var ErrInvalidJSON = errors.New("invalid json")

// Update is the payload the Bot API posts to the webhook for one event.
// Only the message variants the bot replies to are decoded.
type Update struct {
	UpdateID      int64    `json:"update_id"`
	Message       *Message `json:"message,omitempty"`
	EditedMessage *Message `json:"edited_message,omitempty"`
}

// ParseUpdate decodes a webhook body. Only syntactically invalid JSON is an error:
// non-object bodies and fields of an unexpected shape decode as absent.
func ParseUpdate(body []byte) (*Update, error) {
	if !json.Valid(body) {
		return nil, ErrInvalidJSON
	}

	var update Update
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil {
		return &update, nil
	}
	_ = json.Unmarshal(fields["update_id"], &update.UpdateID)
	update.Message = decodeMessage(fields["message"])
	update.EditedMessage = decodeMessage(fields["edited_message"])
	return &update, nil
}

// decodeMessage returns nil unless raw is a message object addressed to a chat.
func decodeMessage(raw json.RawMessage) *Message {
	if len(raw) == 0 {
		return nil
	}
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil || msg.Chat == nil {
		return nil
	}
	return &msg
}

// IncomingMessage returns the message to reply to, preferring a new message over an edit.
// A message without a chat counts as absent. It returns nil when the update carries neither.
func (u *Update) IncomingMessage() *Message {
	if u.Message != nil && u.Message.Chat != nil {
		return u.Message
	}
	if u.EditedMessage != nil && u.EditedMessage.Chat != nil {
		return u.EditedMessage
	}
	return nil
}

type Message struct {
	MessageID int64  `json:"message_id"`
	From      *User  `json:"from,omitempty"`
	Chat      *Chat  `json:"chat"`
	Date      int64  `json:"date"`
	Text      string `json:"text"`
}

type Chat struct {
	ID    int64  `json:"id"`
	Type  string `json:"type"`
	Title string `json:"title,omitempty"`
}

type User struct {
	ID        int64  `json:"id"`
	IsBot     bool   `json:"is_bot"`
	FirstName string `json:"first_name"`
	Username  string `json:"username,omitempty"`
}

// SendMessageRequest is the body of a sendMessage call.
type SendMessageRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

// SetWebhookRequest is the body of a setWebhook call.
type SetWebhookRequest struct {
	URL string `json:"url"`
}

// APIResponse is the envelope every Bot API method answers with.
type APIResponse struct {
	OK          bool            `json:"ok"`
	Result      json.RawMessage `json:"result,omitempty"`
	Description string          `json:"description,omitempty"`
	ErrorCode   int             `json:"error_code,omitempty"`
}
