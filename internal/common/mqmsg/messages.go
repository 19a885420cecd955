// Package mqmsg defines the wire shape of inbound chat events and outbound
// reply intents carried over Valkey streams.
package mqmsg

import (
	"errors"
	"fmt"
	"strings"
)

// Parse errors for inbound stream fields.
var (
	ErrMissingChatID  = errors.New("missing chat id")
	ErrMissingContent = errors.New("missing content")
	ErrMissingUserID  = errors.New("missing user id")
)

// SenderRole is the relay-reported standing of the message author.
type SenderRole string

// SenderRole values.
const (
	RoleSystemAdmin SenderRole = "system_admin"
	RoleGroupAdmin  SenderRole = "group_admin"
	RoleMember      SenderRole = "member"
)

// InboundMessage is one chat event read from the inbound stream.
type InboundMessage struct {
	ChatID    string
	UserID    string
	Content   string
	MessageID string
	Role      SenderRole
	IsPrivate bool

	// CallbackData is set when the event is a button press rather than a
	// typed message.
	CallbackData string

	ThreadID *string
	Sender   *string
}

// IsCallback reports whether the event came from an inline button.
func (m InboundMessage) IsCallback() bool {
	return strings.TrimSpace(m.CallbackData) != ""
}

// OutboundType classifies a reply intent for the relay.
type OutboundType string

// OutboundType values.
const (
	OutboundFinal   OutboundType = "final"
	OutboundError   OutboundType = "error"
	OutboundWaiting OutboundType = "waiting"
)

// OutboundMessage is one reply intent written to the reply stream. The relay
// decides how to render it; the engine never talks to a chat platform.
type OutboundMessage struct {
	ChatID   string
	Text     string
	ThreadID *string
	Type     OutboundType

	// ReplyToMessageID asks the relay to thread the reply under a message.
	ReplyToMessageID string

	// EditMessageID asks the relay to edit an earlier message in place
	// instead of posting a new one.
	EditMessageID string

	// Reaction asks the relay to also react to the referenced message with
	// the given emoji.
	Reaction string

	// Buttons are optional inline actions, rendered "label|data" per entry.
	Buttons []Button
}

// Button is one inline action attached to a reply.
type Button struct {
	Label string
	Data  string
}

// NewFinal builds a normal reply intent.
func NewFinal(chatID string, text string, threadID *string) OutboundMessage {
	return OutboundMessage{ChatID: chatID, Text: text, ThreadID: threadID, Type: OutboundFinal}
}

// NewError builds an error reply intent.
func NewError(chatID string, text string, threadID *string) OutboundMessage {
	return OutboundMessage{ChatID: chatID, Text: text, ThreadID: threadID, Type: OutboundError}
}

// ToStreamValues renders the message as stream fields.
func (m OutboundMessage) ToStreamValues() map[string]any {
	values := map[string]any{
		"chatId": m.ChatID,
		"text":   m.Text,
		"type":   string(m.Type),
	}
	if m.ThreadID != nil && strings.TrimSpace(*m.ThreadID) != "" {
		values["threadId"] = strings.TrimSpace(*m.ThreadID)
	}
	if strings.TrimSpace(m.ReplyToMessageID) != "" {
		values["replyTo"] = strings.TrimSpace(m.ReplyToMessageID)
	}
	if strings.TrimSpace(m.EditMessageID) != "" {
		values["editMessageId"] = strings.TrimSpace(m.EditMessageID)
	}
	if strings.TrimSpace(m.Reaction) != "" {
		values["reaction"] = strings.TrimSpace(m.Reaction)
	}
	if len(m.Buttons) > 0 {
		rendered := make([]string, 0, len(m.Buttons))
		for _, b := range m.Buttons {
			rendered = append(rendered, b.Label+"|"+b.Data)
		}
		values["buttons"] = strings.Join(rendered, ";")
	}
	return values
}

// ParseInboundMessage validates and converts raw stream fields.
// Callback events carry their payload in "callback" and may have empty text.
func ParseInboundMessage(fields map[string]string) (InboundMessage, error) {
	chatID := strings.TrimSpace(fields["room"])
	if chatID == "" {
		return InboundMessage{}, ErrMissingChatID
	}

	userID := strings.TrimSpace(fields["userId"])
	if userID == "" {
		return InboundMessage{}, ErrMissingUserID
	}

	content := strings.TrimSpace(fields["text"])
	callbackData := strings.TrimSpace(fields["callback"])
	if content == "" && callbackData == "" {
		return InboundMessage{}, ErrMissingContent
	}

	role := SenderRole(strings.TrimSpace(fields["role"]))
	switch role {
	case RoleSystemAdmin, RoleGroupAdmin, RoleMember:
	default:
		role = RoleMember
	}

	var threadIDPtr *string
	if threadID := strings.TrimSpace(fields["threadId"]); threadID != "" {
		threadIDPtr = &threadID
	}

	var senderPtr *string
	if sender := strings.TrimSpace(fields["sender"]); sender != "" {
		senderPtr = &sender
	}

	return InboundMessage{
		ChatID:       chatID,
		UserID:       userID,
		Content:      content,
		MessageID:    strings.TrimSpace(fields["messageId"]),
		Role:         role,
		IsPrivate:    strings.TrimSpace(fields["private"]) == "true",
		CallbackData: callbackData,
		ThreadID:     threadIDPtr,
		Sender:       senderPtr,
	}, nil
}

func (m InboundMessage) String() string {
	threadID := ""
	if m.ThreadID != nil {
		threadID = *m.ThreadID
	}
	return fmt.Sprintf("chatId=%s userId=%s role=%s threadId=%s", m.ChatID, m.UserID, m.Role, threadID)
}
