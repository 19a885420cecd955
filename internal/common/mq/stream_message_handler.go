package mq

import (
	"context"
	"log/slog"

	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
)

// InboundMessageHandler processes one parsed chat event.
type InboundMessageHandler interface {
	HandleMessage(ctx context.Context, message mqmsg.InboundMessage)
}

// StreamMessageHandler converts raw stream entries into chat events and hands
// them to the inbound handler. Unparseable entries are logged and acked.
type StreamMessageHandler struct {
	handler InboundMessageHandler
	logger  *slog.Logger
}

// NewStreamMessageHandler creates a StreamMessageHandler.
func NewStreamMessageHandler(handler InboundMessageHandler, logger *slog.Logger) *StreamMessageHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamMessageHandler{
		handler: handler,
		logger:  logger,
	}
}

// HandleStreamMessage parses and dispatches one stream entry.
func (h *StreamMessageHandler) HandleStreamMessage(ctx context.Context, message XMessage) error {
	fields := make(map[string]string, 8)
	for k, v := range message.Values {
		switch k {
		case "room", "text", "sender", "threadId", "userId", "messageId", "role", "private", "callback":
			fields[k] = v
		}
	}

	inbound, err := mqmsg.ParseInboundMessage(fields)
	if err != nil {
		h.logger.Warn("message_parsing_failed", "id", message.ID, "err", err)
		return nil
	}

	if h.logger.Enabled(ctx, slog.LevelDebug) {
		h.logger.Debug("message_received", "id", message.ID, "chat_id", inbound.ChatID, "user_id", inbound.UserID)
	}
	if h.handler != nil {
		h.handler.HandleMessage(ctx, inbound)
	}
	return nil
}
