package mq

import (
	"context"
	"fmt"

	"github.com/wordhush/wordhush-bot-go/internal/common/mqmsg"
)

// ReplyPublisher publishes outbound reply intents to the reply stream.
type ReplyPublisher struct {
	publisher *StreamPublisher
}

// NewReplyPublisher creates a ReplyPublisher.
func NewReplyPublisher(publisher *StreamPublisher) *ReplyPublisher {
	return &ReplyPublisher{publisher: publisher}
}

// Publish writes one reply intent.
func (p *ReplyPublisher) Publish(ctx context.Context, message mqmsg.OutboundMessage) error {
	if _, err := p.publisher.Publish(ctx, message.ToStreamValues()); err != nil {
		return fmt.Errorf("publish reply message failed: %w", err)
	}
	return nil
}
