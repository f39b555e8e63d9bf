package pubsub

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// sessionKey is the watermill metadata key holding Message.SessionID.
const sessionKey = "session_id"

// Bus carries UI events between goroutines of one process on a watermill
// GoChannel. Delivery is at most once: a message whose handler fails is
// logged and acknowledged, never redelivered, because a UI event that
// failed once fails the same way every time.
type Bus struct {
	channel *gochannel.GoChannel
}

// NewBus creates an in-memory bus. Each subscriber buffers up to 64 events
// before publishers wait.
func NewBus() *Bus {
	return &Bus{
		channel: gochannel.NewGoChannel(
			gochannel.Config{OutputChannelBuffer: 64},
			watermill.NewStdLogger(false, false),
		),
	}
}

// Publish implements Publisher. Publishing to a topic without subscribers
// drops the event.
func (b *Bus) Publish(ctx context.Context, msg Message) error {
	wm := message.NewMessage(watermill.NewUUID(), msg.Payload)
	for k, v := range msg.Metadata {
		wm.Metadata.Set(k, v)
	}
	wm.Metadata.Set(sessionKey, msg.SessionID)
	wm.SetContext(ctx)

	if err := b.channel.Publish(msg.Topic, wm); err != nil {
		return fmt.Errorf("publish %s: %w", msg.Topic, err)
	}
	return nil
}

// Subscribe implements Subscriber. handler runs on a dedicated goroutine,
// one event at a time, until ctx is canceled or the bus is closed.
func (b *Bus) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := b.channel.Subscribe(ctx, topic)
	if err != nil {
		return fmt.Errorf("subscribe %s: %w", topic, err)
	}

	go func() {
		for wm := range messages {
			deliver(ctx, topic, wm, handler)
		}
		slog.Debug("ui event subscription ended", "topic", topic)
	}()
	return nil
}

// deliver hands one event to handler and always acknowledges it.
func deliver(ctx context.Context, topic string, wm *message.Message, handler Handler) {
	defer wm.Ack()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("ui event handler panicked", "topic", topic, "msg_id", wm.UUID, "panic", r)
		}
	}()

	msg := Message{
		Topic:     topic,
		SessionID: wm.Metadata.Get(sessionKey),
		Payload:   wm.Payload,
		Metadata:  make(map[string]string, len(wm.Metadata)),
	}
	for k, v := range wm.Metadata {
		if k != sessionKey {
			msg.Metadata[k] = v
		}
	}

	if err := handler(ctx, msg); err != nil {
		slog.Error("dropping ui event", "topic", topic, "session_id", msg.SessionID, "msg_id", wm.UUID, "error", err)
	}
}

// Close stops every subscription and rejects further publishing.
func (b *Bus) Close() error {
	return b.channel.Close()
}
