// Package activity publishes UI transitions on the event bus and records them
// on the other side.
package activity

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/nfrund/gopang/internal/metrics"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/nfrund/gopang/internal/pubsub"
)

// Navigated is the payload of pubsub.TopicNavigated.
type Navigated struct {
	From navigation.ViewID `json:"from"`
	To   navigation.ViewID `json:"to"`
	Raw  string            `json:"raw"`
}

// Emitter turns state changes into bus messages.
type Emitter struct {
	pub pubsub.Publisher
}

// NewEmitter returns an Emitter publishing on pub.
func NewEmitter(pub pubsub.Publisher) *Emitter {
	return &Emitter{pub: pub}
}

// Navigated publishes a single-page transition. Failures are logged and
// never reach the caller; the UI does not depend on the bus.
func (e *Emitter) Navigated(sessionID string, t navigation.Transition) {
	payload, err := json.Marshal(Navigated{From: t.From, To: t.To, Raw: t.Raw})
	if err != nil {
		slog.Error("failed to encode navigation event", "error", err)
		return
	}
	e.publish(pubsub.Message{Topic: pubsub.TopicNavigated, SessionID: sessionID, Payload: payload})
}

// MenuToggled publishes the new state of the mobile menu.
func (e *Emitter) MenuToggled(sessionID string, open bool) {
	e.publish(pubsub.Message{
		Topic:     pubsub.TopicMenu,
		SessionID: sessionID,
		Metadata:  map[string]string{"open": strconv.FormatBool(open)},
	})
}

func (e *Emitter) publish(msg pubsub.Message) {
	if err := e.pub.Publish(context.Background(), msg); err != nil {
		slog.Error("failed to publish ui event", "topic", msg.Topic, "error", err)
	}
}

// Recorder consumes UI events, logging them and updating metrics.
type Recorder struct {
	metrics *metrics.Metrics
}

// NewRecorder returns a Recorder writing to m.
func NewRecorder(m *metrics.Metrics) *Recorder {
	return &Recorder{metrics: m}
}

// Start subscribes to the UI topics until ctx is canceled.
func (r *Recorder) Start(ctx context.Context, sub pubsub.Subscriber) error {
	if err := sub.Subscribe(ctx, pubsub.TopicNavigated, r.handleNavigated); err != nil {
		return fmt.Errorf("subscribe %s: %w", pubsub.TopicNavigated, err)
	}
	if err := sub.Subscribe(ctx, pubsub.TopicMenu, r.handleMenu); err != nil {
		return fmt.Errorf("subscribe %s: %w", pubsub.TopicMenu, err)
	}
	return nil
}

func (r *Recorder) handleNavigated(ctx context.Context, msg pubsub.Message) error {
	var ev Navigated
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return fmt.Errorf("decode navigation event: %w", err)
	}
	r.metrics.Transitions.WithLabelValues(string(ev.From), string(ev.To)).Inc()
	slog.Info("navigated", "session_id", msg.SessionID, "from", ev.From, "to", ev.To, "raw", ev.Raw)
	return nil
}

func (r *Recorder) handleMenu(ctx context.Context, msg pubsub.Message) error {
	r.metrics.MenuToggles.Inc()
	slog.Debug("menu toggled", "session_id", msg.SessionID, "open", msg.Metadata["open"])
	return nil
}
