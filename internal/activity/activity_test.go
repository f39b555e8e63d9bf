package activity_test

import (
	"context"
	"testing"
	"time"

	"github.com/nfrund/gopang/internal/activity"
	"github.com/nfrund/gopang/internal/metrics"
	"github.com/nfrund/gopang/internal/navigation"
	"github.com/nfrund/gopang/internal/pubsub"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmitterToRecorder(t *testing.T) {
	bus := pubsub.NewBus()
	defer bus.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New(nil)
	require.NoError(t, activity.NewRecorder(m).Start(ctx, bus))

	em := activity.NewEmitter(bus)
	em.Navigated("s1", navigation.Transition{From: navigation.Home, To: navigation.Collect, Raw: "collect"})
	em.MenuToggled("s1", true)

	assert.Eventually(t, func() bool {
		return testutil.ToFloat64(m.Transitions.WithLabelValues("home", "collect")) == 1 &&
			testutil.ToFloat64(m.MenuToggles) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

type failingPublisher struct{ calls int }

func (f *failingPublisher) Publish(ctx context.Context, msg pubsub.Message) error {
	f.calls++
	return assert.AnError
}

func (f *failingPublisher) Close() error { return nil }

func TestEmitter_SwallowsPublishErrors(t *testing.T) {
	pub := &failingPublisher{}
	em := activity.NewEmitter(pub)

	assert.NotPanics(t, func() {
		em.Navigated("s1", navigation.Transition{From: navigation.Home, To: navigation.About, Raw: "about"})
		em.MenuToggled("s1", false)
	})
	assert.Equal(t, 2, pub.calls)
}
