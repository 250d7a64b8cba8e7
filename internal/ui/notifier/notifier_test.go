package notifier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func received(ch chan struct{}) bool {
	select {
	case <-ch:
		return true
	case <-time.After(100 * time.Millisecond):
		return false
	}
}

func TestNotifier_Subscribe_Unsubscribe(t *testing.T) {
	n := New()

	ch := n.Subscribe("a")
	require.NotNil(t, ch)
	assert.Equal(t, 1, n.Len())

	n.Unsubscribe(ch)
	assert.Equal(t, 0, n.Len())

	_, open := <-ch
	assert.False(t, open, "channel is closed on unsubscribe")

	assert.NotPanics(t, func() { n.Unsubscribe(ch) }, "double unsubscribe is harmless")
}

func TestNotifier_PublishIsScopedToTopic(t *testing.T) {
	n := New()

	a := n.Subscribe("carousel-a")
	b := n.Subscribe("carousel-b")
	defer n.Unsubscribe(a)
	defer n.Unsubscribe(b)

	n.Publish("carousel-a")

	assert.True(t, received(a), "subscriber of the topic is pinged")
	select {
	case <-b:
		t.Error("subscriber of another topic must not be pinged")
	default:
	}
}

func TestNotifier_Broadcast(t *testing.T) {
	n := New()

	ch1 := n.Subscribe("x")
	ch2 := n.Subscribe("y")
	defer n.Unsubscribe(ch1)
	defer n.Unsubscribe(ch2)

	n.Broadcast()

	assert.True(t, received(ch1), "ch1 did not receive broadcast")
	assert.True(t, received(ch2), "ch2 did not receive broadcast")
}

func TestNotifier_Publish_NonBlocking(t *testing.T) {
	n := New()

	ch := n.Subscribe("x")
	defer n.Unsubscribe(ch)

	// Fill the channel buffer
	ch <- struct{}{}

	done := make(chan struct{})
	go func() {
		n.Publish("x")
		n.Broadcast()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Error("Publish blocked on full channel")
	}
}

func TestNotifier_Concurrent(t *testing.T) {
	n := New()

	var wg sync.WaitGroup
	const numGoroutines = 10

	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ch := n.Subscribe("shared")
			n.Publish("shared")
			n.Broadcast()
			n.Unsubscribe(ch)
		}()
	}

	wg.Wait()
	assert.Equal(t, 0, n.Len())
}
