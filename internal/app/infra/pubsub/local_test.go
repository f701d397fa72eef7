package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalDeliversToWaiters(t *testing.T) {
	l := NewLocal()
	ctx := context.Background()

	got := make(chan string, 2)
	for i := 0; i < 2; i++ {
		go func() {
			msg, err := l.Subscribe(ctx, "cart_toast:a", 2*time.Second)
			if err == nil {
				got <- msg
			}
		}()
	}
	require.Eventually(t, func() bool { return l.Subscribers("cart_toast:a") == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, l.Publish(ctx, "cart_toast:b", "other"))
	require.NoError(t, l.Publish(ctx, "cart_toast:a", "hi"))

	for i := 0; i < 2; i++ {
		select {
		case msg := <-got:
			assert.Equal(t, "hi", msg)
		case <-time.After(time.Second):
			t.Fatal("subscriber did not receive")
		}
	}
	require.Eventually(t, func() bool { return l.Subscribers("cart_toast:a") == 0 }, time.Second, 5*time.Millisecond)
}

func TestLocalTimeout(t *testing.T) {
	l := NewLocal()
	_, err := l.Subscribe(context.Background(), "quiet", 20*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 0, l.Subscribers("quiet"))

	// nobody listening: dropped, not an error
	assert.NoError(t, l.Publish(context.Background(), "quiet", "lost"))
}
