package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *miniredis.Miniredis {
	t.Helper()
	return miniredis.RunT(t)
}

func TestNewClient(t *testing.T) {
	mr := newTestServer(t)

	rdb, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	_, err = NewClient(context.Background(), "127.0.0.1:1", "", 0)
	assert.Error(t, err)
}

func TestKVStore(t *testing.T) {
	mr := newTestServer(t)
	rdb, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	s := NewKVStore(rdb, 0)
	ctx := context.Background()

	_, found, err := s.GetItem(ctx, "singsing_cart:a")
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.SetItem(ctx, "singsing_cart:a", "[]"))
	v, found, err := s.GetItem(ctx, "singsing_cart:a")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)
	assert.Equal(t, time.Duration(0), mr.TTL("singsing_cart:a"))

	require.NoError(t, s.RemoveItem(ctx, "singsing_cart:a"))
	assert.False(t, mr.Exists("singsing_cart:a"))
}

func TestKVStoreTTL(t *testing.T) {
	mr := newTestServer(t)
	rdb, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	s := NewKVStore(rdb, time.Hour)
	ctx := context.Background()
	require.NoError(t, s.SetItem(ctx, "k", "[]"))
	assert.Equal(t, time.Hour, mr.TTL("k"))

	mr.FastForward(2 * time.Hour)
	_, found, err := s.GetItem(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestPubSubClient(t *testing.T) {
	mr := newTestServer(t)
	rdb, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	ps := NewPubSubClient(rdb)
	ctx := context.Background()

	got := make(chan string, 1)
	errs := make(chan error, 1)
	go func() {
		msg, err := ps.Subscribe(ctx, "cart_toast:a", 5*time.Second)
		if err != nil {
			errs <- err
			return
		}
		got <- msg
	}()

	require.Eventually(t, func() bool {
		return mr.PubSubNumSub("cart_toast:a")["cart_toast:a"] == 1
	}, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, ps.Publish(ctx, "cart_toast:a", "hello"))

	select {
	case msg := <-got:
		assert.Equal(t, "hello", msg)
	case err := <-errs:
		t.Fatalf("subscribe failed: %v", err)
	case <-time.After(3 * time.Second):
		t.Fatal("no message received")
	}
}

func TestPubSubClientTimeout(t *testing.T) {
	mr := newTestServer(t)
	rdb, err := NewClient(context.Background(), mr.Addr(), "", 0)
	require.NoError(t, err)
	defer rdb.Close()

	_, err = NewPubSubClient(rdb).Subscribe(context.Background(), "quiet", 50*time.Millisecond)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
