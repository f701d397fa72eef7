package mdnotice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"singsing/storefront/internal/app/domains/entity/etnotice"
	"singsing/storefront/internal/app/pkg/errorx"
)

// Publisher is the pub/sub transport toasts travel on. Implemented by the
// redis PubSubClient and the in-process pubsub.Local.
type Publisher interface {
	Publish(ctx context.Context, channel string, message string) error
	Subscribe(ctx context.Context, channel string, timeout time.Duration) (string, error)
}

// NoticeModule toast notifications
type NoticeModule struct {
	publisher      Publisher
	defaultMessage string
	duration       time.Duration
}

// NewNoticeModule creates a NoticeModule. Empty defaults fall back to the
// storefront's standard toast.
func NewNoticeModule(publisher Publisher, defaultMessage string, duration time.Duration) *NoticeModule {
	if defaultMessage == "" {
		defaultMessage = etnotice.DefaultMessage
	}
	if duration <= 0 {
		duration = etnotice.DefaultDuration
	}
	return &NoticeModule{
		publisher:      publisher,
		defaultMessage: defaultMessage,
		duration:       duration,
	}
}

// NewToast builds the toast for cartID without sending it.
func (m *NoticeModule) NewToast(cartID, message string) (*etnotice.Toast, error) {
	if message == "" {
		message = m.defaultMessage
	}
	return etnotice.NewToast(uuid.NewString(), cartID, message, m.duration)
}

// Publish sends toast to the cart's listeners.
func (m *NoticeModule) Publish(ctx context.Context, toast *etnotice.Toast) error {
	payload, err := json.Marshal(toast)
	if err != nil {
		return fmt.Errorf("marshal toast failed: %w", err)
	}
	if err := m.publisher.Publish(ctx, etnotice.Channel(toast.CartID), string(payload)); err != nil {
		return fmt.Errorf("publish toast failed: %w", err)
	}
	return nil
}

// Wait blocks until the next toast of cartID or timeout. A timeout yields
// errorx.ErrNoToast.
func (m *NoticeModule) Wait(ctx context.Context, cartID string, timeout time.Duration) (*etnotice.Toast, error) {
	payload, err := m.publisher.Subscribe(ctx, etnotice.Channel(cartID), timeout)
	if errors.Is(err, context.DeadlineExceeded) {
		return nil, errorx.ErrNoToast
	}
	if err != nil {
		return nil, fmt.Errorf("wait toast failed: %w", err)
	}

	var toast etnotice.Toast
	if err := json.Unmarshal([]byte(payload), &toast); err != nil {
		return nil, fmt.Errorf("decode toast failed: %w", err)
	}
	return &toast, nil
}
