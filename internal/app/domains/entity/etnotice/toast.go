package etnotice

import (
	"errors"
	"time"
)

// Defaults shown when a caller supplies nothing.
const (
	DefaultMessage  = "장바구니에 담겼습니다 ✅"
	DefaultDuration = 1800 * time.Millisecond
)

var ErrInvalidCartID = errors.New("toast needs a cart ID")

// Toast is a transient confirmation shown to the shopper.
type Toast struct {
	ID         string    `json:"id"`
	CartID     string    `json:"cart_id"`
	Message    string    `json:"message"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewToast creates a toast; an empty message or non-positive duration take
// the defaults.
func NewToast(id, cartID, message string, duration time.Duration) (*Toast, error) {
	if cartID == "" {
		return nil, ErrInvalidCartID
	}
	if message == "" {
		message = DefaultMessage
	}
	if duration <= 0 {
		duration = DefaultDuration
	}
	return &Toast{
		ID:         id,
		CartID:     cartID,
		Message:    message,
		DurationMs: duration.Milliseconds(),
		CreatedAt:  time.Now(),
	}, nil
}

// Duration returns how long the toast stays on screen.
func (t *Toast) Duration() time.Duration {
	return time.Duration(t.DurationMs) * time.Millisecond
}

// Channel is the pub/sub channel toasts of cartID travel on.
func Channel(cartID string) string {
	return "cart_toast:" + cartID
}
