package ports

import "context"

// Notifier delivers user-facing notifications. Delivery is fire-and-forget at
// the engine boundary: the engine ignores the returned error, which exists for
// adapter-level diagnostics only.
type Notifier interface {
	Send(ctx context.Context, userID int64, text string) error
}
