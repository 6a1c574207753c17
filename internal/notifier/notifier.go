package notifier

import (
	"context"
)

// Notifier delivers an already formatted message to the configured group
// chat. Delivery is best-effort: no retries, and the caller is expected to
// bound the call with a timeout.
type Notifier interface {
	Deliver(ctx context.Context, text string) error
}
