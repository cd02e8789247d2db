package purchase

import (
	"context"
	"errors"
)

// ErrNoPendingIntent is returned when no purchase draft is outstanding.
var ErrNoPendingIntent = errors.New("no pending purchase intent")

// IntentStore persists at most one outstanding purchase draft per session.
// A multi-purchase queue is deliberately out of scope.
type IntentStore interface {
	SavePending(ctx context.Context, intent *Intent) error
	GetPending(ctx context.Context) (*Intent, error)
	ClearPending(ctx context.Context) error
}
