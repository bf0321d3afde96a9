package slots

import (
	"context"
	"time"
)

type Slot struct {
	Time     time.Time
	IsBooked bool
	HeldBy   string // set iff IsBooked
	Reminded bool
}

// Repo is the backing store of the slot table. Claim must be a single
// conditional update: it reports true only for the call that flipped
// is_booked from false to true.
type Repo interface {
	Insert(ctx context.Context, times []time.Time) error
	PruneBefore(ctx context.Context, cutoff time.Time) (int64, error)
	ListAvailable(ctx context.Context, after time.Time, limit int) ([]Slot, error)
	Claim(ctx context.Context, at time.Time, conversationID string, now time.Time) (bool, error)
	ListUnreminded(ctx context.Context, from, to time.Time) ([]Slot, error)
	MarkReminded(ctx context.Context, at time.Time) (bool, error)
}
