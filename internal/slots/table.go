package slots

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

type Table struct {
	repo  Repo
	sched Schedule
	now   func() time.Time
}

func NewTable(repo Repo, sched Schedule) *Table {
	return &Table{repo: repo, sched: sched, now: time.Now}
}

// WithClock replaces the time source; used by tests.
func (t *Table) WithClock(now func() time.Time) *Table {
	t.now = now
	return t
}

func (t *Table) Location() *time.Location {
	return t.sched.loc()
}

func (t *Table) Now() time.Time {
	return t.now()
}

// EnsureFutureSlots inserts any missing slot of the horizon and prunes
// slots dated before yesterday. Safe to call on every read.
func (t *Table) EnsureFutureSlots(ctx context.Context) error {
	now := t.now()
	if err := t.repo.Insert(ctx, t.sched.Times(now)); err != nil {
		return fmt.Errorf("insert slots: %w", err)
	}
	if _, err := t.repo.PruneBefore(ctx, t.sched.PruneCutoff(now)); err != nil {
		return fmt.Errorf("prune slots: %w", err)
	}
	return nil
}

// ListAvailable returns unbooked future slots, ascending, capped at limit.
func (t *Table) ListAvailable(ctx context.Context, limit int) ([]Slot, error) {
	if err := t.EnsureFutureSlots(ctx); err != nil {
		// stale horizon still leaves earlier slots bookable
		logger.FromContext(ctx).Warn("ensure future slots", zap.Error(err))
	}
	if limit <= 0 {
		limit = 10
	}
	return t.repo.ListAvailable(ctx, t.now(), limit)
}

// Claim books the slot for conversationID. It returns false when the slot
// is already booked (by anyone) or already in the past.
func (t *Table) Claim(ctx context.Context, at time.Time, conversationID string) (bool, error) {
	return t.repo.Claim(ctx, at, conversationID, t.now())
}

// DueTomorrow returns booked, not yet reminded slots of tomorrow.
func (t *Table) DueTomorrow(ctx context.Context) ([]Slot, error) {
	from, to := t.sched.Tomorrow(t.now())
	return t.repo.ListUnreminded(ctx, from, to)
}

func (t *Table) MarkReminded(ctx context.Context, at time.Time) (bool, error) {
	return t.repo.MarkReminded(ctx, at)
}
