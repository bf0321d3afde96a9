package slots

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemoryRepo keeps slots in process memory. The mutex makes Claim atomic.
type MemoryRepo struct {
	mu    sync.Mutex
	slots map[int64]*Slot
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{slots: make(map[int64]*Slot)}
}

func key(t time.Time) int64 {
	return t.UnixNano()
}

func (r *MemoryRepo) Insert(_ context.Context, times []time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range times {
		if _, ok := r.slots[key(t)]; !ok {
			r.slots[key(t)] = &Slot{Time: t.UTC()}
		}
	}
	return nil
}

func (r *MemoryRepo) PruneBefore(_ context.Context, cutoff time.Time) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int64
	for k, s := range r.slots {
		if s.Time.Before(cutoff) {
			delete(r.slots, k)
			n++
		}
	}
	return n, nil
}

func (r *MemoryRepo) ListAvailable(_ context.Context, after time.Time, limit int) ([]Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Slot
	for _, s := range r.slots {
		if !s.IsBooked && s.Time.After(after) {
			out = append(out, *s)
		}
	}
	sortSlots(out)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *MemoryRepo) Claim(_ context.Context, at time.Time, conversationID string, now time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[key(at)]
	if !ok || s.IsBooked || !s.Time.After(now) {
		return false, nil
	}
	s.IsBooked = true
	s.HeldBy = conversationID
	return true, nil
}

func (r *MemoryRepo) ListUnreminded(_ context.Context, from, to time.Time) ([]Slot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Slot
	for _, s := range r.slots {
		if s.IsBooked && !s.Reminded && !s.Time.Before(from) && s.Time.Before(to) {
			out = append(out, *s)
		}
	}
	sortSlots(out)
	return out, nil
}

func (r *MemoryRepo) MarkReminded(_ context.Context, at time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[key(at)]
	if !ok || !s.IsBooked || s.Reminded {
		return false, nil
	}
	s.Reminded = true
	return true, nil
}

// Get returns a copy of the slot at t; used by tests and diagnostics.
func (r *MemoryRepo) Get(t time.Time) (Slot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.slots[key(t)]
	if !ok {
		return Slot{}, false
	}
	return *s, true
}

func (r *MemoryRepo) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.slots)
}

func sortSlots(s []Slot) {
	sort.Slice(s, func(i, j int) bool { return s[i].Time.Before(s[j].Time) })
}
