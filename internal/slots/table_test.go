package slots_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

var gst = time.FixedZone("GST", 4*60*60)

func newTable(now time.Time) (*slots.Table, *slots.MemoryRepo) {
	repo := slots.NewMemoryRepo()
	table := slots.NewTable(repo, slots.Schedule{
		Location:    gst,
		Hours:       []int{14, 10, 12},
		HorizonDays: 7,
	}).WithClock(func() time.Time { return now })
	return table, repo
}

func TestEnsureFutureSlotsIsIdempotent(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, gst)
	table, repo := newTable(now)

	if err := table.EnsureFutureSlots(ctx); err != nil {
		t.Fatalf("first ensure: %v", err)
	}
	first := repo.Len()
	if err := table.EnsureFutureSlots(ctx); err != nil {
		t.Fatalf("second ensure: %v", err)
	}

	if first != 21 || repo.Len() != first {
		t.Fatalf("expected 21 slots both times, got %d then %d", first, repo.Len())
	}
}

func TestEnsureFutureSlotsPrunesOldSlots(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, gst)
	table, repo := newTable(now)

	old := time.Date(2026, 10, 17, 10, 0, 0, 0, gst)
	yesterday := time.Date(2026, 10, 18, 10, 0, 0, 0, gst)
	_ = repo.Insert(ctx, []time.Time{old, yesterday})

	if err := table.EnsureFutureSlots(ctx); err != nil {
		t.Fatalf("ensure: %v", err)
	}
	if _, ok := repo.Get(old); ok {
		t.Fatal("slot from two days ago should be pruned")
	}
	if _, ok := repo.Get(yesterday); !ok {
		t.Fatal("yesterday's slot should be kept")
	}
}

func TestListAvailableOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, gst)
	table, _ := newTable(now)

	got, err := table.ListAvailable(ctx, 3)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 slots, got %d", len(got))
	}
	for i, h := range []int{10, 12, 14} {
		want := time.Date(2026, 10, 20, h, 0, 0, 0, gst)
		if !got[i].Time.Equal(want) {
			t.Fatalf("slot %d: want %s, got %s", i, want, got[i].Time)
		}
	}

	ok, _ := table.Claim(ctx, got[0].Time, "42")
	if !ok {
		t.Fatal("claim should succeed")
	}
	after, _ := table.ListAvailable(ctx, 3)
	if after[0].Time.Equal(got[0].Time) {
		t.Fatal("booked slot must not be listed")
	}
}

func TestClaimIsExclusiveUnderConcurrency(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, gst)
	table, repo := newTable(now)
	_ = table.EnsureFutureSlots(ctx)

	target := time.Date(2026, 10, 20, 10, 0, 0, 0, gst)

	var wins int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ok, err := table.Claim(ctx, target, fmt.Sprint(i))
			if err != nil {
				t.Errorf("claim: %v", err)
			}
			if ok {
				atomic.AddInt32(&wins, 1)
			}
		}(i)
	}
	wg.Wait()

	if wins != 1 {
		t.Fatalf("expected exactly one successful claim, got %d", wins)
	}
	s, _ := repo.Get(target)
	if !s.IsBooked || s.HeldBy == "" {
		t.Fatalf("slot should be held, got %+v", s)
	}
}

func TestClaimRejectsRetryAndPast(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, gst)
	table, repo := newTable(now)
	_ = table.EnsureFutureSlots(ctx)

	target := time.Date(2026, 10, 20, 12, 0, 0, 0, gst)
	if ok, _ := table.Claim(ctx, target, "42"); !ok {
		t.Fatal("first claim should succeed")
	}
	if ok, _ := table.Claim(ctx, target, "42"); ok {
		t.Fatal("stale retry by the same user must fail")
	}

	past := time.Date(2026, 10, 19, 8, 0, 0, 0, gst)
	_ = repo.Insert(ctx, []time.Time{past})
	if ok, _ := table.Claim(ctx, past, "42"); ok {
		t.Fatal("past slot must not be claimable")
	}

	if ok, _ := table.Claim(ctx, time.Date(2030, 1, 1, 10, 0, 0, 0, gst), "42"); ok {
		t.Fatal("unknown slot must not be claimable")
	}
}

func TestDueTomorrowAndMarkReminded(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 10, 19, 20, 0, 0, 0, gst)
	table, _ := newTable(now)
	_ = table.EnsureFutureSlots(ctx)

	tomorrow := time.Date(2026, 10, 20, 14, 0, 0, 0, gst)
	later := time.Date(2026, 10, 21, 10, 0, 0, 0, gst)
	_, _ = table.Claim(ctx, tomorrow, "1")
	_, _ = table.Claim(ctx, later, "2")

	due, err := table.DueTomorrow(ctx)
	if err != nil {
		t.Fatalf("due: %v", err)
	}
	if len(due) != 1 || !due[0].Time.Equal(tomorrow) || due[0].HeldBy != "1" {
		t.Fatalf("unexpected due slots %+v", due)
	}

	if ok, _ := table.MarkReminded(ctx, tomorrow); !ok {
		t.Fatal("first mark should succeed")
	}
	if ok, _ := table.MarkReminded(ctx, tomorrow); ok {
		t.Fatal("second mark should be a no-op")
	}
	due, _ = table.DueTomorrow(ctx)
	if len(due) != 0 {
		t.Fatalf("reminded slot must be excluded, got %+v", due)
	}
}
