package slots

import (
	"sort"
	"time"
)

// Schedule describes the rolling horizon of offerable slots.
type Schedule struct {
	Location    *time.Location
	Hours       []int // hours of the day in Location
	HorizonDays int   // slots are materialized for day offsets 1..HorizonDays
}

func (s Schedule) loc() *time.Location {
	if s.Location == nil {
		return time.UTC
	}
	return s.Location
}

func (s Schedule) startOfDay(now time.Time, offset int) time.Time {
	n := now.In(s.loc())
	return time.Date(n.Year(), n.Month(), n.Day()+offset, 0, 0, 0, 0, s.loc())
}

// Times lists every slot of the horizon, ascending.
func (s Schedule) Times(now time.Time) []time.Time {
	hours := append([]int(nil), s.Hours...)
	sort.Ints(hours)

	out := make([]time.Time, 0, s.HorizonDays*len(hours))
	for d := 1; d <= s.HorizonDays; d++ {
		day := s.startOfDay(now, d)
		for _, h := range hours {
			out = append(out, time.Date(day.Year(), day.Month(), day.Day(), h, 0, 0, 0, s.loc()))
		}
	}
	return out
}

// PruneCutoff is the start of yesterday; older slots are deleted.
func (s Schedule) PruneCutoff(now time.Time) time.Time {
	return s.startOfDay(now, -1)
}

// Tomorrow returns [start of tomorrow, start of the day after) in the clinic timezone.
func (s Schedule) Tomorrow(now time.Time) (time.Time, time.Time) {
	return s.startOfDay(now, 1), s.startOfDay(now, 2)
}
