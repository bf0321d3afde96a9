package slots

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

const labelLayout = "15:04 02/01"

// Label is the abbreviated text shown on the slot button: time of day with a day/month suffix.
func Label(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(labelLayout)
}

// Match resolves a user reply against the slots that were offered. The
// reply may be the full label, the time of day alone ("10:00", "10") or
// carry the date in either order. When several offered slots fit, the
// earliest wins.
func Match(input string, offered []time.Time, loc *time.Location) (time.Time, bool) {
	q, ok := parseReply(input)
	if !ok {
		return time.Time{}, false
	}

	sorted := append([]time.Time(nil), offered...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	for _, t := range sorted {
		lt := t.In(loc)
		if lt.Hour() != q.hour || lt.Minute() != q.minute {
			continue
		}
		if q.hasDate && (lt.Day() != q.day || int(lt.Month()) != q.month) {
			continue
		}
		return t, true
	}
	return time.Time{}, false
}

type reply struct {
	hour, minute int
	day, month   int
	hasDate      bool
}

func parseReply(input string) (reply, bool) {
	s := normalizeDigits(input)
	s = strings.Map(func(r rune) rune {
		if (r >= '0' && r <= '9') || r == ':' || r == '/' {
			return r
		}
		return ' '
	}, s)

	var q reply
	var hasTime bool
	for _, tok := range strings.Fields(s) {
		switch {
		case strings.Contains(tok, "/"):
			d, m, ok := splitPair(tok, "/")
			if !ok || q.hasDate || d < 1 || d > 31 || m < 1 || m > 12 {
				return reply{}, false
			}
			q.day, q.month, q.hasDate = d, m, true
		case strings.Contains(tok, ":"):
			h, m, ok := splitPair(tok, ":")
			if !ok || hasTime || h > 23 || m > 59 {
				return reply{}, false
			}
			q.hour, q.minute, hasTime = h, m, true
		default:
			h, err := strconv.Atoi(tok)
			if err != nil || hasTime || h > 23 {
				return reply{}, false
			}
			q.hour, hasTime = h, true
		}
	}
	return q, hasTime
}

func splitPair(tok, sep string) (int, int, bool) {
	a, b, ok := strings.Cut(tok, sep)
	if !ok {
		return 0, 0, false
	}
	x, err1 := strconv.Atoi(a)
	y, err2 := strconv.Atoi(b)
	if err1 != nil || err2 != nil || x < 0 || y < 0 {
		return 0, 0, false
	}
	return x, y, true
}

// normalizeDigits maps Persian and Arabic-Indic digits to ASCII.
func normalizeDigits(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= '۰' && r <= '۹':
			return '0' + (r - '۰')
		case r >= '٠' && r <= '٩':
			return '0' + (r - '٠')
		}
		return r
	}, s)
}
