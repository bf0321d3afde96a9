package slots

import (
	"context"
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) Insert(ctx context.Context, times []time.Time) error {
	if len(times) == 0 {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	utc := make([]string, len(times))
	for i, t := range times {
		utc[i] = t.UTC().Format(time.RFC3339)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO slots (slot_time)
		SELECT unnest($1::timestamptz[])
		ON CONFLICT (slot_time) DO NOTHING
	`, pq.Array(utc))
	return err
}

func (r *repo) PruneBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM slots WHERE slot_time < $1`, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *repo) ListAvailable(ctx context.Context, after time.Time, limit int) ([]Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT slot_time, is_booked, held_by, reminded
		FROM slots
		WHERE NOT is_booked AND slot_time > $1
		ORDER BY slot_time ASC
		LIMIT $2
	`, after, limit)
	if err != nil {
		return nil, err
	}
	return scanSlots(rows)
}

// Claim is the only place double-booking is prevented: the WHERE clause
// and the row count make it a compare-and-swap on is_booked.
func (r *repo) Claim(ctx context.Context, at time.Time, conversationID string, now time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE slots
		SET is_booked = true, held_by = $2
		WHERE slot_time = $1 AND NOT is_booked AND slot_time > $3
	`, at, conversationID, now)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

func (r *repo) ListUnreminded(ctx context.Context, from, to time.Time) ([]Slot, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT slot_time, is_booked, held_by, reminded
		FROM slots
		WHERE is_booked AND NOT reminded AND slot_time >= $1 AND slot_time < $2
		ORDER BY slot_time ASC
	`, from, to)
	if err != nil {
		return nil, err
	}
	return scanSlots(rows)
}

func (r *repo) MarkReminded(ctx context.Context, at time.Time) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE slots SET reminded = true
		WHERE slot_time = $1 AND is_booked AND NOT reminded
	`, at)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n == 1, err
}

func scanSlots(rows *sql.Rows) ([]Slot, error) {
	defer rows.Close()

	var out []Slot
	for rows.Next() {
		var s Slot
		var heldBy sql.NullString
		if err := rows.Scan(&s.Time, &s.IsBooked, &heldBy, &s.Reminded); err != nil {
			return nil, err
		}
		s.HeldBy = heldBy.String
		out = append(out, s)
	}
	return out, rows.Err()
}
