package bot

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
)

type sessionRepo struct {
	db *sql.DB
}

func NewSessionRepo(db *sql.DB) SessionStore {
	return &sessionRepo{db: db}
}

func (r *sessionRepo) Get(ctx context.Context, conversationID string) (*Session, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var s Session
	var flow, step string
	var scratch []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT conversation_id, flow, step, scratch, updated_at
		FROM sessions
		WHERE conversation_id = $1
	`, conversationID).Scan(&s.ConversationID, &flow, &step, &scratch, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	s.Flow = Flow(flow)
	s.Step = Step(step)
	if err := json.Unmarshal(scratch, &s.Scratch); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *sessionRepo) Save(ctx context.Context, s *Session) error {
	scratch, err := json.Marshal(s.Scratch)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO sessions (conversation_id, flow, step, scratch, updated_at)
		VALUES ($1, $2, $3, $4::jsonb, now())
		ON CONFLICT (conversation_id) DO UPDATE
		SET flow = EXCLUDED.flow,
		    step = EXCLUDED.step,
		    scratch = EXCLUDED.scratch,
		    updated_at = now()
	`, s.ConversationID, string(s.Flow), string(s.Step), string(scratch))
	return err
}

func (r *sessionRepo) Delete(ctx context.Context, conversationID string) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE conversation_id = $1`, conversationID)
	return err
}

type profileRepo struct {
	db *sql.DB
}

func NewProfileRepo(db *sql.DB) ProfileStore {
	return &profileRepo{db: db}
}

func (r *profileRepo) Get(ctx context.Context, conversationID string) (*Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var p Profile
	var lang string
	err := r.db.QueryRowContext(ctx, `
		SELECT conversation_id, name, phone, language
		FROM profiles
		WHERE conversation_id = $1
	`, conversationID).Scan(&p.ConversationID, &p.Name, &p.Phone, &lang)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	p.Language = i18n.Lang(lang)
	return &p, nil
}

func (r *profileRepo) Upsert(ctx context.Context, p *Profile) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO profiles (conversation_id, name, phone, language)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (conversation_id) DO UPDATE
		SET name = EXCLUDED.name,
		    phone = EXCLUDED.phone,
		    language = EXCLUDED.language,
		    updated_at = now()
	`, p.ConversationID, p.Name, p.Phone, string(p.Language))
	return err
}

func (r *profileRepo) List(ctx context.Context) ([]Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT conversation_id, name, phone, language
		FROM profiles
		ORDER BY created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Profile
	for rows.Next() {
		var p Profile
		var lang string
		if err := rows.Scan(&p.ConversationID, &p.Name, &p.Phone, &lang); err != nil {
			return nil, err
		}
		p.Language = i18n.Lang(lang)
		out = append(out, p)
	}
	return out, rows.Err()
}

type appointmentRepo struct {
	db *sql.DB
}

func NewAppointmentRepo(db *sql.DB) AppointmentStore {
	return &appointmentRepo{db: db}
}

func (r *appointmentRepo) Create(ctx context.Context, a *Appointment) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	return r.db.QueryRowContext(ctx, `
		INSERT INTO appointments (id, conversation_id, slot_time, service, doctor)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, a.ID, a.ConversationID, a.SlotTime, a.Service, a.Doctor).Scan(&a.CreatedAt)
}

func (r *appointmentRepo) GetBySlot(ctx context.Context, slotTime time.Time) (*Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var a Appointment
	err := r.db.QueryRowContext(ctx, `
		SELECT id, conversation_id, slot_time, service, doctor, created_at
		FROM appointments
		WHERE slot_time = $1
	`, slotTime).Scan(&a.ID, &a.ConversationID, &a.SlotTime, &a.Service, &a.Doctor, &a.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *appointmentRepo) ListUpcoming(ctx context.Context, conversationID string, after time.Time) ([]Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT id, conversation_id, slot_time, service, doctor, created_at
		FROM appointments
		WHERE conversation_id = $1 AND slot_time > $2
		ORDER BY slot_time ASC
	`, conversationID, after)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Appointment
	for rows.Next() {
		var a Appointment
		if err := rows.Scan(&a.ID, &a.ConversationID, &a.SlotTime, &a.Service, &a.Doctor, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
