package bot

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]Session
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{sessions: make(map[string]Session)}
}

func (m *MemorySessionStore) Get(_ context.Context, conversationID string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	s, ok := m.sessions[conversationID]
	if !ok {
		return nil, nil
	}
	s.Scratch.Offered = append([]time.Time(nil), s.Scratch.Offered...)
	return &s, nil
}

func (m *MemorySessionStore) Save(_ context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	cp := *s
	cp.Scratch.Offered = append([]time.Time(nil), s.Scratch.Offered...)
	cp.UpdatedAt = time.Now().UTC()
	m.sessions[s.ConversationID] = cp
	return nil
}

func (m *MemorySessionStore) Delete(_ context.Context, conversationID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, conversationID)
	return nil
}

type MemoryProfileStore struct {
	mu       sync.RWMutex
	profiles map[string]Profile
}

func NewMemoryProfileStore() *MemoryProfileStore {
	return &MemoryProfileStore{profiles: make(map[string]Profile)}
}

func (m *MemoryProfileStore) Get(_ context.Context, conversationID string) (*Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	p, ok := m.profiles[conversationID]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (m *MemoryProfileStore) Upsert(_ context.Context, p *Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.profiles[p.ConversationID] = *p
	return nil
}

func (m *MemoryProfileStore) List(_ context.Context) ([]Profile, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]Profile, 0, len(m.profiles))
	for _, p := range m.profiles {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ConversationID < out[j].ConversationID })
	return out, nil
}

type MemoryAppointmentStore struct {
	mu           sync.RWMutex
	appointments []Appointment
}

func NewMemoryAppointmentStore() *MemoryAppointmentStore {
	return &MemoryAppointmentStore{}
}

func (m *MemoryAppointmentStore) Create(_ context.Context, a *Appointment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	m.appointments = append(m.appointments, *a)
	return nil
}

func (m *MemoryAppointmentStore) GetBySlot(_ context.Context, slotTime time.Time) (*Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, a := range m.appointments {
		if a.SlotTime.Equal(slotTime) {
			cp := a
			return &cp, nil
		}
	}
	return nil, nil
}

func (m *MemoryAppointmentStore) ListUpcoming(_ context.Context, conversationID string, after time.Time) ([]Appointment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []Appointment
	for _, a := range m.appointments {
		if a.ConversationID == conversationID && a.SlotTime.After(after) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].SlotTime.Before(out[j].SlotTime) })
	return out, nil
}
