package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/ai"
	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

var gst = time.FixedZone("GST", 4*60*60)

type sent struct {
	chatID string
	text   string
	kb     *Keyboard
}

type fakeOutbound struct {
	mu       sync.Mutex
	messages []sent
	failFor  map[string]bool
	image    ai.Image
	imageErr error
	fetched  int
}

func (f *fakeOutbound) SendMessage(_ context.Context, chatID, text string, kb *Keyboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[chatID] {
		return errors.New("send failed")
	}
	f.messages = append(f.messages, sent{chatID: chatID, text: text, kb: kb})
	return nil
}

func (f *fakeOutbound) DownloadImage(_ context.Context, _ string) (ai.Image, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fetched++
	if f.imageErr != nil {
		return ai.Image{}, f.imageErr
	}
	return f.image, nil
}

func (f *fakeOutbound) to(chatID string) []sent {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sent
	for _, m := range f.messages {
		if m.chatID == chatID {
			out = append(out, m)
		}
	}
	return out
}

func (f *fakeOutbound) last(t *testing.T, chatID string) sent {
	t.Helper()
	msgs := f.to(chatID)
	if len(msgs) == 0 {
		t.Fatalf("no message sent to %s", chatID)
	}
	return msgs[len(msgs)-1]
}

type fakeAI struct {
	mu     sync.Mutex
	answer string
	err    error
	calls  int
}

func (f *fakeAI) CompleteText(_ context.Context, _, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

func (f *fakeAI) CompleteVision(_ context.Context, _ ai.Image, _, _ string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	subjects []string
}

func (p *fakePublisher) Publish(_ context.Context, subject string, _ any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.subjects = append(p.subjects, subject)
	return nil
}

func (p *fakePublisher) Close() error { return nil }

type harness struct {
	svc          Service
	sessions     *MemorySessionStore
	profiles     *MemoryProfileStore
	appointments *MemoryAppointmentStore
	repo         *slots.MemoryRepo
	table        *slots.Table
	out          *fakeOutbound
	ai           *fakeAI
	pub          *fakePublisher
	now          time.Time
}

// newHarness wires the service over memory stores with the clock fixed
// at 09:00 GST and three slots tomorrow (10:00, 12:00, 14:00).
func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	now := time.Date(2026, 10, 19, 9, 0, 0, 0, gst)
	repo := slots.NewMemoryRepo()
	table := slots.NewTable(repo, slots.Schedule{
		Location:    gst,
		Hours:       []int{10, 12, 14},
		HorizonDays: 1,
	}).WithClock(func() time.Time { return now })

	if opts.AdminChatID == "" {
		opts.AdminChatID = "admin"
	}

	h := &harness{
		sessions:     NewMemorySessionStore(),
		profiles:     NewMemoryProfileStore(),
		appointments: NewMemoryAppointmentStore(),
		repo:         repo,
		table:        table,
		out:          &fakeOutbound{failFor: map[string]bool{}},
		ai:           &fakeAI{answer: "We are open every day."},
		pub:          &fakePublisher{},
		now:          now,
	}
	h.svc = NewService(h.sessions, h.profiles, h.appointments, table, h.ai, h.out, h.pub, opts)
	return h
}

func (h *harness) tomorrowAt(hour int) time.Time {
	return time.Date(2026, 10, 20, hour, 0, 0, 0, gst)
}

func (h *harness) register(t *testing.T, id, name string, lang i18n.Lang) *Profile {
	t.Helper()
	p := &Profile{ConversationID: id, Name: name, Phone: "+971500000000", Language: lang}
	if err := h.profiles.Upsert(context.Background(), p); err != nil {
		t.Fatal(err)
	}
	return p
}

func (h *harness) send(t *testing.T, ev Event) {
	t.Helper()
	if err := h.svc.HandleEvent(context.Background(), ev); err != nil {
		t.Fatalf("HandleEvent(%+v): %v", ev, err)
	}
}

func (h *harness) text(t *testing.T, id, text string) {
	t.Helper()
	h.send(t, Event{ConversationID: id, Text: text})
}

func (h *harness) session(t *testing.T, id string) *Session {
	t.Helper()
	s, err := h.sessions.Get(context.Background(), id)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func contains(msgs []sent, substr string) int {
	n := 0
	for _, m := range msgs {
		if strings.Contains(m.text, substr) {
			n++
		}
	}
	return n
}
