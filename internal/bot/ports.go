package bot

import (
	"context"
	"errors"
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/ai"
	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

var (
	ErrTransport     = errors.New("transport unavailable")
	ErrImageNotFound = errors.New("image not found")
)

// Profile is the registered identity of a conversation. Phone is only
// ever taken from a platform-attested contact owned by the conversation.
type Profile struct {
	ConversationID string
	Name           string
	Phone          string
	Language       i18n.Lang
}

type Appointment struct {
	ID             string
	ConversationID string
	SlotTime       time.Time
	Service        string
	Doctor         string
	CreatedAt      time.Time
}

// Event is one inbound message. Exactly one of Text, Contact, Image is
// normally set.
type Event struct {
	ConversationID string
	LanguageCode   string
	Text           string
	Contact        *Contact
	Image          *ImageRef
}

type Contact struct {
	PhoneNumber string
	OwnerID     string
}

type ImageRef struct {
	FileID  string
	Caption string
}

func (e Event) empty() bool {
	return e.Text == "" && e.Contact == nil && e.Image == nil
}

type Keyboard struct {
	Rows    [][]Button
	OneTime bool
	Remove  bool
}

type Button struct {
	Text           string
	RequestContact bool
}

// Outbound is the messaging transport.
type Outbound interface {
	SendMessage(ctx context.Context, chatID string, text string, kb *Keyboard) error
	DownloadImage(ctx context.Context, fileID string) (ai.Image, error)
}

// Stores return (nil, nil) when the record does not exist.
type SessionStore interface {
	Get(ctx context.Context, conversationID string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, conversationID string) error
}

type ProfileStore interface {
	Get(ctx context.Context, conversationID string) (*Profile, error)
	Upsert(ctx context.Context, p *Profile) error
	List(ctx context.Context) ([]Profile, error)
}

type AppointmentStore interface {
	Create(ctx context.Context, a *Appointment) error
	GetBySlot(ctx context.Context, slotTime time.Time) (*Appointment, error)
	ListUpcoming(ctx context.Context, conversationID string, after time.Time) ([]Appointment, error)
}

type SlotTable interface {
	ListAvailable(ctx context.Context, limit int) ([]slots.Slot, error)
	Claim(ctx context.Context, at time.Time, conversationID string) (bool, error)
	Location() *time.Location
	Now() time.Time
}

// Service applies one inbound event to the conversation state.
type Service interface {
	HandleEvent(ctx context.Context, ev Event) error
}
