// Package reminder notifies patients the day before their appointment.
package reminder

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/bot"
	"github.com/Vovarama1992/dental-assistant-bot/internal/events"
	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

// SlotSource is the part of the slot table the scanner reads and marks.
type SlotSource interface {
	DueTomorrow(ctx context.Context) ([]slots.Slot, error)
	MarkReminded(ctx context.Context, at time.Time) (bool, error)
	Location() *time.Location
}

type Scanner struct {
	slots        SlotSource
	profiles     bot.ProfileStore
	appointments bot.AppointmentStore
	outbound     bot.Outbound
	events       events.Publisher
}

func NewScanner(src SlotSource, profiles bot.ProfileStore, appointments bot.AppointmentStore, outbound bot.Outbound, pub events.Publisher) *Scanner {
	if pub == nil {
		pub = events.Nop{}
	}
	return &Scanner{
		slots:        src,
		profiles:     profiles,
		appointments: appointments,
		outbound:     outbound,
		events:       pub,
	}
}

// Scan reminds every booking of tomorrow that has not been reminded yet.
// A slot is marked only after its message was sent, so a failed send is
// retried on the next run. It returns the number of reminders sent.
func (s *Scanner) Scan(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	due, err := s.slots.DueTomorrow(ctx)
	if err != nil {
		return 0, fmt.Errorf("list due slots: %w", err)
	}

	sent := 0
	for _, sl := range due {
		if ctx.Err() != nil {
			return sent, ctx.Err()
		}
		if err := s.remind(ctx, sl); err != nil {
			log.Warn("reminder failed", zap.String("conversation_id", sl.HeldBy), zap.Time("slot", sl.Time), zap.Error(err))
			continue
		}
		sent++
	}

	log.Info("reminder scan finished", zap.Int("due", len(due)), zap.Int("sent", sent))
	return sent, nil
}

func (s *Scanner) remind(ctx context.Context, sl slots.Slot) error {
	lang := i18n.Fallback
	prof, err := s.profiles.Get(ctx, sl.HeldBy)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}
	if prof != nil {
		lang = prof.Language
	}

	service := "-"
	appt, err := s.appointments.GetBySlot(ctx, sl.Time)
	if err != nil {
		return fmt.Errorf("load appointment: %w", err)
	}
	if appt != nil && appt.Service != "" {
		service = appt.Service
	}

	text := i18n.Localize(i18n.KeyReminder, lang, sl.Time.In(s.slots.Location()).Format("15:04"), service)
	if err := s.outbound.SendMessage(ctx, sl.HeldBy, text, nil); err != nil {
		return fmt.Errorf("send: %w", err)
	}

	// a crash here resends once on the next run
	if _, err := s.slots.MarkReminded(ctx, sl.Time); err != nil {
		return fmt.Errorf("mark reminded: %w", err)
	}

	if err := s.events.Publish(ctx, events.ReminderSent, events.ReminderSentEvent{
		ConversationID: sl.HeldBy,
		SlotTime:       sl.Time,
	}); err != nil {
		logger.FromContext(ctx).Warn("publish reminder event", zap.Error(err))
	}
	return nil
}
