package bot

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/events"
	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

func (s *service) startBooking(ctx context.Context, prof *Profile) error {
	lang := prof.Language
	sess := &Session{
		ConversationID: prof.ConversationID,
		Flow:           FlowBooking,
		Step:           StepSelectingService,
		Scratch:        Scratch{Language: lang, Name: prof.Name},
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return s.fail(ctx, prof.ConversationID, lang, fmt.Errorf("save session: %w", err))
	}
	return s.reply(ctx, prof.ConversationID, salute(prof, i18n.Localize(i18n.KeyBookingAskService, lang)), cancelKeyboard(lang))
}

func (s *service) handleBooking(ctx context.Context, ev Event, sess *Session, prof *Profile) error {
	lang := prof.Language

	if commands.IsCancel(ev.Text) {
		if err := s.sessions.Delete(ctx, ev.ConversationID); err != nil {
			return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("delete session: %w", err))
		}
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyBookingCancelled, lang), mainKeyboard(lang))
	}

	if ev.Text == "" {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyBookingInvalid, lang), s.stepKeyboard(sess, lang))
	}

	switch sess.Step {
	case StepSelectingService:
		sess.Scratch.Service = ev.Text
		sess.Step = StepSelectingDoctor
		if err := s.sessions.Save(ctx, sess); err != nil {
			return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("save session: %w", err))
		}
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyBookingAskDoctor, lang), doctorKeyboard(lang))

	case StepSelectingDoctor:
		sess.Scratch.Doctor = ev.Text
		return s.offerSlots(ctx, sess, lang, i18n.KeyBookingChooseSlot)

	default:
		return s.pickSlot(ctx, ev, sess, prof)
	}
}

func (s *service) stepKeyboard(sess *Session, lang i18n.Lang) *Keyboard {
	switch sess.Step {
	case StepSelectingDoctor:
		return doctorKeyboard(lang)
	case StepSelectingSlot:
		return slotKeyboard(sess.Scratch.Offered, s.slots.Location(), lang)
	}
	return cancelKeyboard(lang)
}

// offerSlots lists current availability and remembers exactly what was shown.
func (s *service) offerSlots(ctx context.Context, sess *Session, lang i18n.Lang, prompt i18n.Key) error {
	avail, err := s.slots.ListAvailable(ctx, s.opts.SlotListLimit)
	if err != nil {
		return s.fail(ctx, sess.ConversationID, lang, fmt.Errorf("list slots: %w", err))
	}

	if len(avail) == 0 {
		if err := s.sessions.Delete(ctx, sess.ConversationID); err != nil {
			logger.FromContext(ctx).Error("delete session", zap.Error(err))
		}
		return s.reply(ctx, sess.ConversationID, i18n.Localize(i18n.KeyBookingNoSlots, lang), mainKeyboard(lang))
	}

	offered := make([]time.Time, len(avail))
	for i, sl := range avail {
		offered[i] = sl.Time
	}
	sess.Scratch.Offered = offered
	sess.Step = StepSelectingSlot
	if err := s.sessions.Save(ctx, sess); err != nil {
		return s.fail(ctx, sess.ConversationID, lang, fmt.Errorf("save session: %w", err))
	}
	return s.reply(ctx, sess.ConversationID, i18n.Localize(prompt, lang), slotKeyboard(offered, s.slots.Location(), lang))
}

func (s *service) pickSlot(ctx context.Context, ev Event, sess *Session, prof *Profile) error {
	lang := prof.Language
	loc := s.slots.Location()

	at, ok := slots.Match(ev.Text, sess.Scratch.Offered, loc)
	if !ok {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyBookingInvalidSlot, lang), slotKeyboard(sess.Scratch.Offered, loc, lang))
	}

	won, err := s.slots.Claim(ctx, at, ev.ConversationID)
	if err != nil {
		return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("claim slot: %w", err))
	}
	if !won {
		logger.FromContext(ctx).Info("slot claim lost", zap.Time("slot", at))
		return s.offerSlots(ctx, sess, lang, i18n.KeyBookingSlotTaken)
	}
	return s.completeBooking(ctx, sess, prof, at)
}

// completeBooking runs after a won claim. Each step is best effort; the
// slot already belongs to the user, so only the confirmation can fail the event.
func (s *service) completeBooking(ctx context.Context, sess *Session, prof *Profile, at time.Time) error {
	log := logger.FromContext(ctx)
	lang := prof.Language

	sess.Step = StepBooked
	sess.Scratch.Slot = &at
	if err := s.sessions.Save(ctx, sess); err != nil {
		log.Warn("save booked session", zap.Error(err))
	}

	appt := &Appointment{
		ID:             uuid.NewString(),
		ConversationID: prof.ConversationID,
		SlotTime:       at,
		Service:        sess.Scratch.Service,
		Doctor:         sess.Scratch.Doctor,
		CreatedAt:      s.slots.Now(),
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		log.Error("create appointment", zap.Error(err), zap.Time("slot", at))
	}

	if err := s.sessions.Delete(ctx, prof.ConversationID); err != nil {
		log.Error("delete booking session", zap.Error(err))
	}

	label := slots.Label(at, s.slots.Location())
	log.Info("appointment booked", zap.String("appointment_id", appt.ID), zap.Time("slot", at))

	err := s.reply(ctx, prof.ConversationID,
		salute(prof, i18n.Localize(i18n.KeyBookingConfirmed, lang, appt.Service, appt.Doctor, label)),
		mainKeyboard(lang))

	s.notifyAdmin(ctx, i18n.Localize(i18n.KeyAdminBooking, i18n.Fallback,
		prof.Name, prof.Phone, appt.Service, appt.Doctor, label, prof.ConversationID))

	s.publish(ctx, events.AppointmentBooked, events.AppointmentBookedEvent{
		AppointmentID:  appt.ID,
		ConversationID: appt.ConversationID,
		SlotTime:       appt.SlotTime,
		Service:        appt.Service,
		Doctor:         appt.Doctor,
	})
	return err
}
