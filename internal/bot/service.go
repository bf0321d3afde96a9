package bot

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/ai"
	"github.com/Vovarama1992/dental-assistant-bot/internal/events"
	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

type Options struct {
	AdminChatID     string
	AITimeout       time.Duration
	AIRatePerMinute int
	SlotListLimit   int
}

type service struct {
	sessions     SessionStore
	profiles     ProfileStore
	appointments AppointmentStore
	slots        SlotTable
	ai           ai.Completer
	outbound     Outbound
	events       events.Publisher
	opts         Options
	limiter      *limiter
}

func NewService(
	sessions SessionStore,
	profiles ProfileStore,
	appointments AppointmentStore,
	slotTable SlotTable,
	aiClient ai.Completer,
	outbound Outbound,
	publisher events.Publisher,
	opts Options,
) Service {
	if opts.AITimeout <= 0 {
		opts.AITimeout = 30 * time.Second
	}
	if opts.SlotListLimit <= 0 {
		opts.SlotListLimit = 10
	}
	if publisher == nil {
		publisher = events.Nop{}
	}
	return &service{
		sessions:     sessions,
		profiles:     profiles,
		appointments: appointments,
		slots:        slotTable,
		ai:           aiClient,
		outbound:     outbound,
		events:       publisher,
		opts:         opts,
		limiter:      newLimiter(opts.AIRatePerMinute),
	}
}

// HandleEvent applies a single transition. The returned error is non-nil
// only when the primary reply could not be delivered or state could not be read.
func (s *service) HandleEvent(ctx context.Context, ev Event) (err error) {
	ev.Text = strings.TrimSpace(ev.Text)
	if ev.ConversationID == "" || ev.empty() {
		return nil
	}

	ctx = logger.WithConversation(ctx, ev.ConversationID)
	log := logger.FromContext(ctx)

	defer func() {
		if r := recover(); r != nil {
			log.Error("panic handling event", zap.Any("panic", r), zap.ByteString("stack", debug.Stack()))
			err = fmt.Errorf("panic handling event: %v", r)
		}
	}()

	sess, err := s.sessions.Get(ctx, ev.ConversationID)
	if err != nil {
		return s.fail(ctx, ev.ConversationID, i18n.Match(ev.LanguageCode), fmt.Errorf("load session: %w", err))
	}
	prof, err := s.profiles.Get(ctx, ev.ConversationID)
	if err != nil {
		return s.fail(ctx, ev.ConversationID, i18n.Match(ev.LanguageCode), fmt.Errorf("load profile: %w", err))
	}

	lang := i18n.Match(ev.LanguageCode)
	if prof != nil {
		lang = prof.Language
	}

	if commands.Action(ev.Text, lang) == ActionStart {
		return s.startRegistration(ctx, ev, i18n.KeyStart)
	}
	if s.isAdmin(ev.ConversationID) && strings.HasPrefix(ev.Text, "/broadcast") {
		return s.broadcast(ctx, ev)
	}

	if sess != nil {
		switch {
		case sess.Flow == FlowRegistration:
			return s.handleRegistration(ctx, ev, sess)
		case sess.Flow == FlowBooking && prof != nil && bookingStepValid(sess.Step):
			return s.handleBooking(ctx, ev, sess, prof)
		}

		// Terminal or unknown step: a booking that crashed before cleanup,
		// or a booking session without a profile. Drop it and go idle.
		log.Warn("resetting stale session", zap.String("flow", string(sess.Flow)), zap.String("step", string(sess.Step)))
		if err := s.sessions.Delete(ctx, ev.ConversationID); err != nil {
			log.Error("delete stale session", zap.Error(err))
		}
	}

	if prof == nil {
		// Registration is mandatory; images and contacts are discarded.
		return s.startRegistration(ctx, ev, i18n.KeyRegistrationRequired)
	}
	return s.handleIdle(ctx, ev, prof)
}

func (s *service) handleIdle(ctx context.Context, ev Event, prof *Profile) error {
	switch {
	case ev.Image != nil:
		return s.analyzeImage(ctx, ev, prof)
	case ev.Contact != nil:
		return s.updateContact(ctx, ev, prof)
	}

	lang := prof.Language
	switch commands.Action(ev.Text, lang) {
	case ActionBook:
		return s.startBooking(ctx, prof)
	case ActionServices:
		return s.reply(ctx, prof.ConversationID, salute(prof, i18n.Localize(i18n.KeyServices, lang)), mainKeyboard(lang))
	case ActionHours:
		return s.reply(ctx, prof.ConversationID, salute(prof, i18n.Localize(i18n.KeyHours, lang)), mainKeyboard(lang))
	case ActionAddress:
		return s.reply(ctx, prof.ConversationID, salute(prof, i18n.Localize(i18n.KeyAddress, lang)), mainKeyboard(lang))
	case ActionAsk:
		return s.reply(ctx, prof.ConversationID, salute(prof, i18n.Localize(i18n.KeyAsk, lang)), mainKeyboard(lang))
	case ActionMyAppointments:
		return s.listAppointments(ctx, prof)
	case ActionCancel:
		// nothing in progress
		return s.reply(ctx, prof.ConversationID, i18n.Localize(i18n.KeyBookingCancelled, lang), mainKeyboard(lang))
	}

	if ev.Text == "" || strings.HasPrefix(ev.Text, "/") {
		return s.reply(ctx, prof.ConversationID, salute(prof, i18n.Localize(i18n.KeyAsk, lang)), mainKeyboard(lang))
	}
	return s.askAssistant(ctx, ev, prof)
}

func (s *service) isAdmin(conversationID string) bool {
	return s.opts.AdminChatID != "" && conversationID == s.opts.AdminChatID
}

// reply sends the primary response; failures surface to the caller.
func (s *service) reply(ctx context.Context, chatID, text string, kb *Keyboard) error {
	if err := s.outbound.SendMessage(ctx, chatID, text, kb); err != nil {
		return fmt.Errorf("%w: %v", ErrTransport, err)
	}
	return nil
}

// notifyAdmin mirrors text to the admin chat. Failures never reach the user.
func (s *service) notifyAdmin(ctx context.Context, text string) {
	if s.opts.AdminChatID == "" {
		return
	}
	if err := s.outbound.SendMessage(ctx, s.opts.AdminChatID, text, nil); err != nil {
		logger.FromContext(ctx).Warn("admin notification failed", zap.Error(err))
	}
}

func (s *service) publish(ctx context.Context, subject string, data any) {
	if err := s.events.Publish(ctx, subject, data); err != nil {
		logger.FromContext(ctx).Warn("publish event failed", zap.String("subject", subject), zap.Error(err))
	}
}

// fail logs cause and tells the user to retry.
func (s *service) fail(ctx context.Context, chatID string, lang i18n.Lang, cause error) error {
	logger.FromContext(ctx).Error("event handling failed", zap.Error(cause))
	if err := s.reply(ctx, chatID, i18n.Localize(i18n.KeyGenericError, lang), nil); err != nil {
		return errors.Join(cause, err)
	}
	return cause
}

func salute(prof *Profile, text string) string {
	if prof == nil || prof.Name == "" {
		return text
	}
	return i18n.Localize(i18n.KeySalutation, prof.Language, prof.Name) + text
}
