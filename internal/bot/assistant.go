package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

// askAssistant answers free text with the AI receptionist. Any failure
// degrades to a localized apology; the user always gets a reply.
func (s *service) askAssistant(ctx context.Context, ev Event, prof *Profile) error {
	lang := prof.Language
	if !s.limiter.Allow(ev.ConversationID) {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyRateLimited, lang), mainKeyboard(lang))
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.opts.AITimeout)
	defer cancel()

	answer, err := s.ai.CompleteText(aiCtx, ev.Text, string(lang), prof.Name)
	if err == nil && strings.TrimSpace(answer) == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		logger.FromContext(ctx).Warn("ai completion failed", zap.Error(err))
		return s.reply(ctx, ev.ConversationID, salute(prof, i18n.Localize(i18n.KeyAIUnavailable, lang)), mainKeyboard(lang))
	}
	return s.reply(ctx, ev.ConversationID, salute(prof, answer), mainKeyboard(lang))
}

// analyzeImage runs vision analysis and always appends the disclaimer.
func (s *service) analyzeImage(ctx context.Context, ev Event, prof *Profile) error {
	lang := prof.Language
	log := logger.FromContext(ctx)

	if !s.limiter.Allow(ev.ConversationID) {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyRateLimited, lang), mainKeyboard(lang))
	}

	aiCtx, cancel := context.WithTimeout(ctx, s.opts.AITimeout)
	defer cancel()

	img, err := s.outbound.DownloadImage(aiCtx, ev.Image.FileID)
	if err != nil {
		log.Warn("image download failed", zap.Error(err))
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyImageFailed, lang), mainKeyboard(lang))
	}

	analysis, err := s.ai.CompleteVision(aiCtx, img, ev.Image.Caption, string(lang))
	if err == nil && strings.TrimSpace(analysis) == "" {
		err = errors.New("empty completion")
	}
	if err != nil {
		log.Warn("vision analysis failed", zap.Error(err))
		return s.reply(ctx, ev.ConversationID, salute(prof, i18n.Localize(i18n.KeyAIUnavailable, lang)), mainKeyboard(lang))
	}

	text := salute(prof, analysis) + "\n\n" + i18n.Localize(i18n.KeyImageDisclaimer, lang)
	return s.reply(ctx, ev.ConversationID, text, mainKeyboard(lang))
}

func (s *service) listAppointments(ctx context.Context, prof *Profile) error {
	lang := prof.Language
	appts, err := s.appointments.ListUpcoming(ctx, prof.ConversationID, s.slots.Now())
	if err != nil {
		return s.fail(ctx, prof.ConversationID, lang, fmt.Errorf("list appointments: %w", err))
	}
	if len(appts) == 0 {
		return s.reply(ctx, prof.ConversationID, salute(prof, i18n.Localize(i18n.KeyMyAppointmentsEmpty, lang)), mainKeyboard(lang))
	}

	var b strings.Builder
	b.WriteString(i18n.Localize(i18n.KeyMyAppointmentsHeader, lang))
	for _, a := range appts {
		b.WriteString("\n")
		b.WriteString(i18n.Localize(i18n.KeyAppointmentLine, lang, slots.Label(a.SlotTime, s.slots.Location()), a.Service, a.Doctor))
	}
	return s.reply(ctx, prof.ConversationID, salute(prof, b.String()), mainKeyboard(lang))
}

// broadcast sends the admin's text to every registered profile.
func (s *service) broadcast(ctx context.Context, ev Event) error {
	text := strings.TrimSpace(strings.TrimPrefix(ev.Text, "/broadcast"))
	if text == "" {
		return nil
	}

	profiles, err := s.profiles.List(ctx)
	if err != nil {
		return s.fail(ctx, ev.ConversationID, i18n.Fallback, fmt.Errorf("list profiles: %w", err))
	}

	log := logger.FromContext(ctx)
	var sent, failed int
	for _, p := range profiles {
		if p.ConversationID == ev.ConversationID {
			continue
		}
		if err := s.outbound.SendMessage(ctx, p.ConversationID, text, nil); err != nil {
			log.Warn("broadcast delivery failed", zap.String("to", p.ConversationID), zap.Error(err))
			failed++
			continue
		}
		sent++
	}
	log.Info("broadcast finished", zap.Int("sent", sent), zap.Int("failed", failed))
	return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyBroadcastDone, i18n.Fallback, sent, failed), nil)
}
