package bot

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

const maxNameRunes = 64

// startRegistration replaces any session with a fresh registration. An
// existing profile is kept until the new one is upserted.
func (s *service) startRegistration(ctx context.Context, ev Event, prompt i18n.Key) error {
	lang := i18n.Match(ev.LanguageCode)
	sess := &Session{
		ConversationID: ev.ConversationID,
		Flow:           FlowRegistration,
		Step:           StepAwaitingLanguage,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("save session: %w", err))
	}
	return s.reply(ctx, ev.ConversationID, i18n.Localize(prompt, lang), languageKeyboard())
}

func (s *service) handleRegistration(ctx context.Context, ev Event, sess *Session) error {
	switch sess.Step {
	case StepAwaitingLanguage:
		return s.chooseLanguage(ctx, ev, sess)
	case StepAwaitingName:
		return s.enterName(ctx, ev, sess)
	case StepAwaitingContact:
		return s.shareContact(ctx, ev, sess)
	}
	return s.startRegistration(ctx, ev, i18n.KeyStart)
}

func (s *service) chooseLanguage(ctx context.Context, ev Event, sess *Session) error {
	lang, ok := commands.Language(ev.Text)
	if !ok {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyChooseLanguage, i18n.Match(ev.LanguageCode)), languageKeyboard())
	}

	sess.Scratch.Language = lang
	sess.Step = StepAwaitingName
	if err := s.sessions.Save(ctx, sess); err != nil {
		return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("save session: %w", err))
	}
	return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyAskName, lang), removeKeyboard())
}

func (s *service) enterName(ctx context.Context, ev Event, sess *Session) error {
	lang := sess.lang()
	name := strings.TrimSpace(ev.Text)
	if !validName(name) {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyInvalidName, lang), removeKeyboard())
	}

	sess.Scratch.Name = name
	sess.Step = StepAwaitingContact
	if err := s.sessions.Save(ctx, sess); err != nil {
		return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("save session: %w", err))
	}
	return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyAskContact, lang), contactKeyboard(lang))
}

func validName(name string) bool {
	if name == "" || utf8.RuneCountInString(name) > maxNameRunes {
		return false
	}
	if strings.HasPrefix(name, "/") {
		return false
	}
	return !commands.IsReserved(name)
}

// shareContact accepts only a platform contact owned by the sender. Typed
// phone numbers never verify.
func (s *service) shareContact(ctx context.Context, ev Event, sess *Session) error {
	lang := sess.lang()
	if ev.Contact == nil {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyContactRequired, lang), contactKeyboard(lang))
	}
	if ev.Contact.OwnerID != ev.ConversationID || ev.Contact.PhoneNumber == "" {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyContactNotOwner, lang), contactKeyboard(lang))
	}

	prof := &Profile{
		ConversationID: ev.ConversationID,
		Name:           sess.Scratch.Name,
		Phone:          ev.Contact.PhoneNumber,
		Language:       lang,
	}
	if err := s.profiles.Upsert(ctx, prof); err != nil {
		return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("upsert profile: %w", err))
	}
	if err := s.sessions.Delete(ctx, ev.ConversationID); err != nil {
		logger.FromContext(ctx).Error("delete registration session", zap.Error(err))
	}

	logger.FromContext(ctx).Info("registration completed", zap.String("language", string(lang)))
	return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyRegistered, lang, prof.Name), mainKeyboard(lang))
}

// updateContact refreshes the phone of a registered user from a shared contact.
func (s *service) updateContact(ctx context.Context, ev Event, prof *Profile) error {
	lang := prof.Language
	if ev.Contact.OwnerID != ev.ConversationID || ev.Contact.PhoneNumber == "" {
		return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyContactNotOwner, lang), mainKeyboard(lang))
	}
	updated := *prof
	updated.Phone = ev.Contact.PhoneNumber
	if err := s.profiles.Upsert(ctx, &updated); err != nil {
		return s.fail(ctx, ev.ConversationID, lang, fmt.Errorf("upsert profile: %w", err))
	}
	return s.reply(ctx, ev.ConversationID, i18n.Localize(i18n.KeyContactUpdated, lang), mainKeyboard(lang))
}
