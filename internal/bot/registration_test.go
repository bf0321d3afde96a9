package bot

import (
	"context"
	"testing"

	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
)

func TestRegistrationFlow(t *testing.T) {
	h := newHarness(t, Options{})
	ctx := context.Background()

	h.send(t, Event{ConversationID: "42", LanguageCode: "en-US", Text: "/start"})
	if s := h.session(t, "42"); s == nil || s.Flow != FlowRegistration || s.Step != StepAwaitingLanguage {
		t.Fatalf("expected awaiting_language, got %+v", s)
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyStart, i18n.English) {
		t.Fatalf("unexpected greeting %q", got)
	}

	h.text(t, "42", "English")
	if s := h.session(t, "42"); s.Step != StepAwaitingName || s.Scratch.Language != i18n.English {
		t.Fatalf("expected awaiting_name in en, got %+v", s)
	}

	h.text(t, "42", "Ali")
	if s := h.session(t, "42"); s.Step != StepAwaitingContact || s.Scratch.Name != "Ali" {
		t.Fatalf("expected awaiting_contact, got %+v", s)
	}
	if kb := h.out.last(t, "42").kb; kb == nil || !kb.Rows[0][0].RequestContact {
		t.Fatal("expected a contact request button")
	}

	h.send(t, Event{ConversationID: "42", Contact: &Contact{PhoneNumber: "+971501234567", OwnerID: "42"}})

	p, _ := h.profiles.Get(ctx, "42")
	if p == nil || p.Name != "Ali" || p.Phone != "+971501234567" || p.Language != i18n.English {
		t.Fatalf("unexpected profile %+v", p)
	}
	if s := h.session(t, "42"); s != nil {
		t.Fatalf("registration session should be deleted, got %+v", s)
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyRegistered, i18n.English, "Ali") {
		t.Fatalf("unexpected confirmation %q", got)
	}
}

func TestTypedPhoneNumberNeverVerifies(t *testing.T) {
	h := newHarness(t, Options{})
	ctx := context.Background()
	h.sessions.Save(ctx, &Session{
		ConversationID: "42",
		Flow:           FlowRegistration,
		Step:           StepAwaitingContact,
		Scratch:        Scratch{Language: i18n.English, Name: "Ali"},
	})

	h.text(t, "42", "+1234567890")

	if s := h.session(t, "42"); s == nil || s.Step != StepAwaitingContact {
		t.Fatalf("expected to stay in awaiting_contact, got %+v", s)
	}
	if p, _ := h.profiles.Get(ctx, "42"); p != nil {
		t.Fatalf("no profile expected, got %+v", p)
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyContactRequired, i18n.English) {
		t.Fatalf("unexpected reply %q", got)
	}

	// someone else's contact card
	h.send(t, Event{ConversationID: "42", Contact: &Contact{PhoneNumber: "+1999", OwnerID: "77"}})
	if p, _ := h.profiles.Get(ctx, "42"); p != nil {
		t.Fatalf("foreign contact must not register, got %+v", p)
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyContactNotOwner, i18n.English) {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestUnregisteredUserIsGated(t *testing.T) {
	h := newHarness(t, Options{})

	h.text(t, "42", "How much is whitening?")

	if h.ai.calls != 0 {
		t.Fatal("AI must not be called before registration")
	}
	if s := h.session(t, "42"); s == nil || s.Flow != FlowRegistration || s.Step != StepAwaitingLanguage {
		t.Fatalf("expected registration to start, got %+v", s)
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyRegistrationRequired, i18n.Fallback) {
		t.Fatalf("unexpected reply %q", got)
	}

	h.send(t, Event{ConversationID: "43", Image: &ImageRef{FileID: "f1"}})
	if h.out.fetched != 0 {
		t.Fatal("image from unregistered user must not be downloaded")
	}
	if s := h.session(t, "43"); s == nil || s.Flow != FlowRegistration {
		t.Fatalf("expected registration to start, got %+v", s)
	}
}

func TestRegistrationRejectsBadInput(t *testing.T) {
	h := newHarness(t, Options{})

	h.text(t, "42", "/start")
	h.text(t, "42", "Klingon")
	if s := h.session(t, "42"); s.Step != StepAwaitingLanguage {
		t.Fatalf("unknown language must re-prompt, got %s", s.Step)
	}

	h.text(t, "42", "فارسی / Farsi")
	for _, name := range []string{"Book Appointment", "/help", "لغو"} {
		h.text(t, "42", name)
		if s := h.session(t, "42"); s.Step != StepAwaitingName {
			t.Fatalf("name %q should be rejected, step is %s", name, s.Step)
		}
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyInvalidName, i18n.Farsi) {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestStartKeepsProfileUntilReregistered(t *testing.T) {
	h := newHarness(t, Options{})
	h.register(t, "42", "Ali", i18n.Farsi)

	h.text(t, "42", "/start")

	if p, _ := h.profiles.Get(context.Background(), "42"); p == nil {
		t.Fatal("profile should survive /start")
	}
	if s := h.session(t, "42"); s == nil || s.Flow != FlowRegistration {
		t.Fatalf("expected new registration session, got %+v", s)
	}
}

func TestContactUpdateForRegisteredUser(t *testing.T) {
	h := newHarness(t, Options{})
	h.register(t, "42", "Ali", i18n.English)

	h.send(t, Event{ConversationID: "42", Contact: &Contact{PhoneNumber: "+971509999999", OwnerID: "42"}})

	p, _ := h.profiles.Get(context.Background(), "42")
	if p.Phone != "+971509999999" || p.Name != "Ali" {
		t.Fatalf("unexpected profile %+v", p)
	}
}
