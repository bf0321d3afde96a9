package bot

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/ai"
	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
)

func TestAskAssistantAnswersWithSalutation(t *testing.T) {
	h := newHarness(t, Options{})
	prof := h.register(t, "42", "Ali", i18n.English)

	h.text(t, "42", "Do you do whitening?")

	if got := h.out.last(t, "42").text; got != salute(prof, "We are open every day.") {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestAIFailureFailsClosed(t *testing.T) {
	h := newHarness(t, Options{})
	prof := h.register(t, "42", "Ali", i18n.Russian)
	h.ai.err = ai.ErrUnavailable

	h.text(t, "42", "Сколько стоит чистка?")

	if got := h.out.last(t, "42").text; got != salute(prof, i18n.Localize(i18n.KeyAIUnavailable, i18n.Russian)) {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestAIEmptyAnswerFailsClosed(t *testing.T) {
	h := newHarness(t, Options{})
	h.register(t, "42", "Ali", i18n.English)
	h.ai.answer = "   "

	h.text(t, "42", "hello")

	if got := h.out.last(t, "42").text; !strings.HasSuffix(got, i18n.Localize(i18n.KeyAIUnavailable, i18n.English)) {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestImageAnalysisCarriesDisclaimer(t *testing.T) {
	h := newHarness(t, Options{})
	h.register(t, "42", "Ali", i18n.English)
	h.out.image = ai.Image{Data: []byte{0xff, 0xd8, 0xff}, MimeType: "image/jpeg"}
	h.ai.answer = "Some discoloration is visible on the front tooth."

	h.send(t, Event{ConversationID: "42", Image: &ImageRef{FileID: "f1", Caption: "is this bad?"}})

	got := h.out.last(t, "42").text
	if !strings.Contains(got, h.ai.answer) || !strings.HasSuffix(got, i18n.Localize(i18n.KeyImageDisclaimer, i18n.English)) {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestImageDownloadFailure(t *testing.T) {
	h := newHarness(t, Options{})
	h.register(t, "42", "Ali", i18n.English)
	h.out.imageErr = ErrImageNotFound

	h.send(t, Event{ConversationID: "42", Image: &ImageRef{FileID: "missing"}})

	if h.ai.calls != 0 {
		t.Fatal("vision must not run without an image")
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyImageFailed, i18n.English) {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestRateLimitedAssistant(t *testing.T) {
	h := newHarness(t, Options{AIRatePerMinute: 1})
	h.register(t, "42", "Ali", i18n.English)

	h.text(t, "42", "first question")
	h.text(t, "42", "second question")

	if h.ai.calls != 1 {
		t.Fatalf("expected one AI call, got %d", h.ai.calls)
	}
	if got := h.out.last(t, "42").text; got != i18n.Localize(i18n.KeyRateLimited, i18n.English) {
		t.Fatalf("unexpected reply %q", got)
	}
}

func TestMyAppointments(t *testing.T) {
	h := newHarness(t, Options{})
	prof := h.register(t, "42", "Ali", i18n.English)

	h.text(t, "42", "My appointments")
	if got := h.out.last(t, "42").text; got != salute(prof, i18n.Localize(i18n.KeyMyAppointmentsEmpty, i18n.English)) {
		t.Fatalf("unexpected reply %q", got)
	}

	h.appointments.Create(context.Background(), &Appointment{
		ID: "a1", ConversationID: "42", SlotTime: h.tomorrowAt(12), Service: "Cleaning", Doctor: "Any",
	})
	h.appointments.Create(context.Background(), &Appointment{
		ID: "a0", ConversationID: "42", SlotTime: h.now.Add(-24 * time.Hour), Service: "Old", Doctor: "Any",
	})

	h.text(t, "42", "/appointments")
	got := h.out.last(t, "42").text
	if !strings.Contains(got, "12:00 20/10 - Cleaning (Any)") || strings.Contains(got, "Old") {
		t.Fatalf("unexpected listing %q", got)
	}
}

func TestBroadcastFromAdmin(t *testing.T) {
	h := newHarness(t, Options{})
	h.register(t, "1", "A", i18n.English)
	h.register(t, "2", "B", i18n.Farsi)
	h.register(t, "admin", "Admin", i18n.Farsi)
	h.out.failFor["2"] = true

	h.text(t, "admin", "/broadcast Clinic closed on Friday")

	if contains(h.out.to("1"), "Clinic closed on Friday") != 1 {
		t.Fatal("expected broadcast delivery")
	}
	if got := h.out.last(t, "admin").text; got != i18n.Localize(i18n.KeyBroadcastDone, i18n.Fallback, 1, 1) {
		t.Fatalf("unexpected summary %q", got)
	}

	// ordinary users cannot broadcast
	h.text(t, "1", "/broadcast spam")
	if contains(h.out.to("2"), "spam") != 0 || contains(h.out.to("admin"), "spam") != 0 {
		t.Fatal("non-admin broadcast must be ignored")
	}
}

func TestTransportErrorSurfaces(t *testing.T) {
	h := newHarness(t, Options{})
	h.register(t, "42", "Ali", i18n.English)
	h.out.failFor["42"] = true

	err := h.svc.HandleEvent(context.Background(), Event{ConversationID: "42", Text: "Services"})
	if !errors.Is(err, ErrTransport) {
		t.Fatalf("expected ErrTransport, got %v", err)
	}
}

func TestEmptyEventIsIgnored(t *testing.T) {
	h := newHarness(t, Options{})

	h.send(t, Event{ConversationID: "42", Text: "   "})
	h.send(t, Event{Text: "hello"})

	if len(h.out.messages) != 0 {
		t.Fatalf("expected no replies, got %+v", h.out.messages)
	}
}
