package bot

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
)

type recordingService struct {
	events []Event
	err    error
}

func (s *recordingService) HandleEvent(_ context.Context, ev Event) error {
	s.events = append(s.events, ev)
	return s.err
}

func newTestRouter(svc Service, secret string) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(svc, secret))
	return r
}

func postUpdate(t *testing.T, h http.Handler, body, secret string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/telegram/webhook", strings.NewReader(body))
	if secret != "" {
		req.Header.Set(secretHeader, secret)
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Code
}

func TestWebhookRejectsWrongSecret(t *testing.T) {
	svc := &recordingService{}
	r := newTestRouter(svc, "s3cret")

	if code := postUpdate(t, r, `{"message":{"chat":{"id":1},"text":"hi"}}`, "nope"); code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", code)
	}
	if len(svc.events) != 0 {
		t.Fatal("service must not be called")
	}
}

func TestWebhookAcknowledgesEverything(t *testing.T) {
	svc := &recordingService{err: errors.New("boom")}
	r := newTestRouter(svc, "s3cret")

	cases := []string{
		`not json`,
		`{"update_id":1}`,
		`{"update_id":2,"message":{"chat":{"id":5}}}`,
		`{"update_id":3,"message":{"chat":{"id":5},"from":{"id":5,"language_code":"fa"},"text":"سلام"}}`,
	}
	for _, body := range cases {
		if code := postUpdate(t, r, body, "s3cret"); code != http.StatusOK {
			t.Fatalf("%s: expected 200, got %d", body, code)
		}
	}

	if len(svc.events) != 1 {
		t.Fatalf("expected exactly one dispatched event, got %d", len(svc.events))
	}
	if ev := svc.events[0]; ev.ConversationID != "5" || ev.LanguageCode != "fa" || ev.Text != "سلام" {
		t.Fatalf("unexpected event %+v", ev)
	}
}

func TestUpdateEvent(t *testing.T) {
	upd := Update{Message: &message{
		Chat:    chat{ID: 42},
		From:    &user{ID: 42, LanguageCode: "en"},
		Caption: "front tooth",
		Photo: []photo{
			{FileID: "small", Width: 90, Height: 90},
			{FileID: "large", Width: 1280, Height: 960},
			{FileID: "medium", Width: 320, Height: 240},
		},
	}}
	ev, ok := upd.Event()
	if !ok || ev.Image == nil || ev.Image.FileID != "large" || ev.Image.Caption != "front tooth" {
		t.Fatalf("unexpected event %+v", ev)
	}

	upd = Update{Message: &message{
		Chat:    chat{ID: 42},
		Contact: &contact{PhoneNumber: "+971500000000", UserID: 42},
	}}
	ev, ok = upd.Event()
	if !ok || ev.Contact == nil || ev.Contact.OwnerID != "42" {
		t.Fatalf("unexpected contact event %+v", ev)
	}

	// contact card without a platform user id has no owner
	upd.Message.Contact.UserID = 0
	ev, _ = upd.Event()
	if ev.Contact.OwnerID != "" {
		t.Fatalf("expected empty owner, got %q", ev.Contact.OwnerID)
	}

	upd = Update{Message: &message{
		Chat:     chat{ID: 42},
		Document: &document{FileID: "doc", MimeType: "application/pdf"},
	}}
	if _, ok := upd.Event(); ok {
		t.Fatal("non-image document should be ignored")
	}
}
