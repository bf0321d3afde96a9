package bot

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestTelegramSendMessage(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTOKEN/sendMessage" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		io.WriteString(w, `{"ok":true,"result":{}}`)
	}))
	defer srv.Close()

	tg := NewTelegramOutbound(srv.URL, "TOKEN")
	kb := &Keyboard{Rows: [][]Button{{{Text: "Share", RequestContact: true}}}, OneTime: true}
	if err := tg.SendMessage(context.Background(), "42", "hello", kb); err != nil {
		t.Fatal(err)
	}

	if got["chat_id"] != "42" || got["text"] != "hello" {
		t.Fatalf("unexpected body %v", got)
	}
	markup, _ := got["reply_markup"].(map[string]any)
	if markup["one_time_keyboard"] != true {
		t.Fatalf("unexpected markup %v", markup)
	}
	rows, _ := markup["keyboard"].([]any)
	btn := rows[0].([]any)[0].(map[string]any)
	if btn["request_contact"] != true {
		t.Fatalf("expected contact button, got %v", btn)
	}
}

func TestTelegramAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		io.WriteString(w, `{"ok":false,"description":"bot was blocked by the user"}`)
	}))
	defer srv.Close()

	err := NewTelegramOutbound(srv.URL, "TOKEN").SendMessage(context.Background(), "42", "hi", &Keyboard{Remove: true})
	if err == nil || !strings.Contains(err.Error(), "blocked") {
		t.Fatalf("expected api error, got %v", err)
	}
}

func TestTelegramDownloadImage(t *testing.T) {
	png := []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/botTOKEN/getFile":
			io.WriteString(w, `{"ok":true,"result":{"file_path":"photos/1.png"}}`)
		case "/file/botTOKEN/photos/1.png":
			w.Write(png)
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	img, err := NewTelegramOutbound(srv.URL, "TOKEN").DownloadImage(context.Background(), "f1")
	if err != nil {
		t.Fatal(err)
	}
	if img.MimeType != "image/png" || len(img.Data) != len(png) {
		t.Fatalf("unexpected image %s %d", img.MimeType, len(img.Data))
	}
}

func TestTelegramDownloadImageMissing(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"ok":false,"description":"Bad Request: invalid file_id"}`)
	}))
	defer srv.Close()

	_, err := NewTelegramOutbound(srv.URL, "TOKEN").DownloadImage(context.Background(), "nope")
	if !errors.Is(err, ErrImageNotFound) {
		t.Fatalf("expected ErrImageNotFound, got %v", err)
	}
}
