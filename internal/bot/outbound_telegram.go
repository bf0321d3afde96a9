package bot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/ai"
)

const maxImageBytes = 10 << 20

type TelegramOutbound struct {
	baseURL string
	fileURL string
	client  *http.Client
}

func NewTelegramOutbound(apiURL, token string) *TelegramOutbound {
	apiURL = strings.TrimRight(apiURL, "/")
	if apiURL == "" {
		apiURL = "https://api.telegram.org"
	}
	return &TelegramOutbound{
		baseURL: apiURL + "/bot" + token,
		fileURL: apiURL + "/file/bot" + token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type replyMarkup struct {
	Keyboard       [][]keyboardButton `json:"keyboard,omitempty"`
	ResizeKeyboard bool               `json:"resize_keyboard,omitempty"`
	OneTime        bool               `json:"one_time_keyboard,omitempty"`
	RemoveKeyboard bool               `json:"remove_keyboard,omitempty"`
}

type keyboardButton struct {
	Text           string `json:"text"`
	RequestContact bool   `json:"request_contact,omitempty"`
}

func markup(kb *Keyboard) *replyMarkup {
	if kb == nil {
		return nil
	}
	if kb.Remove {
		return &replyMarkup{RemoveKeyboard: true}
	}
	rows := make([][]keyboardButton, len(kb.Rows))
	for i, row := range kb.Rows {
		for _, b := range row {
			rows[i] = append(rows[i], keyboardButton{Text: b.Text, RequestContact: b.RequestContact})
		}
	}
	return &replyMarkup{Keyboard: rows, ResizeKeyboard: true, OneTime: kb.OneTime}
}

func (t *TelegramOutbound) SendMessage(ctx context.Context, chatID string, text string, kb *Keyboard) error {
	body := map[string]any{
		"chat_id": chatID,
		"text":    text,
	}
	if m := markup(kb); m != nil {
		body["reply_markup"] = m
	}
	return t.call(ctx, "sendMessage", body, nil)
}

// DownloadImage resolves a file id and fetches the bytes, sniffing the MIME type.
func (t *TelegramOutbound) DownloadImage(ctx context.Context, fileID string) (ai.Image, error) {
	var file struct {
		FilePath string `json:"file_path"`
	}
	if err := t.call(ctx, "getFile", map[string]any{"file_id": fileID}, &file); err != nil {
		return ai.Image{}, fmt.Errorf("%w: %v", ErrImageNotFound, err)
	}
	if file.FilePath == "" {
		return ai.Image{}, ErrImageNotFound
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.fileURL+"/"+file.FilePath, nil)
	if err != nil {
		return ai.Image{}, err
	}
	resp, err := t.client.Do(req)
	if err != nil {
		return ai.Image{}, fmt.Errorf("%w: %v", ErrImageNotFound, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ai.Image{}, fmt.Errorf("%w: download status %s", ErrImageNotFound, resp.Status)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return ai.Image{}, fmt.Errorf("%w: %v", ErrImageNotFound, err)
	}
	if len(data) == 0 {
		return ai.Image{}, ErrImageNotFound
	}
	return ai.Image{Data: data, MimeType: http.DetectContentType(data)}, nil
}

func (t *TelegramOutbound) call(ctx context.Context, method string, body any, result any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL+"/"+method, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var envelope struct {
		OK          bool            `json:"ok"`
		Result      json.RawMessage `json:"result"`
		Description string          `json:"description"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("telegram %s: %s: %w", method, resp.Status, err)
	}
	if !envelope.OK {
		return errors.New("telegram api error: " + method + ": " + resp.Status + " " + envelope.Description)
	}
	if result != nil {
		return json.Unmarshal(envelope.Result, result)
	}
	return nil
}
