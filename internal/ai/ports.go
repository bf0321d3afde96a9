package ai

import (
	"context"
	"errors"
)

// ErrUnavailable wraps every failure of the completion backend.
var ErrUnavailable = errors.New("ai unavailable")

// Completer is the external intelligence; it knows nothing about chats or storage.
type Completer interface {
	CompleteText(ctx context.Context, question, lang, name string) (string, error)
	CompleteVision(ctx context.Context, image Image, caption, lang string) (string, error)
}

type Image struct {
	Data     []byte
	MimeType string // "image/jpeg", "image/png"
}
