package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

// RequestID propagates X-Request-ID or assigns a fresh one.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r.WithContext(logger.WithRequestID(r.Context(), id)))
	})
}

// Logging logs each request once it completes.
func Logging(next http.Handler) http.Handler {
	return chimw.RequestLogger(&zapFormatter{})(next)
}

type zapFormatter struct{}

func (f *zapFormatter) NewLogEntry(r *http.Request) chimw.LogEntry {
	return &zapEntry{r: r}
}

type zapEntry struct {
	r *http.Request
}

func (e *zapEntry) Write(status, bytes int, _ http.Header, elapsed time.Duration, _ interface{}) {
	logger.FromContext(e.r.Context()).Info("http request",
		zap.String("method", e.r.Method),
		zap.String("path", e.r.URL.Path),
		zap.Int("status", status),
		zap.Int("bytes", bytes),
		zap.Duration("elapsed", elapsed),
	)
}

func (e *zapEntry) Panic(v interface{}, stack []byte) {
	logger.FromContext(e.r.Context()).Error("http panic",
		zap.Any("panic", v),
		zap.ByteString("stack", stack),
		zap.String("path", e.r.URL.Path),
	)
}
