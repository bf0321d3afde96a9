package reminder

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

const taskSecretHeader = "X-Task-Secret"

// Handler exposes the scheduled jobs for external triggering.
type Handler struct {
	scanner *Scanner
	slots   SlotMaintainer
	secret  string
}

func NewHandler(scanner *Scanner, slots SlotMaintainer, secret string) *Handler {
	return &Handler{scanner: scanner, slots: slots, secret: secret}
}

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/tasks", func(r chi.Router) {
		r.Use(h.requireSecret)
		r.Post("/reminders", h.RunReminders)
		r.Post("/slots", h.EnsureSlots)
	})
}

func (h *Handler) requireSecret(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := r.Header.Get(taskSecretHeader)
		if h.secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *Handler) RunReminders(w http.ResponseWriter, r *http.Request) {
	sent, err := h.scanner.Scan(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error("reminder task", zap.Error(err))
		http.Error(w, "scan failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]int{"sent": sent})
}

func (h *Handler) EnsureSlots(w http.ResponseWriter, r *http.Request) {
	if err := h.slots.EnsureFutureSlots(r.Context()); err != nil {
		logger.FromContext(r.Context()).Error("slot task", zap.Error(err))
		http.Error(w, "ensure slots failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}
