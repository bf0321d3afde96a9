package bot

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

const secretHeader = "X-Telegram-Bot-Api-Secret-Token"

type Handler struct {
	svc    Service
	secret string
}

func NewHandler(svc Service, secret string) *Handler {
	return &Handler{svc: svc, secret: secret}
}

// HandleWebhook receives Telegram updates. Anything past the secret check
// is acknowledged with 200 so Telegram does not redeliver it.
func (h *Handler) HandleWebhook(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" && subtle.ConstantTimeCompare([]byte(r.Header.Get(secretHeader)), []byte(h.secret)) != 1 {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	log := logger.FromContext(r.Context())

	var upd Update
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		log.Warn("invalid telegram update", zap.Error(err))
		w.WriteHeader(http.StatusOK)
		return
	}

	ev, ok := upd.Event()
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	if err := h.svc.HandleEvent(r.Context(), ev); err != nil {
		log.Error("handle event", zap.Int64("update_id", upd.UpdateID), zap.Error(err))
	}
	w.WriteHeader(http.StatusOK)
}
