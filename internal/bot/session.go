package bot

import (
	"time"

	"github.com/Vovarama1992/dental-assistant-bot/internal/i18n"
)

type Flow string

const (
	FlowRegistration Flow = "registration"
	FlowBooking      Flow = "booking"
)

type Step string

const (
	StepAwaitingLanguage Step = "awaiting_language"
	StepAwaitingName     Step = "awaiting_name"
	StepAwaitingContact  Step = "awaiting_contact"

	StepSelectingService Step = "selecting_service"
	StepSelectingDoctor  Step = "selecting_doctor"
	StepSelectingSlot    Step = "selecting_slot"
	// StepBooked is terminal: the slot is claimed and only cleanup remains.
	StepBooked Step = "booked"
)

// Session tracks an in-progress flow; at most one per conversation.
type Session struct {
	ConversationID string
	Flow           Flow
	Step           Step
	Scratch        Scratch
	UpdatedAt      time.Time
}

// Scratch accumulates the future Profile or Appointment.
type Scratch struct {
	Language i18n.Lang   `json:"language,omitempty"`
	Name     string      `json:"name,omitempty"`
	Service  string      `json:"service,omitempty"`
	Doctor   string      `json:"doctor,omitempty"`
	Offered  []time.Time `json:"offered,omitempty"`
	Slot     *time.Time  `json:"slot,omitempty"`
}

func (s *Session) lang() i18n.Lang {
	if s.Scratch.Language.Valid() {
		return s.Scratch.Language
	}
	return i18n.Fallback
}

// bookingStepValid reports whether the step has outgoing transitions.
func bookingStepValid(step Step) bool {
	switch step {
	case StepSelectingService, StepSelectingDoctor, StepSelectingSlot:
		return true
	}
	return false
}
