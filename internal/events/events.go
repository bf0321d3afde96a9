package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

const (
	AppointmentBooked = "clinic.appointment.booked"
	ReminderSent      = "clinic.reminder.sent"
)

type Publisher interface {
	Publish(ctx context.Context, subject string, data any) error
	Close() error
}

type AppointmentBookedEvent struct {
	AppointmentID  string    `json:"appointment_id"`
	ConversationID string    `json:"conversation_id"`
	SlotTime       time.Time `json:"slot_time"`
	Service        string    `json:"service"`
	Doctor         string    `json:"doctor"`
}

type ReminderSentEvent struct {
	ConversationID string    `json:"conversation_id"`
	SlotTime       time.Time `json:"slot_time"`
}

type NATSPublisher struct {
	conn *nats.Conn
}

func NewNATSPublisher(url string) (*NATSPublisher, error) {
	conn, err := nats.Connect(url, nats.Name("dental-assistant-bot"))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return &NATSPublisher{conn: conn}, nil
}

func (n *NATSPublisher) Publish(ctx context.Context, subject string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	logger.FromContext(ctx).Debug("publishing event", zap.String("subject", subject))
	return n.conn.Publish(subject, payload)
}

func (n *NATSPublisher) Close() error {
	return n.conn.Drain()
}

// Nop discards events; used when NATS_URL is empty.
type Nop struct{}

func (Nop) Publish(context.Context, string, any) error { return nil }
func (Nop) Close() error                               { return nil }
