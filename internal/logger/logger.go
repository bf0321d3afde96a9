package logger

import (
	"context"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ctxKey string

const (
	requestIDKey      ctxKey = "request_id"
	conversationIDKey ctxKey = "conversation_id"
)

var base = zap.NewNop()

// Init builds the global logger. Production gets JSON at the given level,
// everything else gets the colored development encoder.
func Init(production bool, level string) {
	var cfg zap.Config
	if production {
		cfg = zap.NewProductionConfig()
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}

	lvl := zap.NewAtomicLevel()
	if err := lvl.UnmarshalText([]byte(level)); err == nil {
		cfg.Level = lvl
	}

	l, err := cfg.Build()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	base = l
}

func L() *zap.Logger {
	return base
}

func Sync() {
	_ = base.Sync()
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func WithConversation(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, conversationIDKey, id)
}

// FromContext returns the global logger enriched with the ids stored in ctx.
func FromContext(ctx context.Context) *zap.Logger {
	l := base
	if id, ok := ctx.Value(requestIDKey).(string); ok && id != "" {
		l = l.With(zap.String("request_id", id))
	}
	if id, ok := ctx.Value(conversationIDKey).(string); ok && id != "" {
		l = l.With(zap.String("conversation_id", id))
	}
	return l
}
