package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Vovarama1992/dental-assistant-bot/internal/ai"
	"github.com/Vovarama1992/dental-assistant-bot/internal/bot"
	"github.com/Vovarama1992/dental-assistant-bot/internal/config"
	"github.com/Vovarama1992/dental-assistant-bot/internal/db"
	"github.com/Vovarama1992/dental-assistant-bot/internal/events"
	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
	"github.com/Vovarama1992/dental-assistant-bot/internal/middleware"
	"github.com/Vovarama1992/dental-assistant-bot/internal/reminder"
	"github.com/Vovarama1992/dental-assistant-bot/internal/slots"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.IsProduction(), cfg.LogLevel)
	defer logger.Sync()
	log := logger.L()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loc, _ := cfg.Location()
	hours, _ := cfg.Hours()

	// --- DB ---
	var conn *sql.DB
	if cfg.StorageBackend == "postgres" || cfg.SessionBackend == "postgres" {
		var err error
		conn, err = db.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database", zap.Error(err))
		}
		defer conn.Close()

		if err := db.Migrate(ctx, conn); err != nil {
			log.Fatal("migrate", zap.Error(err))
		}
	}

	// --- Stores ---
	var (
		profiles     bot.ProfileStore
		appointments bot.AppointmentStore
		slotRepo     slots.Repo
	)
	switch cfg.StorageBackend {
	case "memory":
		profiles = bot.NewMemoryProfileStore()
		appointments = bot.NewMemoryAppointmentStore()
		slotRepo = slots.NewMemoryRepo()
	default:
		profiles = bot.NewProfileRepo(conn)
		appointments = bot.NewAppointmentRepo(conn)
		slotRepo = slots.NewRepo(conn)
	}

	var sessions bot.SessionStore
	switch cfg.SessionBackend {
	case "redis":
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatal("redis url", zap.Error(err))
		}
		rdb := redis.NewClient(opts)
		defer rdb.Close()
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("redis ping", zap.Error(err))
		}
		sessions = bot.NewRedisSessionStore(rdb, cfg.SessionTTL)
	case "memory":
		sessions = bot.NewMemorySessionStore()
	default:
		sessions = bot.NewSessionRepo(conn)
	}

	// --- Events ---
	var publisher events.Publisher = events.Nop{}
	if cfg.NATSURL != "" {
		nc, err := events.NewNATSPublisher(cfg.NATSURL)
		if err != nil {
			log.Fatal("nats", zap.Error(err))
		}
		publisher = nc
	}
	defer publisher.Close()

	// --- AI ---
	var aiClient ai.Completer
	switch cfg.AIProvider {
	case "openai":
		aiClient = ai.NewOpenAIClient(cfg.OpenAIKey, cfg.OpenAIModel)
	default:
		gc, err := ai.NewGeminiClient(ctx, cfg.GoogleAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Fatal("gemini", zap.Error(err))
		}
		defer gc.Close()
		aiClient = gc
	}

	// --- Slots ---
	slotTable := slots.NewTable(slotRepo, slots.Schedule{
		Location:    loc,
		Hours:       hours,
		HorizonDays: cfg.SlotHorizonDays,
	})
	if err := slotTable.EnsureFutureSlots(ctx); err != nil {
		log.Warn("initial slot materialization", zap.Error(err))
	}

	// --- Bot module wiring ---
	outbound := bot.NewTelegramOutbound(cfg.TelegramAPIURL, cfg.TelegramToken)
	botService := bot.NewService(sessions, profiles, appointments, slotTable, aiClient, outbound, publisher, bot.Options{
		AdminChatID:     cfg.AdminChatID,
		AITimeout:       cfg.AITimeout,
		AIRatePerMinute: cfg.AIRatePerMinute,
		SlotListLimit:   cfg.SlotListLimit,
	})
	botHandler := bot.NewHandler(botService, cfg.TelegramWebhookSecret)

	// --- Reminders ---
	scanner := reminder.NewScanner(slotTable, profiles, appointments, outbound, publisher)
	runner := reminder.NewRunner(scanner, slotTable, loc)
	if err := runner.Schedule(cfg.ReminderSchedule); err != nil {
		log.Fatal("scheduler", zap.Error(err))
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID", "X-Task-Secret", "X-Telegram-Bot-Api-Secret-Token"},
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(chimw.Recoverer)

	bot.RegisterRoutes(r, botHandler)
	reminder.RegisterRoutes(r, reminder.NewHandler(scanner, slotTable, cfg.TaskSecret))

	// --- health ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", srv.Addr), zap.String("storage", cfg.StorageBackend), zap.String("sessions", cfg.SessionBackend))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		return runner.Run(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error("server error", zap.Error(err))
	}
	log.Info("shutdown complete")
}
