package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/Vovarama1992/dental-assistant-bot/internal/logger"
)

// SlotMaintainer materializes the rolling slot horizon.
type SlotMaintainer interface {
	EnsureFutureSlots(ctx context.Context) error
}

// Runner drives the scanner and slot materialization on a cron schedule.
type Runner struct {
	cron    *cron.Cron
	scanner *Scanner
	slots   SlotMaintainer
	timeout time.Duration
}

func NewRunner(scanner *Scanner, slots SlotMaintainer, loc *time.Location) *Runner {
	if loc == nil {
		loc = time.UTC
	}
	return &Runner{
		cron:    cron.New(cron.WithLocation(loc)),
		scanner: scanner,
		slots:   slots,
		timeout: 2 * time.Minute,
	}
}

// Schedule registers the reminder scan on spec and a nightly slot refresh.
func (r *Runner) Schedule(spec string) error {
	if _, err := r.cron.AddFunc(spec, r.scan); err != nil {
		return fmt.Errorf("reminder schedule %q: %w", spec, err)
	}
	if _, err := r.cron.AddFunc("5 0 * * *", r.refreshSlots); err != nil {
		return fmt.Errorf("slot schedule: %w", err)
	}
	return nil
}

func (r *Runner) scan() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if _, err := r.scanner.Scan(ctx); err != nil {
		logger.L().Error("scheduled reminder scan", zap.Error(err))
	}
}

func (r *Runner) refreshSlots() {
	ctx, cancel := context.WithTimeout(context.Background(), r.timeout)
	defer cancel()
	if err := r.slots.EnsureFutureSlots(ctx); err != nil {
		logger.L().Error("scheduled slot refresh", zap.Error(err))
	}
}

// Run starts the scheduler and blocks until ctx is done, then waits for
// running jobs to finish.
func (r *Runner) Run(ctx context.Context) error {
	r.cron.Start()
	logger.L().Info("scheduler started", zap.Int("jobs", len(r.cron.Entries())))

	<-ctx.Done()
	<-r.cron.Stop().Done()
	logger.L().Info("scheduler stopped")
	return nil
}
