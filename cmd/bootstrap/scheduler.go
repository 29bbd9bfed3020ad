package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"rental-marketplace/internal/pkg/config"
	"rental-marketplace/internal/pkg/metrics"
	"rental-marketplace/internal/usecase/commands"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

const jobTimeout = time.Minute

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, bookings commands.BookingCommands, logger *slog.Logger) error {
	if !cfg.Scheduler.Enabled {
		return nil
	}

	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger)))
	_, err := c.AddFunc(cfg.Scheduler.BookingExpirySpec, func() {
		expirePendingBookings(bookings, logger)
	})
	if err != nil {
		return errors.Wrap(err, "invalid SCHEDULER_BOOKING_EXPIRY_SPEC")
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			logger.Info("scheduler started", "booking_expiry", cfg.Scheduler.BookingExpirySpec)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return nil
}

func expirePendingBookings(bookings commands.BookingCommands, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	n, err := bookings.ExpireStalePending(ctx)
	if err != nil {
		logger.Error("booking expiry job failed", "error", err)
		return
	}
	metrics.AddExpiredBookings(n)
	if n > 0 {
		logger.Info("expired stale pending bookings", "count", n)
	}
}
