package reminder

import (
	"context"
	"time"

	"github.com/wb-go/wbf/logger"
)

type upcomingReminder interface {
	RemindUpcoming(ctx context.Context, window time.Duration) (int, error)
}

// Reminder periodically notifies attendees of events starting soon.
type Reminder struct {
	eventService upcomingReminder
	interval     time.Duration
	window       time.Duration
	logger       logger.Logger
}

func New(
	eventService upcomingReminder,
	interval time.Duration,
	window time.Duration,
	logger logger.Logger,
) *Reminder {
	return &Reminder{
		eventService: eventService,
		interval:     interval,
		window:       window,
		logger:       logger,
	}
}

func (r *Reminder) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reminder started",
		logger.Duration("interval", r.interval),
		logger.Duration("window", r.window),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reminder stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reminder) tick(ctx context.Context) {
	sent, err := r.eventService.RemindUpcoming(ctx, r.window)
	if err != nil {
		r.logger.Error("failed to send event reminders",
			logger.String("error", err.Error()),
		)
		return
	}

	if sent > 0 {
		r.logger.Info("event reminders sent",
			logger.Int("count", sent),
		)
	}
}
