package ports

import (
	"context"

	"github.com/Jay-Lhomme/levelup-server/internal/domain"
)

type EventNotifier interface {
	NotifySignup(ctx context.Context, organizer, gamer *domain.Gamer, event *domain.Event)
	NotifyLeave(ctx context.Context, organizer, gamer *domain.Gamer, event *domain.Event)
	NotifyUpcoming(ctx context.Context, attendee *domain.Gamer, event *domain.Event)
}
