package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wb-go/wbf/logger"

	"github.com/Jay-Lhomme/levelup-server/internal/reminder/mocks"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReminder_Tick_SendsReminders(t *testing.T) {
	eventSvc := mocks.NewMockUpcomingReminder(t)
	log := newTestLogger(t)

	r := New(eventSvc, 50*time.Millisecond, 24*time.Hour, log)

	eventSvc.EXPECT().RemindUpcoming(mock.Anything, 24*time.Hour).Return(2, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(eventSvc.Calls), 1)
}

func TestReminder_Tick_HandlesError(t *testing.T) {
	eventSvc := mocks.NewMockUpcomingReminder(t)
	log := newTestLogger(t)

	r := New(eventSvc, 50*time.Millisecond, 24*time.Hour, log)

	eventSvc.EXPECT().RemindUpcoming(mock.Anything, 24*time.Hour).Return(0, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(eventSvc.Calls), 1)
}

func TestReminder_StopsOnContextCancel(t *testing.T) {
	eventSvc := mocks.NewMockUpcomingReminder(t)
	log := newTestLogger(t)

	r := New(eventSvc, time.Second, 24*time.Hour, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reminder did not stop on context cancel")
	}
}

func TestReminder_MultipleTicks(t *testing.T) {
	eventSvc := mocks.NewMockUpcomingReminder(t)
	log := newTestLogger(t)

	r := New(eventSvc, 30*time.Millisecond, time.Hour, log)

	eventSvc.EXPECT().RemindUpcoming(mock.Anything, time.Hour).Return(0, nil).Times(3)

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(eventSvc.Calls), 3)
}
