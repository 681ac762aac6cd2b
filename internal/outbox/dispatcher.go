// Package outbox delivers notifications written by the API handlers.
// Handlers only insert unsent rows; this dispatcher polls for them in the
// background and marks them sent, so a slow or failing delivery never blocks
// a request.
package outbox

import (
	"context"
	"time"

	"github.com/edupulse/schoolerp/internal/app/models"
	"github.com/edupulse/schoolerp/internal/pkg/logger"
)

// Store is the slice of the notification repository the dispatcher needs.
type Store interface {
	GetUnsent(ctx context.Context, limit int) ([]*models.Notification, error)
	MarkSent(ctx context.Context, id int64) error
}

// Sender delivers one notification to its target channel (email, push, ...).
type Sender interface {
	Send(ctx context.Context, n *models.Notification) error
}

// LogSender is the default Sender: it records the delivery in the
// application log. Real channels plug in behind the same interface.
type LogSender struct{}

// Send implements Sender.
func (LogSender) Send(_ context.Context, n *models.Notification) error {
	event := logger.Info().Int64("notificationId", n.ID).Int64("schoolId", n.SchoolID).Str("title", n.Title)
	if n.TargetRole != nil {
		event = event.Str("targetRole", string(*n.TargetRole))
	}
	if n.TargetUserID != nil {
		event = event.Int64("targetUserId", *n.TargetUserID)
	}
	event.Msg("Notification delivered")
	return nil
}

// Dispatcher polls the outbox and delivers unsent notifications.
type Dispatcher struct {
	store     Store
	sender    Sender
	interval  time.Duration
	batchSize int
	stop      chan struct{}
	done      chan struct{}
}

// NewDispatcher creates a dispatcher. A nil sender falls back to LogSender.
func NewDispatcher(store Store, sender Sender, interval time.Duration, batchSize int) *Dispatcher {
	if sender == nil {
		sender = LogSender{}
	}
	if interval <= 0 {
		interval = 5 * time.Second
	}
	if batchSize <= 0 {
		batchSize = 50
	}

	return &Dispatcher{
		store:     store,
		sender:    sender,
		interval:  interval,
		batchSize: batchSize,
		stop:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the polling loop in its own goroutine.
func (d *Dispatcher) Start() {
	go d.run()
}

// Stop signals the loop to finish and waits for it to drain the current
// batch.
func (d *Dispatcher) Stop() {
	close(d.stop)
	<-d.done
}

func (d *Dispatcher) run() {
	defer close(d.done)

	ticker := time.NewTicker(d.interval)
	defer ticker.Stop()

	for {
		select {
		case <-d.stop:
			return
		case <-ticker.C:
			d.DispatchOnce(context.Background())
		}
	}
}

// DispatchOnce processes one batch of unsent notifications. Delivery errors
// leave the row unsent so the next tick retries it; MarkSent is idempotent so
// a crash between send and mark at worst re-delivers.
func (d *Dispatcher) DispatchOnce(ctx context.Context) int {
	notifications, err := d.store.GetUnsent(ctx, d.batchSize)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to read notification outbox")
		return 0
	}

	sent := 0
	for _, notification := range notifications {
		if err := d.sender.Send(ctx, notification); err != nil {
			logger.Warn().Err(err).Int64("notificationId", notification.ID).Msg("Notification delivery failed")
			continue
		}

		if err := d.store.MarkSent(ctx, notification.ID); err != nil {
			logger.Error().Err(err).Int64("notificationId", notification.ID).Msg("Failed to mark notification sent")
			continue
		}
		sent++
	}

	return sent
}
