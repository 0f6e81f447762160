package mailer

import (
	"context"
	"sync"
	"time"

	"dogstudio/internal/domain"
	"dogstudio/internal/logger"
)

const sendTimeout = 30 * time.Second

// Dispatcher runs email delivery on a background worker so booking creation
// and status updates never wait on, or fail with, the email collaborator.
type Dispatcher struct {
	svc  *Service
	jobs chan func(context.Context)

	closeOnce sync.Once
	done      chan struct{}
	wg        sync.WaitGroup
}

func NewDispatcher(svc *Service, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		svc:  svc,
		jobs: make(chan func(context.Context), buffer),
		done: make(chan struct{}),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for job := range d.jobs {
		ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
		job(ctx)
		cancel()
	}
}

// Close stops accepting work and waits for queued emails to drain.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.done)
		close(d.jobs)
	})
	d.wg.Wait()
}

func (d *Dispatcher) enqueue(job func(context.Context)) {
	select {
	case <-d.done:
		logger.ErrorLogger.Error("Email dispatcher closed, dropping email job")
		return
	default:
	}

	select {
	case d.jobs <- job:
	default:
		// A full queue means the email collaborator is down or slow.
		// Dropping keeps bookings flowing; the send would have failed anyway.
		logger.ErrorLogger.Error("Email queue full, dropping email job")
	}
}

// NotifyBookingCreated queues the customer confirmation and the owner alert.
func (d *Dispatcher) NotifyBookingCreated(b *domain.Booking) {
	booking := *b
	d.enqueue(func(ctx context.Context) {
		d.svc.SendBookingConfirmation(ctx, &booking)
		d.svc.SendOwnerNotification(ctx, &booking)
	})
}

// NotifyStatusChanged queues the status-specific customer email.
func (d *Dispatcher) NotifyStatusChanged(b *domain.Booking, newStatus domain.BookingStatus) {
	booking := *b
	d.enqueue(func(ctx context.Context) {
		d.svc.SendStatusUpdateEmail(ctx, &booking, newStatus)
	})
}
