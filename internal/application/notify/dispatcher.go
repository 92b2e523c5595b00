// Package notify decouples status-change notifications from the state
// machines that produce them. Transitions enqueue an event after a
// successful commit; a worker goroutine delivers it best-effort. A failed
// or dropped notification never rolls back or fails the transition.
package notify

import (
	"fmt"
	"sync"

	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/pkg/logger"
)

// Mailer sends one rendered message. Implemented over SMTP in
// infrastructure/email.
type Mailer interface {
	Send(to, subject, body string) error
}

// EventKind discriminates notification events.
type EventKind string

const (
	EventOrderStatus     EventKind = "order_status"
	EventCompanyApproved EventKind = "company_approved"
)

// Event is one queued notification.
type Event struct {
	Kind        EventKind
	Recipient   string
	CompanyName string
	OrderNumber string
	OrderStatus entity.OrderStatus
	Tier        entity.Tier
}

// Dispatcher consumes events from a buffered channel on a single worker
// goroutine. Enqueue never blocks the caller.
type Dispatcher struct {
	mailer Mailer
	log    *logger.Logger
	events chan Event
	done   chan struct{}
	once   sync.Once
}

// NewDispatcher constructs and starts the dispatcher.
func NewDispatcher(mailer Mailer, log *logger.Logger, buffer int) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		mailer: mailer,
		log:    log,
		events: make(chan Event, buffer),
		done:   make(chan struct{}),
	}
	go d.run()
	return d
}

// Enqueue queues an event for delivery. When the buffer is full the event
// is dropped and logged; notifications are best-effort.
func (d *Dispatcher) Enqueue(e Event) {
	select {
	case d.events <- e:
	default:
		d.log.Warn().
			Str("kind", string(e.Kind)).
			Str("recipient", e.Recipient).
			Msg("notification buffer full, event dropped")
	}
}

// Close stops accepting events and drains the queue.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.events)
		<-d.done
	})
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for e := range d.events {
		if e.Recipient == "" {
			continue
		}
		subject, body := render(e)
		if err := d.mailer.Send(e.Recipient, subject, body); err != nil {
			d.log.Error().Err(err).
				Str("kind", string(e.Kind)).
				Str("recipient", e.Recipient).
				Msg("notification send failed")
			continue
		}
		d.log.Debug().
			Str("kind", string(e.Kind)).
			Str("recipient", e.Recipient).
			Msg("notification sent")
	}
}

// render builds the Bulgarian subject and body for an event.
func render(e Event) (subject, body string) {
	switch e.Kind {
	case EventCompanyApproved:
		subject = "Вашата регистрация е одобрена"
		body = fmt.Sprintf(
			"Здравейте, %s!\n\nВашият партньорски акаунт е одобрен с ниво %s. Вече можете да влезете в портала и да поръчвате на партньорски цени.\n",
			e.CompanyName, tierLabel(e.Tier),
		)
	case EventOrderStatus:
		subject = fmt.Sprintf("Поръчка %s: %s", e.OrderNumber, statusLabel(e.OrderStatus))
		body = fmt.Sprintf(
			"Здравейте, %s!\n\nСтатусът на вашата поръчка %s е променен на: %s.\n",
			e.CompanyName, e.OrderNumber, statusLabel(e.OrderStatus),
		)
	default:
		subject = "Известие"
		body = "Имате ново известие от портала."
	}
	return subject, body
}

func statusLabel(s entity.OrderStatus) string {
	switch s {
	case entity.OrderPending:
		return "в изчакване"
	case entity.OrderConfirmed:
		return "потвърдена"
	case entity.OrderProcessing:
		return "в обработка"
	case entity.OrderShipped:
		return "изпратена"
	case entity.OrderDelivered:
		return "доставена"
	case entity.OrderCancelled:
		return "отказана"
	}
	return string(s)
}

func tierLabel(t entity.Tier) string {
	switch t {
	case entity.TierSilver:
		return "Сребърен партньор"
	case entity.TierGold:
		return "Златен партньор"
	case entity.TierPlatinum:
		return "Платинен партньор"
	}
	return string(t)
}
