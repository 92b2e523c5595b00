package notify_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stoyanovb/gradina-api/internal/application/notify"
	"github.com/stoyanovb/gradina-api/internal/domain/entity"
	"github.com/stoyanovb/gradina-api/pkg/logger"
)

type recordingMailer struct {
	mu       sync.Mutex
	sent     []string
	failNext bool
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failNext {
		m.failNext = false
		return errors.New("smtp: connection refused")
	}
	m.sent = append(m.sent, to+"|"+subject)
	return nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Env: "production", Level: "error"})
}

func TestDispatcher_DeliversEvents(t *testing.T) {
	mailer := &recordingMailer{}
	d := notify.NewDispatcher(mailer, testLogger(), 8)

	d.Enqueue(notify.Event{
		Kind:        notify.EventOrderStatus,
		Recipient:   "partner@example.bg",
		CompanyName: "Градински рай ЕООД",
		OrderNumber: "B2B-20260830-0001",
		OrderStatus: entity.OrderShipped,
	})
	d.Enqueue(notify.Event{
		Kind:        notify.EventCompanyApproved,
		Recipient:   "partner@example.bg",
		CompanyName: "Градински рай ЕООД",
		Tier:        entity.TierGold,
	})
	d.Close()

	assert.Len(t, mailer.sent, 2)
	assert.Contains(t, mailer.sent[0], "B2B-20260830-0001")
}

// A send failure is logged and swallowed; later events still go out.
func TestDispatcher_SendFailureDoesNotStopWorker(t *testing.T) {
	mailer := &recordingMailer{failNext: true}
	d := notify.NewDispatcher(mailer, testLogger(), 8)

	d.Enqueue(notify.Event{Kind: notify.EventOrderStatus, Recipient: "a@example.bg", OrderStatus: entity.OrderConfirmed})
	d.Enqueue(notify.Event{Kind: notify.EventOrderStatus, Recipient: "b@example.bg", OrderStatus: entity.OrderConfirmed})
	d.Close()

	assert.Len(t, mailer.sent, 1)
}

func TestDispatcher_SkipsEmptyRecipient(t *testing.T) {
	mailer := &recordingMailer{}
	d := notify.NewDispatcher(mailer, testLogger(), 8)
	d.Enqueue(notify.Event{Kind: notify.EventOrderStatus, OrderStatus: entity.OrderDelivered})
	d.Close()

	assert.Empty(t, mailer.sent)
}
