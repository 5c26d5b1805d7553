package reconciler

import (
	"context"

	"go.uber.org/zap"
)

// SenderPool fans reminder mail out over a fixed set of senders so one slow
// SendGrid call cannot serialize a cycle.
type SenderPool interface {
	Enqueue(ctx context.Context, send SendTask) error
	Close()
}

type SendTask func() error

type MailPool struct {
	queue chan SendTask
}

func NewMailPool(senders int) *MailPool {
	queue := make(chan SendTask, senders)
	mp := &MailPool{queue: queue}

	for i := 0; i < senders; i++ {
		go mp.sender()
	}
	return mp
}

func (mp *MailPool) sender() {
	for send := range mp.queue {
		if err := send(); err != nil {
			zap.L().Error("reminder send failed", zap.Error(err))
		}
	}
}

func (mp *MailPool) Enqueue(ctx context.Context, send SendTask) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case mp.queue <- send:
		return nil
	}
}

func (mp *MailPool) Close() {
	select {
	case <-mp.queue:
	default:
		close(mp.queue)
	}
}
