package pusher

import (
	"sync"
	"time"

	"github.com/zeromicro/go-zero/core/logx"
)

// Pusher buffers messages and hands them to PushLogic in batches, once per
// PushInterval. A failed batch stays buffered and is retried on the next
// tick.
type Pusher[T any] struct {
	MessagesBuffer []T
	PushLogic      func(...T) error
	PushInterval   time.Duration
	ErrorHandler   func(error)
	lock           sync.Mutex
	stop           chan struct{}
	done           chan struct{}
	once           sync.Once
}

func NewPusher[T any](options ...Option[T]) (newPusher *Pusher[T]) {
	newPusher = &Pusher[T]{
		PushLogic:    func(...T) error { return nil },
		ErrorHandler: func(err error) { logx.Errorf("push messages: %v", err) },
		PushInterval: time.Second,
		stop:         make(chan struct{}),
		done:         make(chan struct{}),
	}

	for _, option := range options {
		option(newPusher)
	}

	return
}

func (p *Pusher[T]) PushAll() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if len(p.MessagesBuffer) == 0 {
		return nil
	}

	if err := p.PushLogic(p.MessagesBuffer...); err != nil {
		return err
	}

	p.MessagesBuffer = []T{}
	return nil
}

func (p *Pusher[T]) AddMessages(messages ...T) {
	p.lock.Lock()
	defer p.lock.Unlock()

	p.MessagesBuffer = append(p.MessagesBuffer, messages...)
}

func (p *Pusher[T]) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()

	return len(p.MessagesBuffer)
}

func (p *Pusher[T]) Start() {
	go func() {
		defer close(p.done)

		interval := p.PushInterval
		if interval <= 0 {
			interval = time.Second
		}
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
			case <-p.stop:
				if err := p.PushAll(); err != nil {
					p.ErrorHandler(err)
				}
				return
			}
		}
	}()
}

// Stop ends the push loop after one last flush and waits for it. It must
// only be called after Start.
func (p *Pusher[T]) Stop() {
	p.once.Do(func() {
		close(p.stop)
	})
	<-p.done
}
