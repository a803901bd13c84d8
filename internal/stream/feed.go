// Package stream описывает поток событий изменений между транспортом и движком.
package stream

import (
	"context"
	"sync"

	"github.com/shenikar/rescue_pulse/internal/models"
)

// Feed - открытая подписка на изменения.
// Производитель пишет через Send и завершает через Finish, потребитель читает Events и вызывает Close.
type Feed struct {
	events chan models.ChangeEvent
	done   chan struct{}
	stop   func()

	mu       sync.Mutex
	err      error
	finished bool

	closeOnce sync.Once
}

// NewFeed создает поток; stop вызывается при Close, чтобы остановить производителя
func NewFeed(buffer int, stop func()) *Feed {
	return &Feed{
		events: make(chan models.ChangeEvent, buffer),
		done:   make(chan struct{}),
		stop:   stop,
	}
}

func (f *Feed) Events() <-chan models.ChangeEvent {
	return f.events
}

// Send доставляет событие в порядке вызова. false - поток закрыт или контекст отменен.
func (f *Feed) Send(ctx context.Context, ev models.ChangeEvent) bool {
	select {
	case <-f.done:
		return false
	default:
	}
	select {
	case f.events <- ev:
		return true
	case <-f.done:
		return false
	case <-ctx.Done():
		return false
	}
}

// Finish закрывает канал событий; err объясняет, почему поток прервался
func (f *Feed) Finish(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.finished {
		return
	}
	f.finished = true
	f.err = err
	close(f.events)
}

func (f *Feed) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Close отписывается от потока. Повторные вызовы безопасны.
func (f *Feed) Close() {
	f.closeOnce.Do(func() {
		close(f.done)
		if f.stop != nil {
			f.stop()
		}
	})
}

// Done закрыт после Close
func (f *Feed) Done() <-chan struct{} {
	return f.done
}
