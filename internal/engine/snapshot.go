package engine

import (
	"github.com/google/uuid"
	"github.com/shenikar/rescue_pulse/internal/models"
)

// Snapshot возвращает копию набора, безопасную для чтения вне Store
func (s *Store) Snapshot() []models.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Alert, len(s.alerts))
	for i, a := range s.alerts {
		out[i] = a.Clone()
	}
	return out
}

func (s *Store) Get(id uuid.UUID) (models.Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return models.Alert{}, false
	}
	return s.alerts[i].Clone(), true
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.alerts)
}

// ActiveBroadcast возвращает отслеживаемую активную трансляцию локального пользователя
func (s *Store) ActiveBroadcast() (models.Alert, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.active == nil {
		return models.Alert{}, false
	}
	i, ok := s.index[*s.active]
	if !ok {
		return models.Alert{}, false
	}
	return s.alerts[i].Clone(), true
}

func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Subscribe возвращает канал уведомлений об изменениях.
// Уведомления схлопываются: подписчик, не успевший прочитать, получит одно.
func (s *Store) Subscribe() (<-chan struct{}, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	ch := make(chan struct{}, 1)
	s.subs[id] = ch

	return ch, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if c, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(c)
		}
	}
}

// changed вызывается под блокировкой записи
func (s *Store) changed() {
	s.version++
	for _, ch := range s.subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
