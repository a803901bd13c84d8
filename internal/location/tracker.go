package location

import (
	"context"
	"sync"
	"time"

	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/sirupsen/logrus"
)

// FetchTimeout ограничивает разовый запрос координат
const FetchTimeout = 5 * time.Second

// FetchFunc - разовый запрос текущих координат устройства
type FetchFunc func(ctx context.Context) (models.Coordinates, error)

// Tracker хранит последние известные координаты пользователя.
// Update вызывается наблюдателем позиции, Current - в момент действия.
type Tracker struct {
	mu        sync.RWMutex
	last      *models.Coordinates
	updatedAt time.Time

	fetch  FetchFunc
	logger *logrus.Logger
}

func NewTracker(fetch FetchFunc, logger *logrus.Logger) *Tracker {
	return &Tracker{fetch: fetch, logger: logger}
}

func (t *Tracker) Update(c models.Coordinates) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = &c
	t.updatedAt = time.Now()
}

func (t *Tracker) Last() (models.Coordinates, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.last == nil {
		return models.Coordinates{}, false
	}
	return *t.last, true
}

// Current возвращает последние координаты или делает одну попытку их получить
func (t *Tracker) Current(ctx context.Context) (models.Coordinates, bool) {
	if c, ok := t.Last(); ok {
		return c, true
	}
	if t.fetch == nil {
		return models.Coordinates{}, false
	}

	ctx, cancel := context.WithTimeout(ctx, FetchTimeout)
	defer cancel()

	c, err := t.fetch(ctx)
	if err != nil {
		t.logger.WithError(err).Warn("Geolocation request failed")
		return models.Coordinates{}, false
	}
	if !c.Valid() {
		t.logger.WithField("coordinates", c).Warn("Geolocation returned invalid coordinates")
		return models.Coordinates{}, false
	}
	t.Update(c)
	return c, true
}

// Reset забывает координаты при завершении сессии
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = nil
	t.updatedAt = time.Time{}
}
