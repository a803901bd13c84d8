package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_pulse/internal/config"
	"github.com/shenikar/rescue_pulse/internal/engine"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/stream"
	"github.com/shenikar/rescue_pulse/internal/webhook"
	"github.com/shenikar/rescue_pulse/pkg/e"
	"github.com/sirupsen/logrus"
)

// Session связывает хранилище, движок и оптимистичные операции для одного пользователя
type Session struct {
	user             models.User
	gateway          AlertGateway
	locator          Locator
	store            *engine.Store
	monitor          *AvailabilityMonitor
	mutations        *MutationManager
	resubscribeDelay time.Duration
	logger           *logrus.Logger

	mu     sync.Mutex
	closed bool
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewSession(user models.User, gateway AlertGateway, locator Locator, publisher webhook.WebhookPublisher, cfg *config.Config, logger *logrus.Logger) (*Session, error) {
	s := &Session{
		user:             user,
		gateway:          gateway,
		locator:          locator,
		store:            engine.NewStore(user.ID, logger),
		resubscribeDelay: cfg.ResubscribeDelay,
		logger:           logger,
	}
	s.monitor = NewAvailabilityMonitor(gateway, RequiredCollections, cfg.ProbeInterval, s.recovered, logger)

	mutations, err := NewMutationManager(user, s.store, gateway, s.monitor, locator, publisher, s.Reload, cfg.MutationLedgerSize, logger)
	if err != nil {
		return nil, err
	}
	s.mutations = mutations
	return s, nil
}

// Start подписывается на поток изменений, загружает набор и запускает применение событий
func (s *Session) Start(ctx context.Context) {
	s.mu.Lock()
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.mu.Unlock()

	log := s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "Start",
		"user_id": s.user.ID,
	})
	log.Info("Starting alert session")

	// подписка до загрузки: пересечение отсекается дедупликацией по id
	feed := s.subscribe(ctx)
	if err := s.Reload(ctx); err != nil {
		log.WithError(err).Warn("Initial alert load failed")
	}

	s.wg.Add(1)
	go s.run(ctx, feed)
}

// Reload заменяет канонический набор данными хранилища
func (s *Session) Reload(ctx context.Context) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "Reload",
	})

	tok := s.store.BeginLoad()
	alerts, err := s.gateway.FetchOpenAlerts(ctx)
	if err != nil {
		s.store.AbortLoad(tok)
		if e.IsSchemaMissing(err) {
			s.monitor.Degrade(err)
			return fmt.Errorf("service: could not reload alerts: %w", ErrUnavailable)
		}
		log.WithError(err).Error("Failed to fetch open alerts")
		return fmt.Errorf("service: could not reload alerts: %w", err)
	}

	if !s.store.FinishLoad(tok, alerts) {
		log.Debug("Session reset during reload, result discarded")
		return nil
	}
	log.WithField("count", len(alerts)).Info("Alerts reloaded")
	return nil
}

// Close завершает сессию: отписка, остановка опроса, очистка набора
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	cancel := s.cancel
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	s.wg.Wait()
	s.monitor.Stop()
	s.store.Reset()
	if s.locator != nil {
		s.locator.Reset()
	}
	s.logger.WithField("user_id", s.user.ID).Info("Alert session closed")
}

func (s *Session) run(ctx context.Context, feed *stream.Feed) {
	defer s.wg.Done()

	log := s.logger.WithFields(logrus.Fields{
		"service": "session",
		"method":  "run",
	})

	for {
		if feed != nil {
			s.consume(ctx, feed)
			err := feed.Err()
			feed.Close()
			if ctx.Err() != nil {
				return
			}
			if e.IsSchemaMissing(err) {
				s.monitor.Degrade(err)
			}
			log.WithError(err).Warn("Change stream ended")
		}

		if !sleepCtx(ctx, s.resubscribeDelay) {
			return
		}
		feed = s.subscribe(ctx)
		if feed != nil {
			if err := s.Reload(ctx); err != nil {
				log.WithError(err).Warn("Reload after resubscribe failed")
			}
		}
	}
}

// consume применяет события строго в порядке доставки
func (s *Session) consume(ctx context.Context, feed *stream.Feed) {
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-feed.Events():
			if !ok {
				return
			}
			s.store.Apply(ev)
		}
	}
}

func (s *Session) subscribe(ctx context.Context) *stream.Feed {
	feed, err := s.gateway.Subscribe(ctx)
	if err != nil {
		if e.IsSchemaMissing(err) {
			s.monitor.Degrade(err)
		}
		s.logger.WithError(err).Warn("Failed to subscribe to alert changes")
		return nil
	}
	return feed
}

func (s *Session) recovered(ctx context.Context) {
	if err := s.Reload(ctx); err != nil {
		s.logger.WithError(err).Warn("Reload after recovery failed")
	}
}

func (s *Session) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *Session) User() models.User { return s.user }

func (s *Session) Healthy() bool {
	return !s.isClosed() && s.monitor.Healthy()
}

func (s *Session) State() AvailabilityState {
	return s.monitor.State()
}

// Views считает производные представления по текущему снимку
func (s *Session) Views(radiusKm float64) Views {
	var origin *models.Coordinates
	if s.locator != nil {
		if c, ok := s.locator.Last(); ok {
			origin = &c
		}
	}
	return BuildViews(s.store.Snapshot(), s.user.ID, origin, radiusKm)
}

func (s *Session) Snapshot() []models.Alert {
	return s.store.Snapshot()
}

func (s *Session) ActiveBroadcast() (models.Alert, bool) {
	return s.store.ActiveBroadcast()
}

func (s *Session) CreateAlert(ctx context.Context, in CreateInput) (models.Alert, models.Mutation, error) {
	if s.isClosed() {
		return models.Alert{}, models.Mutation{}, ErrSessionClosed
	}
	return s.mutations.Create(ctx, in)
}

func (s *Session) Respond(ctx context.Context, alertID uuid.UUID) (models.Mutation, error) {
	if s.isClosed() {
		return models.Mutation{}, ErrSessionClosed
	}
	return s.mutations.Respond(ctx, alertID)
}

func (s *Session) ResolveActive(ctx context.Context) (models.Mutation, error) {
	if s.isClosed() {
		return models.Mutation{}, ErrSessionClosed
	}
	return s.mutations.ResolveActive(ctx)
}

func (s *Session) DeleteAlert(ctx context.Context, alertID uuid.UUID) (models.Mutation, error) {
	if s.isClosed() {
		return models.Mutation{}, ErrSessionClosed
	}
	return s.mutations.Delete(ctx, alertID)
}

func (s *Session) Mutations() []models.Mutation {
	return s.mutations.Mutations()
}

func (s *Session) UpdateLocation(c models.Coordinates) {
	if s.locator != nil {
		s.locator.Update(c)
	}
}

func (s *Session) Logout() {
	s.Close()
}

// Changes отдает уведомления об изменениях канонического набора
func (s *Session) Changes() (<-chan struct{}, func()) {
	return s.store.Subscribe()
}

func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
