package service

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

type AvailabilityState string

const (
	StateHealthy  AvailabilityState = "healthy"
	StateDegraded AvailabilityState = "degraded"
)

// RequiredCollections - коллекции, без которых сессия не работает
var RequiredCollections = []string{"alerts", "profiles"}

// Prober проверяет существование коллекции хранилища
type Prober interface {
	Probe(ctx context.Context, collection string) error
}

// AvailabilityMonitor переводит сессию в Degraded при отсутствии схемы
// и опрашивает хранилище с постоянным интервалом до восстановления.
type AvailabilityMonitor struct {
	prober      Prober
	collections []string
	interval    time.Duration
	onRecover   func(ctx context.Context)
	logger      *logrus.Logger

	mu    sync.Mutex
	state AvailabilityState
	wg    sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc
}

func NewAvailabilityMonitor(prober Prober, collections []string, interval time.Duration, onRecover func(ctx context.Context), logger *logrus.Logger) *AvailabilityMonitor {
	ctx, cancel := context.WithCancel(context.Background())
	return &AvailabilityMonitor{
		prober:      prober,
		collections: collections,
		interval:    interval,
		onRecover:   onRecover,
		logger:      logger,
		state:       StateHealthy,
		ctx:         ctx,
		cancel:      cancel,
	}
}

func (m *AvailabilityMonitor) State() AvailabilityState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *AvailabilityMonitor) Healthy() bool {
	return m.State() == StateHealthy
}

// Degrade переводит монитор в Degraded и запускает опрос. Повторные вызовы ничего не делают.
func (m *AvailabilityMonitor) Degrade(reason error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == StateDegraded {
		return
	}
	m.state = StateDegraded

	log := m.logger.WithFields(logrus.Fields{
		"service": "availability",
		"method":  "Degrade",
	})
	if reason != nil {
		log = log.WithError(reason)
	}
	log.Warn("Alert store schema is missing, entering degraded mode")

	if m.ctx.Err() != nil {
		return
	}
	probeCtx, stop := context.WithCancel(m.ctx)
	m.wg.Add(1)
	go m.probeLoop(probeCtx, stop)
}

// Stop останавливает опрос и ждет завершения фоновой задачи
func (m *AvailabilityMonitor) Stop() {
	m.mu.Lock()
	m.cancel()
	m.mu.Unlock()
	m.wg.Wait()
}

func (m *AvailabilityMonitor) probeLoop(ctx context.Context, stop context.CancelFunc) {
	defer m.wg.Done()
	defer stop()

	log := m.logger.WithFields(logrus.Fields{
		"service": "availability",
		"method":  "probeLoop",
	})

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Debug("Probe loop stopped")
			return
		case <-ticker.C:
			if !m.probeAll(ctx) {
				continue
			}

			m.mu.Lock()
			if ctx.Err() != nil {
				m.mu.Unlock()
				return
			}
			m.state = StateHealthy
			m.mu.Unlock()

			log.Info("Alert store is available again")
			if m.onRecover != nil {
				m.onRecover(m.ctx)
			}
			return
		}
	}
}

// probeAll проверяет все коллекции; успех только если проверки прошли без ошибок
func (m *AvailabilityMonitor) probeAll(ctx context.Context) bool {
	ok := true
	for _, c := range m.collections {
		probeCtx, cancel := context.WithTimeout(ctx, m.interval)
		err := m.prober.Probe(probeCtx, c)
		cancel()
		if err != nil {
			m.logger.WithError(err).WithField("collection", c).Debug("Probe failed")
			ok = false
		}
	}
	return ok
}
