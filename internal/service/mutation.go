package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shenikar/rescue_pulse/internal/engine"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/webhook"
	"github.com/shenikar/rescue_pulse/pkg/e"
	"github.com/sirupsen/logrus"
)

// MutationManager выполняет пользовательские записи: сначала локально, затем в хранилище
type MutationManager struct {
	user      models.User
	store     *engine.Store
	gateway   AlertGateway
	monitor   *AvailabilityMonitor
	locator   Locator
	publisher webhook.WebhookPublisher
	reload    func(ctx context.Context) error
	ledger    *lru.Cache[uuid.UUID, models.Mutation]
	logger    *logrus.Logger
}

func NewMutationManager(
	user models.User,
	store *engine.Store,
	gateway AlertGateway,
	monitor *AvailabilityMonitor,
	locator Locator,
	publisher webhook.WebhookPublisher,
	reload func(ctx context.Context) error,
	ledgerSize int,
	logger *logrus.Logger,
) (*MutationManager, error) {
	ledger, err := lru.New[uuid.UUID, models.Mutation](ledgerSize)
	if err != nil {
		return nil, fmt.Errorf("service: could not create mutation ledger: %w", err)
	}
	return &MutationManager{
		user:      user,
		store:     store,
		gateway:   gateway,
		monitor:   monitor,
		locator:   locator,
		publisher: publisher,
		reload:    reload,
		ledger:    ledger,
		logger:    logger,
	}, nil
}

// Create публикует новый запрос
func (m *MutationManager) Create(ctx context.Context, in CreateInput) (models.Alert, models.Mutation, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":      "mutation",
		"method":       "Create",
		"category":     in.Category,
		"is_emergency": in.IsEmergency,
	})
	log.Info("Attempting to create a new alert")

	mut := models.NewMutation(models.MutationCreate, uuid.Nil)

	if !m.monitor.Healthy() {
		m.rollBack(&mut, ErrUnavailable)
		return models.Alert{}, mut, fmt.Errorf("service: could not create alert: %w", ErrUnavailable)
	}
	if in.IsEmergency {
		if active, ok := m.store.ActiveBroadcast(); ok {
			log.WithField("active_alert_id", active.ID).Warn("Emergency broadcast already active")
			m.rollBack(&mut, ErrBroadcastActive)
			return models.Alert{}, mut, fmt.Errorf("service: could not create alert: %w", ErrBroadcastActive)
		}
	}

	draft := models.NewDraft(m.user, in.Category, in.Description, in.Severity, in.IsEmergency, in.IsAnonymous)
	draft.Location = m.coordinates(ctx, log)

	alert, err := m.gateway.Insert(ctx, draft)
	if err != nil {
		m.rollBack(&mut, err)
		if e.IsSchemaMissing(err) {
			m.monitor.Degrade(err)
			return models.Alert{}, mut, fmt.Errorf("service: could not create alert: %w", ErrUnavailable)
		}
		log.WithError(err).Error("Failed to insert alert")
		return models.Alert{}, mut, fmt.Errorf("service: could not create alert: %w", err)
	}

	mut.AlertID = alert.ID
	if !m.store.Insert(alert) {
		log.WithField("alert_id", alert.ID).Debug("Change stream delivered the alert first")
	}
	if alert.IsEmergency {
		m.store.SetActiveBroadcast(alert.ID)
		if m.publisher != nil {
			if err := m.publisher.Publish(ctx, webhook.NewBroadcastEvent(alert)); err != nil {
				log.WithError(err).Warn("Failed to publish broadcast webhook")
			}
		}
	}

	mut.Confirm()
	m.record(mut)
	log.WithField("alert_id", alert.ID).Info("Alert created successfully")
	return alert, mut, nil
}

// Respond добавляет текущего пользователя в респонденты
func (m *MutationManager) Respond(ctx context.Context, alertID uuid.UUID) (models.Mutation, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":  "mutation",
		"method":   "Respond",
		"alert_id": alertID,
	})
	mut := models.NewMutation(models.MutationRespond, alertID)

	current, ok := m.store.Get(alertID)
	if !ok {
		m.rollBack(&mut, ErrAlertNotFound)
		return mut, fmt.Errorf("service: could not respond: %w", ErrAlertNotFound)
	}
	if current.HasResponder(m.user.ID) {
		mut.Confirm()
		m.record(mut)
		return mut, nil
	}

	updated, err := m.store.Respond(alertID, m.user.ID)
	if err != nil {
		if errors.Is(err, engine.ErrAlertClosed) {
			err = ErrAlertClosed
		} else {
			err = ErrAlertNotFound
		}
		m.rollBack(&mut, err)
		return mut, fmt.Errorf("service: could not respond: %w", err)
	}

	patch := models.StatusPatch{Status: models.StatusResponding, Responders: updated.Responders}
	if err := m.gateway.UpdateStatus(ctx, alertID, patch); err != nil {
		log.WithError(err).Warn("Remote respond failed, resynchronizing")
		m.rollBack(&mut, err)
		if e.IsSchemaMissing(err) {
			m.monitor.Degrade(err)
		} else if rerr := m.reload(ctx); rerr != nil {
			log.WithError(rerr).Error("Failed to reload after rejected respond")
		}
		return mut, fmt.Errorf("service: could not respond: %w", err)
	}

	mut.Confirm()
	m.record(mut)
	log.Info("Responded to alert")
	return mut, nil
}

// ResolveActive закрывает активную трансляцию пользователя после подтверждения хранилищем
func (m *MutationManager) ResolveActive(ctx context.Context) (models.Mutation, error) {
	active, ok := m.store.ActiveBroadcast()
	if !ok {
		return models.Mutation{}, fmt.Errorf("service: could not resolve: %w", ErrNoActiveBroadcast)
	}

	log := m.logger.WithFields(logrus.Fields{
		"service":  "mutation",
		"method":   "ResolveActive",
		"alert_id": active.ID,
	})
	mut := models.NewMutation(models.MutationResolve, active.ID)

	err := m.gateway.UpdateStatus(ctx, active.ID, models.StatusPatch{Status: models.StatusResolved})
	if errors.Is(err, e.ErrNotFound) {
		// запись уже закрыта или удалена в хранилище
		log.WithError(err).Info("Alert already closed remotely")
		err = nil
	}
	if err != nil {
		log.WithError(err).Error("Failed to resolve alert")
		m.rollBack(&mut, err)
		if e.IsSchemaMissing(err) {
			m.monitor.Degrade(err)
		}
		return mut, fmt.Errorf("service: could not resolve: %w", err)
	}

	m.store.Remove(active.ID)
	mut.Confirm()
	m.record(mut)
	log.Info("Active broadcast resolved")
	return mut, nil
}

// Delete убирает собственный запрос; при запрете удаления закрывает его статусом resolved
func (m *MutationManager) Delete(ctx context.Context, alertID uuid.UUID) (models.Mutation, error) {
	log := m.logger.WithFields(logrus.Fields{
		"service":  "mutation",
		"method":   "Delete",
		"alert_id": alertID,
	})
	mut := models.NewMutation(models.MutationDelete, alertID)

	current, ok := m.store.Get(alertID)
	if !ok {
		m.rollBack(&mut, ErrAlertNotFound)
		return mut, fmt.Errorf("service: could not delete: %w", ErrAlertNotFound)
	}
	if current.OwnerID != m.user.ID {
		m.rollBack(&mut, ErrNotOwner)
		return mut, fmt.Errorf("service: could not delete: %w", ErrNotOwner)
	}

	m.store.Remove(alertID)

	if err := m.gateway.DeleteComments(ctx, alertID); err != nil {
		log.WithError(err).Debug("Failed to delete dependent comments")
	}

	delErr := m.gateway.Delete(ctx, alertID)
	if delErr == nil {
		mut.Confirm()
		m.record(mut)
		log.Info("Alert deleted")
		return mut, nil
	}

	log.WithError(delErr).Warn("Delete rejected, resolving instead")
	resErr := m.gateway.UpdateStatus(ctx, alertID, models.StatusPatch{Status: models.StatusResolved})
	if resErr == nil {
		mut.Confirm()
		m.record(mut)
		log.Info("Alert resolved in place of delete")
		return mut, nil
	}

	err := errors.Join(delErr, resErr)
	log.WithError(err).Error("Delete fallback failed, forcing reload")
	m.rollBack(&mut, err)
	if rerr := m.reload(ctx); rerr != nil {
		log.WithError(rerr).Error("Failed to reload after failed delete")
	}
	return mut, fmt.Errorf("service: could not delete: %w", err)
}

// Mutations возвращает журнал последних операций, новые первыми
func (m *MutationManager) Mutations() []models.Mutation {
	values := m.ledger.Values()
	out := make([]models.Mutation, len(values))
	for i, v := range values {
		out[len(values)-1-i] = v
	}
	return out
}

// coordinates берет текущую позицию, при неудаче - 0,0
func (m *MutationManager) coordinates(ctx context.Context, log *logrus.Entry) models.Coordinates {
	if m.locator != nil {
		if c, ok := m.locator.Current(ctx); ok {
			return c
		}
	}
	log.Warn("Location unavailable, using 0,0")
	return models.Coordinates{}
}

func (m *MutationManager) rollBack(mut *models.Mutation, err error) {
	mut.RollBack(err)
	m.record(*mut)
}

func (m *MutationManager) record(mut models.Mutation) {
	m.ledger.Add(mut.ID, mut)
}
