package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shenikar/rescue_pulse/internal/config"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/service/mocks"
	"github.com/shenikar/rescue_pulse/internal/webhook"
	webhook_mocks "github.com/shenikar/rescue_pulse/internal/webhook/mocks"
	"github.com/shenikar/rescue_pulse/pkg/e"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var testUser = models.User{ID: "me", Name: "Алиса", Avatar: "https://example.com/me.png"}

type testDeps struct {
	gateway   *mocks.MockAlertGateway
	locator   *mocks.MockLocator
	publisher *webhook_mocks.MockWebhookPublisher
}

// newTestSession - вспомогательная функция для создания сессии с моками.
func newTestSession(t *testing.T, cfg *config.Config) (*Session, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)
	deps := testDeps{
		gateway:   mocks.NewMockAlertGateway(ctrl),
		locator:   mocks.NewMockLocator(ctrl),
		publisher: webhook_mocks.NewMockWebhookPublisher(ctrl),
	}
	deps.locator.EXPECT().Reset().AnyTimes()

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	if cfg == nil {
		cfg = &config.Config{
			ProbeInterval:      time.Hour,
			ResubscribeDelay:   time.Hour,
			MutationLedgerSize: 16,
		}
	}

	s, err := NewSession(testUser, deps.gateway, deps.locator, deps.publisher, cfg, logger)
	require.NoError(t, err)
	t.Cleanup(s.Close)
	return s, deps
}

func remoteAlert(owner string, emergency bool) models.Alert {
	return models.Alert{
		ID:          uuid.New(),
		OwnerID:     owner,
		DisplayName: owner,
		Category:    models.CategoryMedical,
		Description: "нужна помощь",
		Location:    models.Coordinates{Lat: 55.75, Lng: 37.61},
		CreatedAt:   time.Now().UTC(),
		Status:      models.StatusActive,
		Responders:  []string{},
		Severity:    models.SeverityHigh,
		IsEmergency: emergency,
	}
}

func schemaMissingErr() error {
	return e.WrapError(context.Background(), "repository.FetchOpenAlerts",
		&pgconn.PgError{Code: "42P01", Message: `relation "alerts" does not exist`})
}

// confirmedFrom симулирует запись, которую вернуло хранилище
func confirmedFrom(d models.Draft) models.Alert {
	return models.Alert{
		ID:            uuid.New(),
		OwnerID:       d.OwnerID,
		DisplayName:   d.DisplayName,
		DisplayAvatar: d.DisplayAvatar,
		Category:      d.Category,
		Description:   d.Description,
		Location:      d.Location,
		CreatedAt:     time.Now().UTC(),
		Status:        models.StatusActive,
		Responders:    []string{},
		Severity:      d.Severity,
		IsEmergency:   d.IsEmergency,
		IsAnonymous:   d.IsAnonymous,
	}
}

func TestCreate_EmergencySuccess(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	ctx := context.Background()
	here := models.Coordinates{Lat: 10, Lng: 20}
	var created models.Alert

	// Ожидания
	deps.locator.EXPECT().Current(gomock.Any()).Return(here, true).Times(1)
	deps.gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Draft) (models.Alert, error) {
			assert.Equal(t, testUser.ID, d.OwnerID)
			assert.Equal(t, testUser.Name, d.DisplayName)
			assert.Equal(t, here, d.Location)
			assert.Equal(t, models.SeverityHigh, d.Severity)
			created = confirmedFrom(d)
			return created, nil
		}).Times(1)
	deps.publisher.EXPECT().
		Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, ev webhook.BroadcastEvent) {
			assert.Equal(t, created.ID, ev.AlertID)
		}).Return(nil).Times(1)

	// Действие
	alert, mut, err := s.CreateAlert(ctx, CreateInput{Category: models.CategoryMedical, Description: "плохо с сердцем", IsEmergency: true})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, created.ID, alert.ID)
	assert.Equal(t, models.MutationConfirmed, mut.State)
	assert.Equal(t, alert.ID, mut.AlertID)

	active, ok := s.ActiveBroadcast()
	require.True(t, ok)
	assert.Equal(t, alert.ID, active.ID)
	assert.Equal(t, models.StatusActive, active.Status)

	// эхо из потока не дублирует запись
	s.store.Apply(models.Inserted(alert))
	assert.Len(t, s.Snapshot(), 1)
}

func TestCreate_AnonymousPostWithoutLocation(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)

	// Ожидания
	deps.locator.EXPECT().Current(gomock.Any()).Return(models.Coordinates{}, false).Times(1)
	deps.gateway.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Draft) (models.Alert, error) {
			assert.Equal(t, models.AnonymousName, d.DisplayName)
			assert.Equal(t, models.AnonymousAvatar, d.DisplayAvatar)
			assert.Equal(t, models.Coordinates{}, d.Location)
			return confirmedFrom(d), nil
		}).Times(1)
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)
	deps.locator.EXPECT().Last().Return(models.Coordinates{}, false).Times(1)

	// Действие
	alert, _, err := s.CreateAlert(context.Background(), CreateInput{
		Category:    models.CategoryMechanical,
		Description: "сел аккумулятор",
		Severity:    models.SeverityLow,
		IsAnonymous: true,
	})

	// Проверки
	require.NoError(t, err)
	assert.True(t, alert.IsAnonymous)
	_, ok := s.ActiveBroadcast()
	assert.False(t, ok, "non-emergency posts are not broadcasts")
	assert.Len(t, s.Views(0).Mine, 1)
}

func TestCreate_SchemaMissingDegrades(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)

	// Ожидания
	deps.locator.EXPECT().Current(gomock.Any()).Return(models.Coordinates{}, false)
	deps.gateway.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(models.Alert{}, schemaMissingErr()).Times(1)

	// Действие
	_, mut, err := s.CreateAlert(context.Background(), CreateInput{Category: models.CategoryFire, IsEmergency: true})

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.Equal(t, models.MutationRolledBack, mut.State)
	assert.Equal(t, StateDegraded, s.State())
	assert.Empty(t, s.Snapshot())

	// в Degraded создание отключено, хранилище не вызывается
	_, _, err = s.CreateAlert(context.Background(), CreateInput{Category: models.CategoryFire})
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestCreate_TransportFailureLeavesStateUntouched(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)

	// Ожидания
	deps.locator.EXPECT().Current(gomock.Any()).Return(models.Coordinates{}, false)
	deps.gateway.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(models.Alert{}, errors.New("connection refused")).Times(1)

	// Действие
	_, _, err := s.CreateAlert(context.Background(), CreateInput{Category: models.CategoryOther})

	// Проверки
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrUnavailable)
	assert.ErrorContains(t, err, "could not create alert")
	assert.True(t, s.Healthy())
	assert.Empty(t, s.Snapshot())
}

func TestCreate_SecondEmergencyRejected(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	s.store.Load([]models.Alert{remoteAlert(testUser.ID, true)})

	// Ожидания
	deps.gateway.EXPECT().Insert(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, _, err := s.CreateAlert(context.Background(), CreateInput{Category: models.CategoryFire, IsEmergency: true})

	// Проверки
	assert.ErrorIs(t, err, ErrBroadcastActive)
}

func TestRespond_Success(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	other := remoteAlert("u1", true)
	s.store.Load([]models.Alert{other})

	// Ожидания
	deps.gateway.EXPECT().
		UpdateStatus(gomock.Any(), other.ID, models.StatusPatch{Status: models.StatusResponding, Responders: []string{testUser.ID}}).
		Return(nil).Times(1)

	// Действие
	mut, err := s.Respond(context.Background(), other.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.MutationConfirmed, mut.State)
	got, ok := s.store.Get(other.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusResponding, got.Status)
	assert.Equal(t, []string{testUser.ID}, got.Responders)
}

func TestRespond_AlreadyResponder(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	other := remoteAlert("u1", true)
	other.Status = models.StatusResponding
	other.Responders = []string{testUser.ID}
	s.store.Load([]models.Alert{other})

	// Ожидания
	deps.gateway.EXPECT().UpdateStatus(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	// Действие
	mut, err := s.Respond(context.Background(), other.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.MutationConfirmed, mut.State)
	got, _ := s.store.Get(other.ID)
	assert.Equal(t, []string{testUser.ID}, got.Responders)
}

func TestRespond_RemoteFailureRollsBackViaReload(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	other := remoteAlert("u1", true)
	s.store.Load([]models.Alert{other})

	// Ожидания
	deps.gateway.EXPECT().UpdateStatus(gomock.Any(), other.ID, gomock.Any()).Return(errors.New("timeout")).Times(1)
	deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{other}, nil).Times(1)

	// Действие
	mut, err := s.Respond(context.Background(), other.ID)

	// Проверки
	require.Error(t, err)
	assert.Equal(t, models.MutationRolledBack, mut.State)
	assert.Equal(t, "timeout", mut.Error)

	got, ok := s.store.Get(other.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusActive, got.Status)
	assert.Empty(t, got.Responders)
}

func TestRespond_UnknownAlert(t *testing.T) {
	s, _ := newTestSession(t, nil)

	_, err := s.Respond(context.Background(), uuid.New())

	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestResolveActive_Success(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	mine := remoteAlert(testUser.ID, true)
	s.store.Load([]models.Alert{mine})

	// Ожидания
	deps.gateway.EXPECT().
		UpdateStatus(gomock.Any(), mine.ID, models.StatusPatch{Status: models.StatusResolved}).
		Return(nil).Times(1)

	// Действие
	mut, err := s.ResolveActive(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.MutationConfirmed, mut.State)
	_, ok := s.ActiveBroadcast()
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot())
}

func TestResolveActive_FailureKeepsBroadcast(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	mine := remoteAlert(testUser.ID, true)
	s.store.Load([]models.Alert{mine})

	// Ожидания
	deps.gateway.EXPECT().UpdateStatus(gomock.Any(), mine.ID, gomock.Any()).Return(errors.New("network")).Times(1)

	// Действие
	mut, err := s.ResolveActive(context.Background())

	// Проверки
	require.Error(t, err)
	assert.Equal(t, models.MutationRolledBack, mut.State)
	active, ok := s.ActiveBroadcast()
	require.True(t, ok)
	assert.Equal(t, mine.ID, active.ID)
}

func TestResolveActive_AlreadyClosedRemotely(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	mine := remoteAlert(testUser.ID, true)
	s.store.Load([]models.Alert{mine})

	// Ожидания
	notFound := fmt.Errorf("repository.UpdateStatus: %w", e.ErrNotFound)
	deps.gateway.EXPECT().UpdateStatus(gomock.Any(), mine.ID, gomock.Any()).Return(notFound).Times(1)

	// Действие
	mut, err := s.ResolveActive(context.Background())

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.MutationConfirmed, mut.State)
	_, ok := s.ActiveBroadcast()
	assert.False(t, ok)
	assert.Empty(t, s.Snapshot())
}

func TestRespond_ResolvedRemotelyRollsBackAndReloads(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	theirs := remoteAlert("other", true)
	s.store.Load([]models.Alert{theirs})

	// Ожидания: хранилище не трогает закрытую запись, свежая выборка ее уже не содержит
	notFound := fmt.Errorf("repository.UpdateStatus: %w", e.ErrNotFound)
	gomock.InOrder(
		deps.gateway.EXPECT().UpdateStatus(gomock.Any(), theirs.ID, gomock.Any()).Return(notFound),
		deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{}, nil),
	)

	// Действие
	mut, err := s.Respond(context.Background(), theirs.ID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrNotFound)
	assert.Equal(t, models.MutationRolledBack, mut.State)
	assert.Empty(t, s.Snapshot())
}

func TestResolveActive_NoBroadcast(t *testing.T) {
	s, _ := newTestSession(t, nil)

	_, err := s.ResolveActive(context.Background())

	assert.ErrorIs(t, err, ErrNoActiveBroadcast)
}

func TestDelete_Success(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	mine := remoteAlert(testUser.ID, false)
	s.store.Load([]models.Alert{mine})

	// Ожидания
	deps.gateway.EXPECT().DeleteComments(gomock.Any(), mine.ID).Return(errors.New("comments table locked")).Times(1)
	deps.gateway.EXPECT().Delete(gomock.Any(), mine.ID).Return(nil).Times(1)

	// Действие
	mut, err := s.DeleteAlert(context.Background(), mine.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.MutationConfirmed, mut.State)
	assert.Empty(t, s.Snapshot())

	// поздний INSERT не воскрешает запись
	s.store.Apply(models.Inserted(mine))
	assert.Empty(t, s.Snapshot())
}

func TestDelete_PolicyRejectedFallsBackToResolve(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	mine := remoteAlert(testUser.ID, false)
	s.store.Load([]models.Alert{mine})

	// Ожидания
	gomock.InOrder(
		deps.gateway.EXPECT().DeleteComments(gomock.Any(), mine.ID).Return(nil),
		deps.gateway.EXPECT().Delete(gomock.Any(), mine.ID).Return(fmt.Errorf("repository.Delete: %w", e.ErrPolicyRejected)),
		deps.gateway.EXPECT().UpdateStatus(gomock.Any(), mine.ID, models.StatusPatch{Status: models.StatusResolved}).Return(nil),
	)

	// Действие
	mut, err := s.DeleteAlert(context.Background(), mine.ID)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.MutationConfirmed, mut.State)
	assert.Empty(t, s.Snapshot())
}

func TestDelete_FallbackFailureForcesReload(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	mine := remoteAlert(testUser.ID, false)
	s.store.Load([]models.Alert{mine})

	// Ожидания
	deps.gateway.EXPECT().DeleteComments(gomock.Any(), mine.ID).Return(nil)
	deps.gateway.EXPECT().Delete(gomock.Any(), mine.ID).Return(e.ErrPolicyRejected)
	deps.gateway.EXPECT().UpdateStatus(gomock.Any(), mine.ID, gomock.Any()).Return(errors.New("network"))
	deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{mine}, nil).Times(1)

	// Действие
	mut, err := s.DeleteAlert(context.Background(), mine.ID)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, e.ErrPolicyRejected)
	assert.Equal(t, models.MutationRolledBack, mut.State)
	// хранилище все еще держит запись - перезагрузка вернула её
	assert.Len(t, s.Snapshot(), 1)
}

func TestDelete_NotOwner(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	foreign := remoteAlert("u1", false)
	s.store.Load([]models.Alert{foreign})

	// Ожидания
	deps.gateway.EXPECT().Delete(gomock.Any(), gomock.Any()).Times(0)

	// Действие
	_, err := s.DeleteAlert(context.Background(), foreign.ID)

	// Проверки
	assert.ErrorIs(t, err, ErrNotOwner)
	assert.Len(t, s.Snapshot(), 1)
}

func TestMutations_NewestFirst(t *testing.T) {
	s, deps := newTestSession(t, nil)
	other := remoteAlert("u1", false)
	s.store.Load([]models.Alert{other})

	deps.gateway.EXPECT().UpdateStatus(gomock.Any(), other.ID, gomock.Any()).Return(nil)

	_, _ = s.Respond(context.Background(), uuid.New())
	_, _ = s.Respond(context.Background(), other.ID)

	muts := s.Mutations()
	require.Len(t, muts, 2)
	assert.Equal(t, models.MutationConfirmed, muts[0].State)
	assert.Equal(t, other.ID, muts[0].AlertID)
	assert.Equal(t, models.MutationRolledBack, muts[1].State)
}

func TestEmergencyLifecycleScenario(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	ctx := context.Background()
	var a models.Alert

	// Ожидания
	deps.locator.EXPECT().Current(gomock.Any()).Return(models.Coordinates{Lat: 1, Lng: 1}, true)
	deps.gateway.EXPECT().Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, d models.Draft) (models.Alert, error) {
			a = confirmedFrom(d)
			return a, nil
		})
	deps.publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	// 1. создание
	_, _, err := s.CreateAlert(ctx, CreateInput{Category: models.CategoryMedical, Description: "травма", IsEmergency: true})
	require.NoError(t, err)
	got, ok := s.store.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusActive, got.Status)

	// 2. другой пользователь откликнулся, событие пришло из потока
	responded := a.Clone()
	responded.Status = models.StatusResponding
	responded.Responders = []string{"other"}
	s.store.Apply(models.Updated(responded))

	got, ok = s.store.Get(a.ID)
	require.True(t, ok)
	assert.Equal(t, models.StatusResponding, got.Status)
	assert.Equal(t, []string{"other"}, got.Responders)
	_, ok = s.ActiveBroadcast()
	assert.True(t, ok)

	// 3. владелец отмечает, что в безопасности
	deps.gateway.EXPECT().UpdateStatus(gomock.Any(), a.ID, models.StatusPatch{Status: models.StatusResolved}).Return(nil)
	_, err = s.ResolveActive(ctx)
	require.NoError(t, err)

	_, ok = s.store.Get(a.ID)
	assert.False(t, ok)
	_, ok = s.ActiveBroadcast()
	assert.False(t, ok)

	// эхо resolved из потока ничего не ломает
	resolved := a.Clone()
	resolved.Status = models.StatusResolved
	s.store.Apply(models.Updated(resolved))
	assert.Empty(t, s.Snapshot())
}
