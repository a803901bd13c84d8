package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shenikar/rescue_pulse/internal/config"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const eventually = 2 * time.Second

func TestSession_StartLoadsAndAppliesChanges(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	a := remoteAlert("u1", true)
	b := remoteAlert("u2", false)
	feed := stream.NewFeed(8, nil)

	// Ожидания
	deps.gateway.EXPECT().Subscribe(gomock.Any()).Return(feed, nil).Times(1)
	deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{a}, nil).Times(1)

	// Действие
	s.Start(context.Background())

	resolved := a.Clone()
	resolved.Status = models.StatusResolved
	require.True(t, feed.Send(context.Background(), models.Inserted(b)))
	require.True(t, feed.Send(context.Background(), models.Updated(resolved)))

	// Проверки
	assert.Eventually(t, func() bool {
		snap := s.Snapshot()
		return len(snap) == 1 && snap[0].ID == b.ID
	}, eventually, time.Millisecond)
}

func TestSession_ResubscribesAfterStreamError(t *testing.T) {
	// Подготовка
	cfg := &config.Config{ProbeInterval: time.Hour, ResubscribeDelay: time.Millisecond, MutationLedgerSize: 8}
	s, deps := newTestSession(t, cfg)
	first := stream.NewFeed(1, nil)
	second := stream.NewFeed(1, nil)
	a := remoteAlert("u1", false)
	b := remoteAlert("u2", false)

	// Ожидания
	gomock.InOrder(
		deps.gateway.EXPECT().Subscribe(gomock.Any()).Return(first, nil),
		deps.gateway.EXPECT().Subscribe(gomock.Any()).Return(second, nil),
	)
	gomock.InOrder(
		deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{a}, nil),
		deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{a, b}, nil),
	)

	// Действие
	s.Start(context.Background())
	first.Finish(errors.New("connection reset"))

	// Проверки
	assert.Eventually(t, func() bool { return len(s.Snapshot()) == 2 }, eventually, time.Millisecond)
	select {
	case <-first.Done():
	case <-time.After(eventually):
		t.Fatal("first feed was not closed")
	}
}

func TestSession_CloseTearsDown(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	feed := stream.NewFeed(1, nil)
	mine := remoteAlert(testUser.ID, true)

	deps.gateway.EXPECT().Subscribe(gomock.Any()).Return(feed, nil)
	deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{mine}, nil)

	s.Start(context.Background())
	changes, cancel := s.Changes()
	defer cancel()

	// Действие
	s.Close()
	s.Close()

	// Проверки
	select {
	case <-feed.Done():
	case <-time.After(eventually):
		t.Fatal("feed was not closed")
	}
	assert.Empty(t, s.Snapshot())
	_, ok := s.ActiveBroadcast()
	assert.False(t, ok)
	assert.False(t, s.Healthy())

	select {
	case <-changes:
	default:
		t.Fatal("close must notify listeners")
	}

	_, _, err := s.CreateAlert(context.Background(), CreateInput{Category: models.CategoryOther})
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.Respond(context.Background(), mine.ID)
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.ResolveActive(context.Background())
	assert.ErrorIs(t, err, ErrSessionClosed)
	_, err = s.DeleteAlert(context.Background(), mine.ID)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSession_DegradedUntilSchemaAppears(t *testing.T) {
	// Подготовка
	cfg := &config.Config{ProbeInterval: 2 * time.Millisecond, ResubscribeDelay: time.Hour, MutationLedgerSize: 8}
	s, deps := newTestSession(t, cfg)
	feed := stream.NewFeed(1, nil)
	a := remoteAlert("u1", false)

	// Ожидания
	deps.gateway.EXPECT().Subscribe(gomock.Any()).Return(feed, nil)
	gomock.InOrder(
		deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return(nil, schemaMissingErr()).Times(1),
		deps.gateway.EXPECT().FetchOpenAlerts(gomock.Any()).Return([]models.Alert{a}, nil).Times(1),
	)
	gomock.InOrder(
		deps.gateway.EXPECT().Probe(gomock.Any(), "alerts").Return(schemaMissingErr()).Times(3),
		deps.gateway.EXPECT().Probe(gomock.Any(), "alerts").Return(nil).Times(1),
	)
	deps.gateway.EXPECT().Probe(gomock.Any(), "profiles").Return(nil).Times(4)

	// Действие
	s.Start(context.Background())

	// Проверки
	assert.Eventually(t, func() bool {
		return s.Healthy() && len(s.Snapshot()) == 1
	}, eventually, time.Millisecond)
	assert.Equal(t, a.ID, s.Snapshot()[0].ID)
}

func TestSession_ViewsUseLastLocation(t *testing.T) {
	// Подготовка
	s, deps := newTestSession(t, nil)
	near := remoteAlert("u1", false)
	near.Location = models.Coordinates{Lat: 0.09, Lng: 0}
	far := remoteAlert("u2", false)
	far.Location = models.Coordinates{Lat: 1, Lng: 0}
	mine := remoteAlert(testUser.ID, false)
	s.store.Load([]models.Alert{near, far, mine})

	deps.locator.EXPECT().Last().Return(models.Coordinates{}, true)

	// Действие
	views := s.Views(20)

	// Проверки
	require.Len(t, views.Mine, 1)
	assert.Equal(t, mine.ID, views.Mine[0].ID)
	require.Len(t, views.Nearby, 1)
	assert.Equal(t, near.ID, views.Nearby[0].ID)
	require.NotNil(t, views.Nearby[0].DistanceKm)
	assert.InDelta(t, 10.007, *views.Nearby[0].DistanceKm, 0.01)
}
