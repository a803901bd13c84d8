package v1

//go:generate mockgen -source=service.go -destination=mocks/mock_alert_service.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/service"
)

// AlertService - то, что HTTP слою нужно от сессии
type AlertService interface {
	Healthy() bool
	State() service.AvailabilityState
	Views(radiusKm float64) service.Views
	Snapshot() []models.Alert
	ActiveBroadcast() (models.Alert, bool)
	CreateAlert(ctx context.Context, in service.CreateInput) (models.Alert, models.Mutation, error)
	Respond(ctx context.Context, alertID uuid.UUID) (models.Mutation, error)
	ResolveActive(ctx context.Context) (models.Mutation, error)
	DeleteAlert(ctx context.Context, alertID uuid.UUID) (models.Mutation, error)
	Mutations() []models.Mutation
	UpdateLocation(c models.Coordinates)
	Reload(ctx context.Context) error
	Logout()
	Changes() (<-chan struct{}, func())
}
