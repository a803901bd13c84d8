package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/shenikar/rescue_pulse/internal/models"
	"github.com/shenikar/rescue_pulse/internal/stream"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_service.go -package=mocks

// AlertGateway определяет контракт с удаленным хранилищем запросов
type AlertGateway interface {
	FetchOpenAlerts(ctx context.Context) ([]models.Alert, error)
	Insert(ctx context.Context, draft models.Draft) (models.Alert, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, patch models.StatusPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteComments(ctx context.Context, alertID uuid.UUID) error
	Probe(ctx context.Context, collection string) error
	Subscribe(ctx context.Context) (*stream.Feed, error)
}

// Locator отдает координаты пользователя
type Locator interface {
	Current(ctx context.Context) (models.Coordinates, bool)
	Last() (models.Coordinates, bool)
	Update(c models.Coordinates)
	Reset()
}

// CreateInput - данные нового запроса от пользователя
type CreateInput struct {
	Category    models.Category
	Description string
	Severity    models.Severity
	IsEmergency bool
	IsAnonymous bool
}
