package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAlertRequest DTO для публикации запроса о помощи
// @Description DTO для публикации запроса о помощи
type CreateAlertRequest struct {
	Category    string `json:"category" validate:"required,oneof=Medical Fire Security Mechanical Other"`
	Description string `json:"description,omitempty" validate:"max=2000"`
	Severity    string `json:"severity,omitempty" validate:"omitempty,oneof=Low Medium High"`
	IsEmergency bool   `json:"is_emergency"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// LocationRequest DTO с последними координатами пользователя
// @Description DTO с последними координатами пользователя
type LocationRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

// AlertResponse DTO запроса о помощи
// @Description DTO запроса о помощи
type AlertResponse struct {
	ID          uuid.UUID `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	UserAvatar  string    `json:"user_avatar,omitempty"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Lat         float64   `json:"lat"`
	Lng         float64   `json:"lng"`
	Status      string    `json:"status"`
	Responders  []string  `json:"responders"`
	Severity    string    `json:"severity"`
	IsEmergency bool      `json:"is_emergency"`
	IsAnonymous bool      `json:"is_anonymous"`
	CreatedAt   time.Time `json:"created_at"`
	DistanceKm  *float64  `json:"distance_km,omitempty"`
}

// AlertsResponse DTO с представлениями "мои" и "рядом"
// @Description DTO с представлениями "мои" и "рядом"
type AlertsResponse struct {
	Mine     []AlertResponse `json:"mine,omitempty"`
	Nearby   []AlertResponse `json:"nearby,omitempty"`
	RadiusKm float64         `json:"radius_km,omitempty"`
}

// MutationResponse DTO записи журнала операций
// @Description DTO записи журнала операций
type MutationResponse struct {
	ID        uuid.UUID  `json:"id"`
	Kind      string     `json:"kind"`
	AlertID   *uuid.UUID `json:"alert_id,omitempty"`
	State     string     `json:"state"`
	Error     string     `json:"error,omitempty"`
	StartedAt time.Time  `json:"started_at"`
	SettledAt *time.Time `json:"settled_at,omitempty"`
}

// CreateAlertResponse DTO ответа на публикацию
// @Description DTO ответа на публикацию
type CreateAlertResponse struct {
	Alert    AlertResponse    `json:"alert"`
	Mutation MutationResponse `json:"mutation"`
}

// StreamMessage - кадр websocket потока
type StreamMessage struct {
	Type            string          `json:"type"`
	State           string          `json:"state"`
	Alerts          []AlertResponse `json:"alerts"`
	ActiveBroadcast *AlertResponse  `json:"active_broadcast,omitempty"`
}
