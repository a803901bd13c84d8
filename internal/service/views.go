package service

import (
	"github.com/shenikar/rescue_pulse/internal/geo"
	"github.com/shenikar/rescue_pulse/internal/models"
)

// Mine возвращает запросы текущего пользователя
func Mine(alerts []models.Alert, userID string) []models.Alert {
	out := make([]models.Alert, 0)
	for _, a := range alerts {
		if a.OwnerID == userID {
			out = append(out, a)
		}
	}
	return out
}

// Nearby - дополнение к Mine
func Nearby(alerts []models.Alert, userID string) []models.Alert {
	out := make([]models.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.OwnerID != userID {
			out = append(out, a)
		}
	}
	return out
}

// WithinRadius оставляет чужие запросы не дальше radiusKm от origin.
// radiusKm == 0 или неизвестная позиция отключают фильтр.
func WithinRadius(alerts []models.Alert, userID string, origin *models.Coordinates, radiusKm float64) []models.Alert {
	nearby := Nearby(alerts, userID)
	if radiusKm <= 0 || origin == nil {
		return nearby
	}
	out := make([]models.Alert, 0, len(nearby))
	for _, a := range nearby {
		if geo.DistanceKm(*origin, a.Location) <= radiusKm {
			out = append(out, a)
		}
	}
	return out
}

type NearbyAlert struct {
	models.Alert
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// Views - производные представления канонического набора для одного рендера
type Views struct {
	Mine     []models.Alert
	Nearby   []NearbyAlert
	Origin   *models.Coordinates
	RadiusKm float64
}

func BuildViews(alerts []models.Alert, userID string, origin *models.Coordinates, radiusKm float64) Views {
	filtered := WithinRadius(alerts, userID, origin, radiusKm)
	nearby := make([]NearbyAlert, len(filtered))
	for i, a := range filtered {
		nearby[i] = NearbyAlert{Alert: a}
		if origin != nil {
			d := geo.DistanceKm(*origin, a.Location)
			nearby[i].DistanceKm = &d
		}
	}
	return Views{
		Mine:     Mine(alerts, userID),
		Nearby:   nearby,
		Origin:   origin,
		RadiusKm: radiusKm,
	}
}
