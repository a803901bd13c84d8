package geo

import (
	"math"

	"github.com/shenikar/rescue_pulse/internal/models"
)

// EarthRadiusKm - средний радиус Земли для формулы гаверсинусов
const EarthRadiusKm = 6371.0

// DistanceKm возвращает расстояние по большому кругу между двумя точками
func DistanceKm(a, b models.Coordinates) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
