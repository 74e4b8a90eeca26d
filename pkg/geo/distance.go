// Package geo содержит геодезические вычисления над парами координат.
package geo

import "math"

// Средний радиус Земли в метрах
const earthRadiusMeters = 6371000.0

// DistanceMeters возвращает расстояние по дуге большого круга между двумя
// точками (haversine). Координаты передаются в градусах, результат в метрах.
// Функция симметрична: DistanceMeters(a, b) == DistanceMeters(b, a).
func DistanceMeters(lat1, lng1, lat2, lng2 float64) float64 {
	phi1 := degToRad(lat1)
	phi2 := degToRad(lat2)
	dPhi := degToRad(lat2 - lat1)
	dLambda := degToRad(lng2 - lng1)

	a := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// DistanceKm возвращает то же расстояние в километрах
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceMeters(lat1, lng1, lat2, lng2) / 1000.0
}

func degToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
