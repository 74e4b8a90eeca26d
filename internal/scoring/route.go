package scoring

import (
	"math"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/pkg/geo"
)

const (
	// Радиус отбора сигналов вокруг точки маршрута. Уже, чем радиус
	// агрегата района: маршрутный профиль смотрит только на ближайшее
	// окружение пешехода.
	RouteRadiusMeters = 300.0

	// Точка с оценкой ниже порога помечается как рискованный сегмент
	RiskyScoreThreshold = 60.0

	// Фиксированная средняя скорость пешехода: 12 минут на километр
	minutesPerKm = 12.0

	// Минимум интервалов выборки для коротких маршрутов
	minRoutePoints = 5

	riskyWarning = "High risk area"
)

// PlanRoute строит прямолинейный профиль риска между start и end.
// Количество точек масштабируется с длиной пути; каждая точка оценивается
// по сигналам в радиусе RouteRadiusMeters из переданного рабочего набора.
// Вырожденный маршрут (start == end) валиден и дает минимум точек.
func PlanRoute(signals []*models.SafetySignal, start, end models.Location) *models.Route {
	distanceKm := geo.DistanceKm(start.Lat, start.Lng, end.Lat, end.Lng)

	numPoints := int(math.Round(distanceKm * 2))
	if numPoints < minRoutePoints {
		numPoints = minRoutePoints
	}

	points := make([]models.RoutePoint, 0, numPoints+1)
	scores := make([]float64, 0, numPoints+1)
	for i := 0; i <= numPoints; i++ {
		t := float64(i) / float64(numPoints)
		lat := start.Lat + t*(end.Lat-start.Lat)
		lng := start.Lng + t*(end.Lng-start.Lng)

		score := scorePoint(signals, lat, lng)
		points = append(points, models.RoutePoint{Lat: lat, Lng: lng, SafetyScore: score})
		scores = append(scores, score)
	}

	riskySegments := make([]models.RiskySegment, 0)
	for i, p := range points {
		if p.SafetyScore < RiskyScoreThreshold {
			riskySegments = append(riskySegments, models.RiskySegment{
				Index:       i,
				Location:    models.Location{Lat: p.Lat, Lng: p.Lng},
				SafetyScore: p.SafetyScore,
				Warning:     riskyWarning,
			})
		}
	}

	return &models.Route{
		RouteID:              uuid.New(),
		Points:               points,
		OverallSafetyScore:   stat.Mean(scores, nil),
		DistanceKm:           distanceKm,
		EstimatedTimeMinutes: int(math.Round(distanceKm * minutesPerKm)),
		RiskySegments:        riskySegments,
	}
}

func scorePoint(signals []*models.SafetySignal, lat, lng float64) float64 {
	nearby := make([]*models.SafetySignal, 0)
	for _, s := range signals {
		if geo.DistanceMeters(s.Location.Lat, s.Location.Lng, lat, lng) <= RouteRadiusMeters {
			nearby = append(nearby, s)
		}
	}
	return CalculateSafetyScore(nearby)
}
