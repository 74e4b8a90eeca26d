package scoring

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/pkg/geo"
)

func TestPlanRoute_ShortRouteNoSignals(t *testing.T) {
	start := models.Location{Lat: 0, Lng: 0}
	end := models.Location{Lat: 0, Lng: 0.001}

	route := PlanRoute(nil, start, end)

	require.NotNil(t, route)
	// Короткий маршрут: минимум 5 интервалов, то есть 6 точек
	require.Len(t, route.Points, 6)

	// Без сигналов каждая точка получает базовый уровень
	for _, p := range route.Points {
		assert.Equal(t, 85.0, p.SafetyScore)
	}
	assert.Equal(t, 85.0, route.OverallSafetyScore)
	assert.Empty(t, route.RiskySegments)
}

func TestPlanRoute_EndpointsMatch(t *testing.T) {
	start := models.Location{Lat: 55.7558, Lng: 37.6173}
	end := models.Location{Lat: 55.7958, Lng: 37.7173}

	route := PlanRoute(nil, start, end)

	first := route.Points[0]
	last := route.Points[len(route.Points)-1]
	assert.InDelta(t, start.Lat, first.Lat, 1e-9)
	assert.InDelta(t, start.Lng, first.Lng, 1e-9)
	assert.InDelta(t, end.Lat, last.Lat, 1e-9)
	assert.InDelta(t, end.Lng, last.Lng, 1e-9)
}

func TestPlanRoute_PointCountScalesWithDistance(t *testing.T) {
	start := models.Location{Lat: 55.7558, Lng: 37.6173}
	end := models.Location{Lat: 55.8558, Lng: 37.6173} // ~11 км на север

	route := PlanRoute(nil, start, end)

	distanceKm := geo.DistanceKm(start.Lat, start.Lng, end.Lat, end.Lng)
	expected := int(math.Round(distanceKm * 2))
	if expected < 5 {
		expected = 5
	}
	assert.Len(t, route.Points, expected+1)
	assert.InDelta(t, distanceKm, route.DistanceKm, 1e-9)
	assert.Equal(t, int(math.Round(distanceKm*12)), route.EstimatedTimeMinutes)
}

func TestPlanRoute_RiskySegments(t *testing.T) {
	start := models.Location{Lat: 0, Lng: 0}
	end := models.Location{Lat: 0, Lng: 0.001}

	// Плотный кластер high-сигналов прямо на маршруте ронит оценку ниже 60
	signals := []*models.SafetySignal{
		signalAt(0, 0.0005, models.SeverityHigh, models.TimeOfDayNight, 0.9),
		signalAt(0, 0.0005, models.SeverityHigh, models.TimeOfDayNight, 0.9),
		signalAt(0, 0.0005, models.SeverityHigh, models.TimeOfDayNight, 0.9),
	}

	route := PlanRoute(signals, start, end)

	// Радиус 300 м покрывает весь маршрут длиной ~111 м
	require.NotEmpty(t, route.RiskySegments)
	for _, seg := range route.RiskySegments {
		assert.Less(t, seg.SafetyScore, 60.0)
		assert.Equal(t, "High risk area", seg.Warning)
		assert.Equal(t, route.Points[seg.Index].SafetyScore, seg.SafetyScore)
	}
	assert.Len(t, route.RiskySegments, len(route.Points))
}

func TestPlanRoute_DegenerateRoute(t *testing.T) {
	// start == end — валидный вход, не ошибка
	p := models.Location{Lat: 55.7558, Lng: 37.6173}

	route := PlanRoute(nil, p, p)

	require.Len(t, route.Points, 6)
	assert.Equal(t, 0.0, route.DistanceKm)
	assert.Equal(t, 0, route.EstimatedTimeMinutes)
	for _, pt := range route.Points {
		assert.Equal(t, p.Lat, pt.Lat)
		assert.Equal(t, p.Lng, pt.Lng)
	}
}
