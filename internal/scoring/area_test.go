package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-safety/safety_signal_system/internal/models"
)

func signalAt(lat, lng float64, severity, timeOfDay string, confidence float64) *models.SafetySignal {
	return &models.SafetySignal{
		Location:        models.Location{Lat: lat, Lng: lng},
		Severity:        severity,
		TimeOfDay:       timeOfDay,
		ConfidenceScore: confidence,
		City:            "demo_city",
	}
}

func TestBuildAreaScore_RadiusFilter(t *testing.T) {
	center := models.Location{Lat: 55.7558, Lng: 37.6173}
	now := time.Now()

	signals := []*models.SafetySignal{
		// Внутри радиуса 500 м
		signalAt(55.7560, 37.6175, models.SeverityHigh, models.TimeOfDayNight, 0.9),
		signalAt(55.7555, 37.6170, models.SeverityHigh, models.TimeOfDayNight, 0.9),
		signalAt(55.7559, 37.6180, models.SeverityHigh, models.TimeOfDayNight, 0.9),
		// Примерно в 11 км, не должен попасть в агрегат
		signalAt(55.8558, 37.6173, models.SeverityHigh, models.TimeOfDayNight, 0.9),
	}

	area := BuildAreaScore(center, "demo_city", signals, now)

	require.NotNil(t, area)
	assert.Equal(t, 3, area.IncidentCount)
	// Сценарий из трех high с confidence 0.9: 100 - min(90,70) = 30, * 0.9 = 27.0
	assert.InDelta(t, 27.0, area.SafetyScores["night"], 1e-9)
	assert.InDelta(t, 27.0, area.SafetyScores["overall"], 1e-9)
	// Утром и вечером сигналов нет — базовый уровень
	assert.Equal(t, 85.0, area.SafetyScores["morning"])
	assert.Equal(t, 85.0, area.SafetyScores["evening"])
}

func TestBuildAreaScore_CellKeyAndMetadata(t *testing.T) {
	center := models.Location{Lat: 55.7558, Lng: 37.6173}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	area := BuildAreaScore(center, "demo_city", nil, now)

	assert.Equal(t, "demo_city_5575_3761", area.ID)
	assert.Equal(t, "Area demo_city_5575_3761", area.AreaName)
	assert.Equal(t, 500, area.RadiusMeters)
	assert.Equal(t, "demo_city", area.City)
	assert.Equal(t, now, area.LastUpdated)
	assert.Equal(t, 0.0, area.ConfidenceLevel)
	assert.Equal(t, 0, area.IncidentCount)
}

func TestBuildAreaScore_NegativeCoordinatesFloor(t *testing.T) {
	// floor, а не усечение к нулю: -33.8688 * 100 -> -3387
	area := BuildAreaScore(models.Location{Lat: -33.8688, Lng: -70.6693}, "santiago", nil, time.Now())

	assert.Equal(t, "santiago_-3387_-7067", area.ID)
}

func TestBuildAreaScore_ConfidenceRamp(t *testing.T) {
	center := models.Location{Lat: 10, Lng: 10}

	// 4 сигнала в радиусе: уверенность 4 * 0.05 = 0.2
	few := make([]*models.SafetySignal, 0, 4)
	for i := 0; i < 4; i++ {
		few = append(few, signalAt(10, 10, models.SeverityLow, models.TimeOfDayDay, 0.7))
	}
	area := BuildAreaScore(center, "demo_city", few, time.Now())
	assert.InDelta(t, 0.2, area.ConfidenceLevel, 1e-9)

	// 25 сигналов: линейный рост насыщается на 0.9
	many := make([]*models.SafetySignal, 0, 25)
	for i := 0; i < 25; i++ {
		many = append(many, signalAt(10, 10, models.SeverityLow, models.TimeOfDayDay, 0.7))
	}
	area = BuildAreaScore(center, "demo_city", many, time.Now())
	assert.Equal(t, 0.9, area.ConfidenceLevel)
}

func TestBuildAreaScore_Idempotent(t *testing.T) {
	center := models.Location{Lat: 55.7558, Lng: 37.6173}
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	signals := []*models.SafetySignal{
		signalAt(55.7560, 37.6175, models.SeverityMedium, models.TimeOfDayEvening, 0.7),
		signalAt(55.7555, 37.6170, models.SeverityLow, models.TimeOfDayNight, 0.6),
	}

	first := BuildAreaScore(center, "demo_city", signals, now)
	second := BuildAreaScore(center, "demo_city", signals, now)

	// Пересчет при неизменном наборе дает идентичную запись
	assert.Equal(t, first, second)
}
