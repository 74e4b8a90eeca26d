package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lumina-safety/safety_signal_system/internal/models"
)

func TestDetectHotspots_NoiseFloor(t *testing.T) {
	// Две ячейки: в одной 4 сигнала, в другой 2 — вторая отбрасывается
	signals := []*models.SafetySignal{
		signalAt(55.7558, 37.6173, models.SeverityMedium, models.TimeOfDayNight, 0.7),
		signalAt(55.7560, 37.6175, models.SeverityMedium, models.TimeOfDayNight, 0.7),
		signalAt(55.7555, 37.6170, models.SeverityMedium, models.TimeOfDayNight, 0.7),
		signalAt(55.7559, 37.6180, models.SeverityMedium, models.TimeOfDayNight, 0.7),
		// Другая ячейка, далеко на севере
		signalAt(59.9343, 30.3351, models.SeverityHigh, models.TimeOfDayNight, 0.9),
		signalAt(59.9345, 30.3352, models.SeverityHigh, models.TimeOfDayNight, 0.9),
	}

	hotspots := DetectHotspots(signals, 20)

	require.Len(t, hotspots, 1)
	hs := hotspots[0]
	assert.Equal(t, 4, hs.IncidentDensity)
	assert.Equal(t, 4, hs.Last30DaysCount)
	// 4 medium с confidence 0.7: риск 60, base 40 * 0.7 = 28, risk = 72
	assert.InDelta(t, 72.0, hs.RiskScore, 1e-9)
	// 4 <= 5 — тренд стабильный
	assert.Equal(t, models.TrendStable, hs.TrendVelocity)
	assert.InDelta(t, 0.32, hs.Confidence, 1e-9)
}

func TestDetectHotspots_Centroid(t *testing.T) {
	signals := []*models.SafetySignal{
		signalAt(10.000, 20.000, models.SeverityLow, models.TimeOfDayDay, 0.5),
		signalAt(10.002, 20.002, models.SeverityLow, models.TimeOfDayDay, 0.5),
		signalAt(10.004, 20.004, models.SeverityLow, models.TimeOfDayDay, 0.5),
	}

	hotspots := DetectHotspots(signals, 20)

	require.Len(t, hotspots, 1)
	assert.InDelta(t, 10.002, hotspots[0].Location.Lat, 1e-9)
	assert.InDelta(t, 20.002, hotspots[0].Location.Lng, 1e-9)
	assert.Equal(t, "Hotspot 500_1000", hotspots[0].AreaName)
}

func TestDetectHotspots_TrendIncreasing(t *testing.T) {
	signals := make([]*models.SafetySignal, 0, 6)
	for i := 0; i < 6; i++ {
		signals = append(signals, signalAt(10.0, 20.0, models.SeverityLow, models.TimeOfDayDay, 0.5))
	}

	hotspots := DetectHotspots(signals, 20)

	require.Len(t, hotspots, 1)
	// Больше 5 участников — тренд считается растущим
	assert.Equal(t, models.TrendIncreasing, hotspots[0].TrendVelocity)
}

func TestDetectHotspots_RankingAndLimit(t *testing.T) {
	signals := make([]*models.SafetySignal, 0)
	// Кластер с низким риском: 3 low
	for i := 0; i < 3; i++ {
		signals = append(signals, signalAt(10.0, 20.0, models.SeverityLow, models.TimeOfDayDay, 0.9))
	}
	// Кластер с высоким риском: 3 high
	for i := 0; i < 3; i++ {
		signals = append(signals, signalAt(30.0, 40.0, models.SeverityHigh, models.TimeOfDayNight, 0.9))
	}
	// Кластер со средним риском: 3 medium
	for i := 0; i < 3; i++ {
		signals = append(signals, signalAt(50.0, 60.0, models.SeverityMedium, models.TimeOfDayEvening, 0.9))
	}

	hotspots := DetectHotspots(signals, 20)

	require.Len(t, hotspots, 3)
	// Сортировка по убыванию риска
	for i := 1; i < len(hotspots); i++ {
		assert.GreaterOrEqual(t, hotspots[i-1].RiskScore, hotspots[i].RiskScore)
	}
	assert.Equal(t, 30.0, hotspots[0].Location.Lat)

	// Усечение до limit
	top := DetectHotspots(signals, 1)
	require.Len(t, top, 1)
	assert.Equal(t, 30.0, top[0].Location.Lat)
}

func TestDetectHotspots_MinimumMembersInvariant(t *testing.T) {
	// Никогда не выдается кластер меньше чем из 3 участников
	signals := []*models.SafetySignal{
		signalAt(10.0, 20.0, models.SeverityHigh, models.TimeOfDayNight, 0.9),
		signalAt(10.0, 20.0, models.SeverityHigh, models.TimeOfDayNight, 0.9),
	}

	assert.Empty(t, DetectHotspots(signals, 20))
	assert.Empty(t, DetectHotspots(nil, 20))

	for _, hs := range DetectHotspots(signals, 20) {
		assert.GreaterOrEqual(t, hs.IncidentDensity, MinClusterSize)
	}
}
