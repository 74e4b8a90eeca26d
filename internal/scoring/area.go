package scoring

import (
	"fmt"
	"time"

	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/pkg/geo"
)

const (
	// Радиус отбора сигналов вокруг точки интейка. Независим от размера
	// ячейки AreaCellKey: ячейка ~1 км квантует ключ записи, радиус 500 м
	// определяет фактическую область подсчета.
	AreaRadiusMeters = 500.0

	// Линейный рост уверенности агрегата: +0.05 за каждый сигнал в радиусе,
	// насыщение на 0.9 при 18 и более подтверждающих сигналах
	areaConfidencePerSignal = 0.05

	MaxConfidenceLevel = 0.9
)

// BuildAreaScore пересчитывает агрегат безопасности района вокруг точки.
// Принимает полный рабочий набор неисключенных сигналов города, фильтрует
// его по радиусу и строит запись целиком заново — слияния с предыдущей
// версией не происходит, пересчет идемпотентен при неизменном наборе.
func BuildAreaScore(location models.Location, city string, signals []*models.SafetySignal, now time.Time) *models.AreaScore {
	relevant := make([]*models.SafetySignal, 0, len(signals))
	for _, s := range signals {
		d := geo.DistanceMeters(s.Location.Lat, s.Location.Lng, location.Lat, location.Lng)
		if d <= AreaRadiusMeters {
			relevant = append(relevant, s)
		}
	}

	safetyScores := map[string]float64{
		"morning": CalculateSafetyScore(filterByTimeOfDay(relevant, models.TimeOfDayMorning)),
		"evening": CalculateSafetyScore(filterByTimeOfDay(relevant, models.TimeOfDayEvening)),
		"night":   CalculateSafetyScore(filterByTimeOfDay(relevant, models.TimeOfDayNight)),
		"overall": CalculateSafetyScore(relevant),
	}

	confidence := float64(len(relevant)) * areaConfidencePerSignal
	if confidence > MaxConfidenceLevel {
		confidence = MaxConfidenceLevel
	}

	cellKey := AreaCellKey(city, location.Lat, location.Lng)

	return &models.AreaScore{
		ID:              cellKey,
		AreaName:        fmt.Sprintf("Area %s", cellKey),
		Location:        location,
		RadiusMeters:    int(AreaRadiusMeters),
		SafetyScores:    safetyScores,
		ConfidenceLevel: confidence,
		IncidentCount:   len(relevant),
		LastUpdated:     now.UTC(),
		City:            city,
	}
}

func filterByTimeOfDay(signals []*models.SafetySignal, timeOfDay string) []*models.SafetySignal {
	out := make([]*models.SafetySignal, 0, len(signals))
	for _, s := range signals {
		if s.TimeOfDay == timeOfDay {
			out = append(out, s)
		}
	}
	return out
}
