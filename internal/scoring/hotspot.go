package scoring

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"

	"github.com/lumina-safety/safety_signal_system/internal/models"
)

const (
	// Минимальное число сигналов в ячейке, ниже — шум
	MinClusterSize = 3

	// Порог статической классификации тренда. Это не расчет скорости
	// изменения, а грубая отсечка по количеству.
	trendCountThreshold = 5

	hotspotConfidencePerSignal = 0.08
)

// DetectHotspots кластеризует сигналы по ячейкам ~2 км, отбрасывает кластеры
// меньше MinClusterSize и возвращает не более limit кластеров по убыванию
// риска. Ожидает на входе уже отобранный 30-дневный рабочий набор города.
func DetectHotspots(signals []*models.SafetySignal, limit int) []*models.Hotspot {
	clusters := make(map[string][]*models.SafetySignal)
	for _, s := range signals {
		key := HotspotCellKey(s.Location.Lat, s.Location.Lng)
		clusters[key] = append(clusters[key], s)
	}

	// Ключи сортируются, чтобы результат не зависел от порядка обхода map
	keys := make([]string, 0, len(clusters))
	for key := range clusters {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	hotspots := make([]*models.Hotspot, 0, len(clusters))
	for _, key := range keys {
		members := clusters[key]
		if len(members) < MinClusterSize {
			continue
		}

		lats := make([]float64, len(members))
		lngs := make([]float64, len(members))
		for i, s := range members {
			lats[i] = s.Location.Lat
			lngs[i] = s.Location.Lng
		}

		trend := models.TrendStable
		if len(members) > trendCountThreshold {
			trend = models.TrendIncreasing
		}

		confidence := float64(len(members)) * hotspotConfidencePerSignal
		if confidence > MaxConfidenceLevel {
			confidence = MaxConfidenceLevel
		}

		hotspots = append(hotspots, &models.Hotspot{
			ID:              uuid.New(),
			Location:        models.Location{Lat: stat.Mean(lats, nil), Lng: stat.Mean(lngs, nil)},
			AreaName:        fmt.Sprintf("Hotspot %s", key),
			RiskScore:       100 - CalculateSafetyScore(members),
			IncidentDensity: len(members),
			TrendVelocity:   trend,
			Last30DaysCount: len(members),
			Confidence:      confidence,
		})
	}

	sort.SliceStable(hotspots, func(i, j int) bool {
		return hotspots[i].RiskScore > hotspots[j].RiskScore
	})

	if limit > 0 && len(hotspots) > limit {
		hotspots = hotspots[:limit]
	}
	return hotspots
}
