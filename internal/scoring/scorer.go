// Package scoring реализует ядро аналитики безопасности: расчет оценок,
// агрегацию по ячейкам, поиск горячих точек и профиль риска маршрута.
// Все функции пакета чистые: они работают над переданным срезом сигналов
// и не обращаются к хранилищу.
package scoring

import (
	"gonum.org/v1/gonum/stat"

	"github.com/lumina-safety/safety_signal_system/internal/models"
)

const (
	// BaselineScore возвращается при отсутствии сигналов. Отсутствие жалоб
	// трактуется как умеренно положительный знак, а не как нейтральный.
	BaselineScore = 85.0

	// Границы итоговой оценки
	MinScore = 20.0
	MaxScore = 95.0

	// Суммарный риск насыщается: после множества жалоб каждая следующая
	// почти не меняет оценку
	maxTotalRisk = 70.0

	// Подставляется вместо отсутствующего confidence_score
	defaultConfidence = 0.5
)

// Веса серьезности инцидентов
var severityWeights = map[string]float64{
	models.SeverityLow:    5,
	models.SeverityMedium: 15,
	models.SeverityHigh:   30,
}

// CalculateSafetyScore преобразует набор сигналов в оценку безопасности
// в диапазоне [20, 95]. Детерминирована: одинаковый набор сигналов всегда
// дает одинаковый результат.
func CalculateSafetyScore(signals []*models.SafetySignal) float64 {
	if len(signals) == 0 {
		return BaselineScore
	}

	totalRisk := 0.0
	confidences := make([]float64, len(signals))
	for i, s := range signals {
		w, ok := severityWeights[s.Severity]
		if !ok {
			w = severityWeights[models.SeverityLow]
		}
		totalRisk += w

		c := s.ConfidenceScore
		if c <= 0 {
			c = defaultConfidence
		}
		confidences[i] = c
	}

	if totalRisk > maxTotalRisk {
		totalRisk = maxTotalRisk
	}

	baseScore := 100 - totalRisk
	adjusted := baseScore * stat.Mean(confidences, nil)

	return clamp(adjusted, MinScore, MaxScore)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
