package models

import (
	"github.com/google/uuid"
)

// Классификация тренда горячей точки
const (
	TrendIncreasing = "increasing"
	TrendStable     = "stable"
)

// Hotspot представляет пространственный кластер недавних сигналов.
// Кластеры не сохраняются в БД, они пересчитываются при каждом запросе.
type Hotspot struct {
	ID              uuid.UUID `json:"id"`
	Location        Location  `json:"location"`
	AreaName        string    `json:"area_name"`
	RiskScore       float64   `json:"risk_score"`
	IncidentDensity int       `json:"incident_density"`
	TrendVelocity   string    `json:"trend_velocity"`
	Last30DaysCount int       `json:"last_30_days_incidents"`
	Confidence      float64   `json:"confidence"`
}
