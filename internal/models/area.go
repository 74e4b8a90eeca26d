package models

import (
	"time"
)

// AreaScore представляет производную оценку безопасности для ячейки города.
// Идентификатор ячейки — чистая функция от (город, координаты), поэтому
// повторный пересчет всегда заменяет прежнюю запись целиком.
type AreaScore struct {
	ID              string             `json:"id"`
	AreaName        string             `json:"area_name"`
	Location        Location           `json:"location"`
	RadiusMeters    int                `json:"radius_meters"`
	SafetyScores    map[string]float64 `json:"safety_scores"`
	ConfidenceLevel float64            `json:"confidence_level"`
	IncidentCount   int                `json:"incident_count"`
	LastUpdated     time.Time          `json:"last_updated"`
	City            string             `json:"city"`
}
