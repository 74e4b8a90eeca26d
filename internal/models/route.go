package models

import (
	"github.com/google/uuid"
)

// RoutePoint — одна точка маршрута с оценкой безопасности
type RoutePoint struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	SafetyScore float64 `json:"safety_score"`
}

// RiskySegment — точка маршрута с оценкой ниже порога безопасности
type RiskySegment struct {
	Index       int      `json:"index"`
	Location    Location `json:"location"`
	SafetyScore float64  `json:"safety_score"`
	Warning     string   `json:"warning"`
}

// Route представляет построенный прямолинейный профиль риска между двумя
// точками. Это не навигационный маршрут по дорожной сети.
type Route struct {
	RouteID              uuid.UUID      `json:"route_id"`
	Points               []RoutePoint   `json:"points"`
	OverallSafetyScore   float64        `json:"overall_safety_score"`
	DistanceKm           float64        `json:"distance_km"`
	EstimatedTimeMinutes int            `json:"estimated_time_minutes"`
	RiskySegments        []RiskySegment `json:"risky_segments"`
}
