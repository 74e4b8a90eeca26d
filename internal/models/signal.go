package models

import (
	"time"

	"github.com/google/uuid"
)

// Типы инцидентов, которые может сообщить пользователь
const (
	IncidentHarassment   = "harassment"
	IncidentTheft        = "theft"
	IncidentAssault      = "assault"
	IncidentVandalism    = "vandalism"
	IncidentSuspicious   = "suspicious_activity"
	IncidentPoorLighting = "poor_lighting"
	IncidentOther        = "other"
)

// Уровни серьезности инцидента
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Временные интервалы суток
const (
	TimeOfDayMorning = "morning"
	TimeOfDayDay     = "day"
	TimeOfDayEvening = "evening"
	TimeOfDayNight   = "night"
)

// Location представляет географическую точку
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// SafetySignal представляет один сигнал о безопасности от сообщества
type SafetySignal struct {
	ID              uuid.UUID `json:"id"`
	Location        Location  `json:"location"`
	IncidentType    string    `json:"incident_type"`
	Severity        string    `json:"severity"`
	Description     string    `json:"description,omitempty"`
	TimeOfDay       string    `json:"time_of_day"`
	ConfidenceScore float64   `json:"confidence_score"`
	ValidationCount int       `json:"validation_count"`
	SpamFlag        bool      `json:"spam_flag"`
	CreatedAt       time.Time `json:"created_at"`
	City            string    `json:"city"`
}

// SignalFilter описывает параметры выборки сигналов из хранилища.
// Исключенные (spam_flag=true) сигналы никогда не попадают в выборку.
type SignalFilter struct {
	City         string
	TimeOfDay    string
	Severity     string
	CreatedAfter time.Time
	Limit        int
}
