package v1

import (
	"time"

	"github.com/google/uuid"
)

// RegisterRequest DTO для регистрации пользователя
// @Description DTO для регистрации пользователя
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Name     string `json:"name" validate:"required,min=2,max=255"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=user ngo city admin"`
}

// LoginRequest DTO для входа пользователя
// @Description DTO для входа пользователя
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse DTO для ответа с информацией о пользователе
// @Description DTO для ответа с информацией о пользователе
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse DTO для ответа с токеном доступа
// @Description DTO для ответа с токеном доступа
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}

// CreateSignalRequest DTO для создания сигнала о безопасности
// @Description DTO для создания сигнала о безопасности
type CreateSignalRequest struct {
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	IncidentType string  `json:"incident_type" validate:"required,oneof=harassment theft assault vandalism suspicious_activity poor_lighting other"`
	Severity     string  `json:"severity" validate:"required,oneof=low medium high"`
	Description  string  `json:"description,omitempty" validate:"omitempty,max=2000"`
	TimeOfDay    string  `json:"time_of_day" validate:"required,oneof=morning day evening night"`
	City         string  `json:"city,omitempty" validate:"omitempty,max=100"`
}

// SignalResponse DTO для ответа с информацией о сигнале
// @Description DTO для ответа с информацией о сигнале
type SignalResponse struct {
	ID              uuid.UUID `json:"id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	IncidentType    string    `json:"incident_type"`
	Severity        string    `json:"severity"`
	Description     string    `json:"description,omitempty"`
	TimeOfDay       string    `json:"time_of_day"`
	ConfidenceScore float64   `json:"confidence_score"`
	ValidationCount int       `json:"validation_count"`
	CreatedAt       time.Time `json:"created_at"`
	City            string    `json:"city"`
}

// ValidateSignalRequest DTO для подтверждения сигнала
// @Description DTO для подтверждения сигнала
type ValidateSignalRequest struct {
	ValidationType string `json:"validation_type" validate:"required,oneof=confirm still_active resolved"`
}

// ValidateSignalResponse DTO для ответа после подтверждения сигнала
// @Description DTO для ответа после подтверждения сигнала
type ValidateSignalResponse struct {
	SignalID        uuid.UUID `json:"signal_id"`
	ConfidenceScore float64   `json:"confidence_score"`
}

// PlanRouteRequest DTO для построения профиля риска маршрута
// @Description DTO для построения профиля риска маршрута
type PlanRouteRequest struct {
	StartLat     float64 `json:"start_lat" validate:"required,latitude"`
	StartLng     float64 `json:"start_lng" validate:"required,longitude"`
	EndLat       float64 `json:"end_lat" validate:"required,latitude"`
	EndLng       float64 `json:"end_lng" validate:"required,longitude"`
	TimeOfDay    string  `json:"time_of_day,omitempty" validate:"omitempty,oneof=morning day evening night"`
	PreferSafety bool    `json:"prefer_safety,omitempty"`
}

// ExportRequest DTO для постановки экспортной задачи
// @Description DTO для постановки экспортной задачи
type ExportRequest struct {
	Format   string     `json:"format,omitempty" validate:"omitempty,oneof=csv"`
	City     string     `json:"city,omitempty" validate:"omitempty,max=100"`
	DateFrom *time.Time `json:"date_from,omitempty"`
	DateTo   *time.Time `json:"date_to,omitempty"`
}

// ExportJobResponse DTO для ответа с принятой экспортной задачей
// @Description DTO для ответа с принятой экспортной задачей
type ExportJobResponse struct {
	ID        uuid.UUID `json:"id"`
	Status    string    `json:"status"`
	Format    string    `json:"format"`
	City      string    `json:"city"`
	CreatedAt time.Time `json:"created_at"`
}

// CityResponse DTO для элемента каталога городов
// @Description DTO для элемента каталога городов
type CityResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TransparencyResponse DTO для документа о прозрачности обработки данных
// @Description DTO для документа о прозрачности обработки данных
type TransparencyResponse struct {
	DataCollected    []string `json:"data_collected"`
	DataNotCollected []string `json:"data_not_collected"`
	RetentionPolicy  string   `json:"retention_policy"`
	Anonymization    string   `json:"anonymization"`
	Contact          string   `json:"contact"`
}
