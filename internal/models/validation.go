package models

import (
	"time"

	"github.com/google/uuid"
)

// Validation представляет подтверждение сигнала другим пользователем.
// Каждое подтверждение повышает confidence_score сигнала (с насыщением 0.9).
type Validation struct {
	ID             uuid.UUID `json:"id"`
	SignalID       uuid.UUID `json:"signal_id"`
	ValidationType string    `json:"validation_type"`
	CreatedAt      time.Time `json:"created_at"`
}
