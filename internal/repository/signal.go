package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/internal/service"
)

type SignalRepository struct {
	db *pgxpool.Pool
}

func NewSignalRepository(db *pgxpool.Pool) service.SignalRepository {
	return &SignalRepository{
		db: db,
	}
}

const signalColumns = `
			id,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			incident_type,
			severity,
			COALESCE(description, ''),
			time_of_day,
			confidence_score,
			validation_count,
			spam_flag,
			created_at,
			city`

// Create создает новую запись о сигнале в бд
func (r *SignalRepository) Create(ctx context.Context, signal *models.SafetySignal) error {
	query := `
		INSERT INTO safety_signals (location, incident_type, severity, description, time_of_day, confidence_score, validation_count, spam_flag, city)
		VALUES (ST_SetSRID(ST_MakePoint($1, $2), 4326), $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		signal.Location.Lng,
		signal.Location.Lat,
		signal.IncidentType,
		signal.Severity,
		signal.Description,
		signal.TimeOfDay,
		signal.ConfidenceScore,
		signal.ValidationCount,
		signal.SpamFlag,
		signal.City,
	).Scan(&signal.ID, &signal.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create signal: %w", err)
	}
	return nil
}

// GetByID возвращает сигнал по его UUID
func (r *SignalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.SafetySignal, error) {
	query := `
		SELECT ` + signalColumns + `
		FROM safety_signals
		WHERE id = $1;
	`
	signal := &models.SafetySignal{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&signal.ID,
		&signal.Location.Lat,
		&signal.Location.Lng,
		&signal.IncidentType,
		&signal.Severity,
		&signal.Description,
		&signal.TimeOfDay,
		&signal.ConfidenceScore,
		&signal.ValidationCount,
		&signal.SpamFlag,
		&signal.CreatedAt,
		&signal.City,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("signal with id %s not found", id)
		}
		return nil, fmt.Errorf("failed to get signal by id: %w", err)
	}
	return signal, nil
}

// buildFilterClause собирает WHERE-условие выборки. Исключенные сигналы
// отсекаются всегда, остальные условия опциональны.
func buildFilterClause(filter models.SignalFilter) (string, []any) {
	conditions := []string{"spam_flag = FALSE"}
	args := make([]any, 0, 4)

	if filter.City != "" {
		args = append(args, filter.City)
		conditions = append(conditions, "city = $"+strconv.Itoa(len(args)))
	}
	if filter.TimeOfDay != "" {
		args = append(args, filter.TimeOfDay)
		conditions = append(conditions, "time_of_day = $"+strconv.Itoa(len(args)))
	}
	if filter.Severity != "" {
		args = append(args, filter.Severity)
		conditions = append(conditions, "severity = $"+strconv.Itoa(len(args)))
	}
	if !filter.CreatedAfter.IsZero() {
		args = append(args, filter.CreatedAfter)
		conditions = append(conditions, "created_at >= $"+strconv.Itoa(len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// Find возвращает неисключенные сигналы по фильтру с жестким лимитом
func (r *SignalRepository) Find(ctx context.Context, filter models.SignalFilter) ([]*models.SafetySignal, error) {
	where, args := buildFilterClause(filter)

	limit := filter.Limit
	if limit < 1 {
		limit = 1000
	}
	args = append(args, limit)

	query := `
		SELECT ` + signalColumns + `
		FROM safety_signals
		WHERE ` + where + `
		ORDER BY created_at DESC
		LIMIT $` + strconv.Itoa(len(args)) + `;
	`

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to find signals: %w", err)
	}
	defer rows.Close()

	signals := make([]*models.SafetySignal, 0)
	for rows.Next() {
		signal := &models.SafetySignal{}
		err := rows.Scan(
			&signal.ID,
			&signal.Location.Lat,
			&signal.Location.Lng,
			&signal.IncidentType,
			&signal.Severity,
			&signal.Description,
			&signal.TimeOfDay,
			&signal.ConfidenceScore,
			&signal.ValidationCount,
			&signal.SpamFlag,
			&signal.CreatedAt,
			&signal.City,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan signal row: %w", err)
		}
		signals = append(signals, signal)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error signals iteration: %w", err)
	}
	return signals, nil
}

// Count возвращает количество неисключенных сигналов по фильтру
func (r *SignalRepository) Count(ctx context.Context, filter models.SignalFilter) (int, error) {
	where, args := buildFilterClause(filter)

	query := `
		SELECT COUNT(*)
		FROM safety_signals
		WHERE ` + where + `;
	`

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count signals: %w", err)
	}
	return count, nil
}

// CreateValidation сохраняет подтверждение сигнала
func (r *SignalRepository) CreateValidation(ctx context.Context, validation *models.Validation) error {
	query := `
		INSERT INTO validations (signal_id, validation_type)
		VALUES ($1, $2) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		validation.SignalID,
		validation.ValidationType,
	).Scan(&validation.ID, &validation.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create validation: %w", err)
	}
	return nil
}

// CountValidations возвращает количество подтверждений сигнала
func (r *SignalRepository) CountValidations(ctx context.Context, signalID uuid.UUID) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM validations
		WHERE signal_id = $1;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, signalID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count validations: %w", err)
	}
	return count, nil
}

// UpdateConfidence обновляет надежность и счетчик подтверждений сигнала
func (r *SignalRepository) UpdateConfidence(ctx context.Context, signalID uuid.UUID, confidence float64, validationCount int) error {
	query := `
		UPDATE safety_signals SET
			confidence_score = $1,
			validation_count = $2
		WHERE id = $3;
	`
	cmdTag, err := r.db.Exec(ctx, query, confidence, validationCount, signalID)
	if err != nil {
		return fmt.Errorf("failed to update signal confidence: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("signal with id %s not found for confidence update", signalID)
	}
	return nil
}
