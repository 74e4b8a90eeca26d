package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lumina-safety/safety_signal_system/internal/config"
	"github.com/lumina-safety/safety_signal_system/internal/metrics"
	"github.com/lumina-safety/safety_signal_system/internal/models"
)

//go:generate mockgen -source=signal.go -destination=mocks/signal_mock.go -package=mocks

const (
	// Стартовая надежность свежего, еще не подтвержденного сигнала
	initialConfidence = 0.7

	// Подтверждения повышают надежность: min(0.9, 0.5 + count*0.1)
	validationConfidenceBase = 0.5
	validationConfidenceStep = 0.1
	maxSignalConfidence      = 0.9
)

// SignalRepository определяет контракт для работы с хранилищем сигналов.
// Фильтр никогда не возвращает исключенные (spam_flag=true) записи.
type SignalRepository interface {
	Create(ctx context.Context, signal *models.SafetySignal) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.SafetySignal, error)
	Find(ctx context.Context, filter models.SignalFilter) ([]*models.SafetySignal, error)
	Count(ctx context.Context, filter models.SignalFilter) (int, error)
	CreateValidation(ctx context.Context, validation *models.Validation) error
	CountValidations(ctx context.Context, signalID uuid.UUID) (int, error)
	UpdateConfidence(ctx context.Context, signalID uuid.UUID, confidence float64, validationCount int) error
}

// AreaUpdater пересчитывает агрегат района после интейка сигнала
type AreaUpdater interface {
	RecomputeArea(ctx context.Context, location models.Location, city string) (*models.AreaScore, error)
}

// SignalService определяет контракт для бизнес-логики интейка и подтверждения сигналов
type SignalService interface {
	CreateSignal(ctx context.Context, signal *models.SafetySignal) error
	ListSignals(ctx context.Context, filter models.SignalFilter) ([]*models.SafetySignal, error)
	ValidateSignal(ctx context.Context, signalID uuid.UUID, validationType string) (float64, error)
}

type signalService struct {
	repo   SignalRepository
	areas  AreaUpdater
	logger *logrus.Logger
	cfg    *config.Config
	mtr    *metrics.Metrics
}

func NewSignalService(repo SignalRepository, areas AreaUpdater, logger *logrus.Logger, cfg *config.Config, mtr *metrics.Metrics) SignalService {
	return &signalService{
		repo:   repo,
		areas:  areas,
		logger: logger,
		cfg:    cfg,
		mtr:    mtr,
	}
}

// CreateSignal принимает новый сигнал и запускает пересчет агрегата района
func (s *signalService) CreateSignal(ctx context.Context, signal *models.SafetySignal) error {
	log := s.logger.WithFields(logrus.Fields{
		"service":       "signal",
		"method":        "CreateSignal",
		"incident_type": signal.IncidentType,
	})
	log.Info("Attempting to create a new safety signal")

	signal.ConfidenceScore = initialConfidence
	signal.ValidationCount = 0
	signal.SpamFlag = false
	if signal.City == "" {
		signal.City = s.cfg.DefaultCity
	}

	if err := s.repo.Create(ctx, signal); err != nil {
		log.WithError(err).Error("Failed to create signal in repository")
		return fmt.Errorf("service: could not create signal: %w", err)
	}
	s.mtr.SignalCreated(signal.Severity)

	// Каждый интейк синхронно пересчитывает агрегат своего района
	if _, err := s.areas.RecomputeArea(ctx, signal.Location, signal.City); err != nil {
		log.WithError(err).Error("Failed to recompute area score after intake")
		return fmt.Errorf("service: could not recompute area score: %w", err)
	}

	log.WithField("signal_id", signal.ID).Info("Safety signal created successfully")
	return nil
}

// ListSignals возвращает сигналы по фильтру с ограничением размера выборки
func (s *signalService) ListSignals(ctx context.Context, filter models.SignalFilter) ([]*models.SafetySignal, error) {
	if filter.City == "" {
		filter.City = s.cfg.DefaultCity
	}
	if filter.Limit < 1 || filter.Limit > s.cfg.SignalPageLimit {
		filter.Limit = s.cfg.SignalPageLimit
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "signal",
		"method":  "ListSignals",
		"city":    filter.City,
	})
	log.Info("Listing safety signals")

	signals, err := s.repo.Find(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to list signals from repository")
		return nil, fmt.Errorf("service: could not list signals: %w", err)
	}

	log.WithField("count", len(signals)).Info("Signals listed successfully")
	return signals, nil
}

// ValidateSignal записывает подтверждение и пересчитывает надежность сигнала.
// Возвращает новое значение confidence_score.
func (s *signalService) ValidateSignal(ctx context.Context, signalID uuid.UUID, validationType string) (float64, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "signal",
		"method":    "ValidateSignal",
		"signal_id": signalID,
	})
	log.Info("Recording signal validation")

	if _, err := s.repo.GetByID(ctx, signalID); err != nil {
		log.WithError(err).Warn("Attempted to validate a non-existent signal")
		return 0, fmt.Errorf("service: signal with id %s not found for validation: %w", signalID, err)
	}

	validation := &models.Validation{
		SignalID:       signalID,
		ValidationType: validationType,
	}
	if err := s.repo.CreateValidation(ctx, validation); err != nil {
		log.WithError(err).Error("Failed to create validation in repository")
		return 0, fmt.Errorf("service: could not record validation: %w", err)
	}

	count, err := s.repo.CountValidations(ctx, signalID)
	if err != nil {
		log.WithError(err).Error("Failed to count validations")
		return 0, fmt.Errorf("service: could not count validations: %w", err)
	}

	// Надежность строго растет с числом подтверждений и насыщается на 0.9
	confidence := validationConfidenceBase + float64(count)*validationConfidenceStep
	if confidence > maxSignalConfidence {
		confidence = maxSignalConfidence
	}

	if err := s.repo.UpdateConfidence(ctx, signalID, confidence, count); err != nil {
		log.WithError(err).Error("Failed to update signal confidence")
		return 0, fmt.Errorf("service: could not update signal confidence: %w", err)
	}
	s.mtr.ValidationRecorded()

	log.WithField("new_confidence", confidence).Info("Validation recorded successfully")
	return confidence, nil
}
