package service

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/lumina-safety/safety_signal_system/internal/config"
	"github.com/lumina-safety/safety_signal_system/internal/metrics"
	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/internal/service/mocks"
)

// newTestSignalService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestSignalService(t *testing.T) (*signalService, *mocks.MockSignalRepository, *mocks.MockAreaUpdater) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockSignalRepository(ctrl)
	areasMock := mocks.NewMockAreaUpdater(ctrl)

	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{}) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		DefaultCity:     "demo_city",
		SignalPageLimit: 1000,
	}

	service := NewSignalService(repoMock, areasMock, logger, cfg, metrics.NewMetrics())
	return service.(*signalService), repoMock, areasMock
}

func TestCreateSignal_Success(t *testing.T) {
	// Подготовка
	service, repoMock, areasMock := newTestSignalService(t)
	ctx := context.Background()
	signal := &models.SafetySignal{
		Location:     models.Location{Lat: 55.7558, Lng: 37.6173},
		IncidentType: models.IncidentTheft,
		Severity:     models.SeverityMedium,
		TimeOfDay:    models.TimeOfDayEvening,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(ctx context.Context, s *models.SafetySignal) error {
			// Симулируем, что БД присвоила ID
			s.ID = uuid.New()
			return nil
		}).Times(1)

	areasMock.EXPECT().
		RecomputeArea(ctx, signal.Location, "demo_city").
		Return(&models.AreaScore{}, nil).
		Times(1)

	// Действие
	err := service.CreateSignal(ctx, signal)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.7, signal.ConfidenceScore)
	assert.Equal(t, 0, signal.ValidationCount)
	assert.False(t, signal.SpamFlag)
	assert.Equal(t, "demo_city", signal.City)
	assert.NotEqual(t, uuid.Nil, signal.ID)
}

func TestCreateSignal_RepositoryError(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	signal := &models.SafetySignal{
		Severity: models.SeverityLow,
	}
	dbError := fmt.Errorf("база недоступна")

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(dbError).
		Times(1)

	// Действие
	err := service.CreateSignal(ctx, signal)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not create signal")
}

func TestCreateSignal_AreaRecomputeError(t *testing.T) {
	// Подготовка
	service, repoMock, areasMock := newTestSignalService(t)
	ctx := context.Background()
	signal := &models.SafetySignal{
		City:     "demo_city",
		Severity: models.SeverityHigh,
	}

	// Ожидания
	repoMock.EXPECT().
		Create(ctx, gomock.Any()).
		Return(nil).
		Times(1)

	areasMock.EXPECT().
		RecomputeArea(ctx, gomock.Any(), "demo_city").
		Return(nil, fmt.Errorf("ошибка пересчета")).
		Times(1)

	// Действие
	err := service.CreateSignal(ctx, signal)

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "could not recompute area score")
}

func TestListSignals_DefaultsApplied(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	expected := []*models.SafetySignal{{ID: uuid.New()}}

	// Ожидания: пустой фильтр получает город и лимит по умолчанию
	repoMock.EXPECT().
		Find(ctx, models.SignalFilter{City: "demo_city", Limit: 1000}).
		Return(expected, nil).
		Times(1)

	// Действие
	signals, err := service.ListSignals(ctx, models.SignalFilter{})

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, expected, signals)
}

func TestValidateSignal_ConfidenceGrows(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	signalID := uuid.New()

	// Ожидания: второе подтверждение дает 0.5 + 2*0.1 = 0.7
	repoMock.EXPECT().GetByID(ctx, signalID).Return(&models.SafetySignal{ID: signalID}, nil).Times(1)
	repoMock.EXPECT().CreateValidation(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().CountValidations(ctx, signalID).Return(2, nil).Times(1)
	repoMock.EXPECT().UpdateConfidence(ctx, signalID, 0.7, 2).Return(nil).Times(1)

	// Действие
	confidence, err := service.ValidateSignal(ctx, signalID, "confirm")

	// Проверки
	require.NoError(t, err)
	assert.InDelta(t, 0.7, confidence, 1e-9)
}

func TestValidateSignal_ConfidenceSaturates(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	signalID := uuid.New()

	// Ожидания: 10 подтверждений упираются в потолок 0.9
	repoMock.EXPECT().GetByID(ctx, signalID).Return(&models.SafetySignal{ID: signalID}, nil).Times(1)
	repoMock.EXPECT().CreateValidation(ctx, gomock.Any()).Return(nil).Times(1)
	repoMock.EXPECT().CountValidations(ctx, signalID).Return(10, nil).Times(1)
	repoMock.EXPECT().UpdateConfidence(ctx, signalID, 0.9, 10).Return(nil).Times(1)

	// Действие
	confidence, err := service.ValidateSignal(ctx, signalID, "confirm")

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, 0.9, confidence)
}

func TestValidateSignal_NotFound(t *testing.T) {
	// Подготовка
	service, repoMock, _ := newTestSignalService(t)
	ctx := context.Background()
	signalID := uuid.New()

	// Ожидания
	repoMock.EXPECT().
		GetByID(ctx, signalID).
		Return(nil, fmt.Errorf("не найдено")).
		Times(1)

	// Действие
	_, err := service.ValidateSignal(ctx, signalID, "confirm")

	// Проверки
	require.Error(t, err)
	assert.ErrorContains(t, err, "not found for validation")
}
