package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lumina-safety/safety_signal_system/internal/models"
)

func makeSignal(severity string, confidence float64) *models.SafetySignal {
	return &models.SafetySignal{
		Severity:        severity,
		ConfidenceScore: confidence,
	}
}

func TestCalculateSafetyScore_EmptySet(t *testing.T) {
	// Отсутствие сигналов — фиксированный базовый уровень, не ошибка
	assert.Equal(t, 85.0, CalculateSafetyScore(nil))
	assert.Equal(t, 85.0, CalculateSafetyScore([]*models.SafetySignal{}))
}

func TestCalculateSafetyScore_ThreeHighSeverity(t *testing.T) {
	// 3 сигнала high с confidence 0.9: риск 90 насыщается до 70,
	// base = 30, 30 * 0.9 = 27.0
	signals := []*models.SafetySignal{
		makeSignal(models.SeverityHigh, 0.9),
		makeSignal(models.SeverityHigh, 0.9),
		makeSignal(models.SeverityHigh, 0.9),
	}

	assert.InDelta(t, 27.0, CalculateSafetyScore(signals), 1e-9)
}

func TestCalculateSafetyScore_Bounds(t *testing.T) {
	cases := []struct {
		name    string
		signals []*models.SafetySignal
	}{
		{"one low", []*models.SafetySignal{makeSignal(models.SeverityLow, 1.0)}},
		{"many high zero confidence", []*models.SafetySignal{
			makeSignal(models.SeverityHigh, 0),
			makeSignal(models.SeverityHigh, 0),
			makeSignal(models.SeverityHigh, 0),
			makeSignal(models.SeverityHigh, 0),
		}},
		{"mixed", []*models.SafetySignal{
			makeSignal(models.SeverityLow, 0.3),
			makeSignal(models.SeverityMedium, 0.7),
			makeSignal(models.SeverityHigh, 0.9),
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			score := CalculateSafetyScore(tc.signals)
			assert.GreaterOrEqual(t, score, 20.0)
			assert.LessOrEqual(t, score, 95.0)
		})
	}
}

func TestCalculateSafetyScore_MissingConfidenceDefaults(t *testing.T) {
	// Нулевой confidence трактуется как отсутствующий и заменяется на 0.5:
	// один medium, риск 15, base = 85, 85 * 0.5 = 42.5
	signals := []*models.SafetySignal{makeSignal(models.SeverityMedium, 0)}

	assert.InDelta(t, 42.5, CalculateSafetyScore(signals), 1e-9)
}

func TestCalculateSafetyScore_HighSeverityNeverImproves(t *testing.T) {
	// Добавление high-сигнала к непустому набору не может повысить оценку
	base := []*models.SafetySignal{
		makeSignal(models.SeverityMedium, 0.8),
		makeSignal(models.SeverityLow, 0.8),
	}
	before := CalculateSafetyScore(base)

	extended := append(append([]*models.SafetySignal{}, base...), makeSignal(models.SeverityHigh, 0.8))
	after := CalculateSafetyScore(extended)

	assert.LessOrEqual(t, after, before)
}

func TestCalculateSafetyScore_Deterministic(t *testing.T) {
	signals := []*models.SafetySignal{
		makeSignal(models.SeverityHigh, 0.6),
		makeSignal(models.SeverityLow, 0.4),
	}

	first := CalculateSafetyScore(signals)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, CalculateSafetyScore(signals))
	}
}

func TestCalculateSafetyScore_UnknownSeverityCountsAsLow(t *testing.T) {
	known := CalculateSafetyScore([]*models.SafetySignal{makeSignal(models.SeverityLow, 0.7)})
	unknown := CalculateSafetyScore([]*models.SafetySignal{makeSignal("catastrophic", 0.7)})

	assert.Equal(t, known, unknown)
}
