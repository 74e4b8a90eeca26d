package export

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/lumina-safety/safety_signal_system/internal/config"
	"github.com/lumina-safety/safety_signal_system/internal/metrics"
	"github.com/lumina-safety/safety_signal_system/internal/models"
)

// SignalSource - узкий интерфейс чтения сигналов, нужный воркеру
type SignalSource interface {
	Find(ctx context.Context, filter models.SignalFilter) ([]*models.SafetySignal, error)
}

// Worker снимает экспортные задачи из очереди Redis, строит CSV и сохраняет
// результат. При настроенном EXPORT_WEBHOOK_URL дополнительно отправляет
// подписанное уведомление о завершении.
type Worker struct {
	redisClient *redis.Client
	signals     SignalSource
	results     *ResultStore
	logger      *logrus.Logger
	cfg         *config.Config
	mtr         *metrics.Metrics
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, signals SignalSource, results *ResultStore, logger *logrus.Logger, cfg *config.Config, mtr *metrics.Metrics) *Worker {
	return &Worker{
		redisClient: redisClient,
		signals:     signals,
		results:     results,
		logger:      logger,
		cfg:         cfg,
		mtr:         mtr,
		httpClient: &http.Client{
			Timeout: cfg.ExportTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди экспортных задач
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting export worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping export worker.")
				return
			default:
				// BRPOP - блокирующее извлечение из правой части очереди,
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, exportQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop export job from Redis")
					time.Sleep(w.cfg.ExportTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				var job Job
				if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal export job from Redis")
					continue
				}

				w.processJob(ctx, job)
			}
		}
	}()
}

func (w *Worker) processJob(ctx context.Context, job Job) {
	log := w.logger.WithField("export_id", job.ID).WithField("format", job.Format)
	log.Info("Processing export job...")

	filter := models.SignalFilter{
		City:  job.City,
		Limit: w.cfg.SignalPageLimit,
	}
	if job.DateFrom != nil {
		filter.CreatedAfter = *job.DateFrom
	}

	signals, err := w.signals.Find(ctx, filter)
	if err != nil {
		log.WithError(err).Error("Failed to load signals for export")
		w.saveResult(ctx, &Result{
			ID:          job.ID,
			Status:      StatusFailed,
			Format:      job.Format,
			Error:       err.Error(),
			CompletedAt: time.Now().UTC(),
		})
		w.mtr.ExportJob(metrics.StatusFailure)
		return
	}

	if job.DateTo != nil {
		filtered := signals[:0]
		for _, s := range signals {
			if !s.CreatedAt.After(*job.DateTo) {
				filtered = append(filtered, s)
			}
		}
		signals = filtered
	}

	data, err := buildCSV(signals)
	if err != nil {
		log.WithError(err).Error("Failed to build export CSV")
		w.saveResult(ctx, &Result{
			ID:          job.ID,
			Status:      StatusFailed,
			Format:      job.Format,
			Error:       err.Error(),
			CompletedAt: time.Now().UTC(),
		})
		w.mtr.ExportJob(metrics.StatusFailure)
		return
	}

	res := &Result{
		ID:          job.ID,
		Status:      StatusCompleted,
		Format:      job.Format,
		RowCount:    len(signals),
		Data:        data,
		CompletedAt: time.Now().UTC(),
	}
	w.saveResult(ctx, res)
	w.mtr.ExportJob(metrics.StatusSuccess)
	log.WithField("rows", res.RowCount).Info("Export job completed")

	w.notifyCompletion(ctx, res)
}

func (w *Worker) saveResult(ctx context.Context, result *Result) {
	if err := w.results.Save(ctx, result); err != nil {
		w.logger.WithError(err).WithField("export_id", result.ID).Error("Failed to save export result")
	}
}

// notifyCompletion отправляет подписанный HMAC-SHA256 вебхук о завершении
// экспорта с экспоненциальной задержкой между повторами
func (w *Worker) notifyCompletion(ctx context.Context, result *Result) {
	if w.cfg.ExportWebhookURL == "" {
		return
	}

	log := w.logger.WithField("export_id", result.ID)

	notification, err := json.Marshal(map[string]any{
		"export_id":    result.ID,
		"status":       result.Status,
		"row_count":    result.RowCount,
		"completed_at": result.CompletedAt,
	})
	if err != nil {
		log.WithError(err).Error("Failed to marshal export notification")
		return
	}

	baseDelay := w.cfg.ExportBaseDelay
	maxRetries := w.cfg.ExportMaxRetries

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.ExportWebhookURL, bytes.NewReader(notification))
		if err != nil {
			log.WithError(err).Errorf("Failed to create export webhook request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		if w.cfg.ExportWebhookSecret != "" {
			signature := generateHMACSHA256(string(notification), w.cfg.ExportWebhookSecret)
			req.Header.Set("X-Webhook-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send export webhook. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Export webhook delivered successfully.")
			return
		}

		log.Warnf("Export webhook delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver export webhook after %d retries.", maxRetries)
}

// buildCSV сериализует сигналы в CSV с заголовком
func buildCSV(signals []*models.SafetySignal) (string, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	header := []string{"id", "lat", "lng", "incident_type", "severity", "time_of_day", "confidence_score", "validation_count", "created_at", "city"}
	if err := writer.Write(header); err != nil {
		return "", fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, s := range signals {
		row := []string{
			s.ID.String(),
			strconv.FormatFloat(s.Location.Lat, 'f', -1, 64),
			strconv.FormatFloat(s.Location.Lng, 'f', -1, 64),
			s.IncidentType,
			s.Severity,
			s.TimeOfDay,
			strconv.FormatFloat(s.ConfidenceScore, 'f', -1, 64),
			strconv.Itoa(s.ValidationCount),
			s.CreatedAt.UTC().Format(time.RFC3339),
			s.City,
		}
		if err := writer.Write(row); err != nil {
			return "", fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", fmt.Errorf("failed to flush csv: %w", err)
	}
	return buf.String(), nil
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
