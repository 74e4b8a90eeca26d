package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lumina-safety/safety_signal_system/internal/config"
	"github.com/lumina-safety/safety_signal_system/internal/export"
	"github.com/lumina-safety/safety_signal_system/internal/metrics"
	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/internal/scoring"
)

//go:generate mockgen -source=analytics.go -destination=mocks/analytics_mock.go -package=mocks

// Окно выборки для горячих точек и дашборда
const recentWindowDays = 30

// AreaRepository определяет контракт для работы с хранилищем агрегатов районов
type AreaRepository interface {
	Upsert(ctx context.Context, area *models.AreaScore) error
	ListByCity(ctx context.Context, city string, limit int) ([]*models.AreaScore, error)
	CountByCity(ctx context.Context, city string) (int, error)
	GetAreasFromCache(ctx context.Context, city string) ([]*models.AreaScore, error)
	SetAreasCache(ctx context.Context, city string, areas []*models.AreaScore) error
	InvalidateAreasCache(ctx context.Context, city string) error
}

// AnalyticsService определяет контракт производной аналитики: агрегаты
// районов, горячие точки, маршрутные профили и дашборд
type AnalyticsService interface {
	RecomputeArea(ctx context.Context, location models.Location, city string) (*models.AreaScore, error)
	ListAreaScores(ctx context.Context, city string, limit int) ([]*models.AreaScore, error)
	DetectHotspots(ctx context.Context, city string, limit int) ([]*models.Hotspot, error)
	PlanRoute(ctx context.Context, start, end models.Location, timeOfDay string, preferSafety bool) (*models.Route, error)
	DashboardMetrics(ctx context.Context, city string) (*models.DashboardMetrics, error)
	RiskTrends(ctx context.Context, city string, days int) ([]*models.TrendPoint, error)
	RequestExport(ctx context.Context, job export.Job) (*export.Job, error)
	GetExportResult(ctx context.Context, id uuid.UUID) (*export.Result, error)
}

type analyticsService struct {
	signals   SignalRepository
	areas     AreaRepository
	publisher export.Publisher
	results   *export.ResultStore
	logger    *logrus.Logger
	cfg       *config.Config
	mtr       *metrics.Metrics
	now       func() time.Time
}

func NewAnalyticsService(signals SignalRepository, areas AreaRepository, publisher export.Publisher, results *export.ResultStore, logger *logrus.Logger, cfg *config.Config, mtr *metrics.Metrics) AnalyticsService {
	return &analyticsService{
		signals:   signals,
		areas:     areas,
		publisher: publisher,
		results:   results,
		logger:    logger,
		cfg:       cfg,
		mtr:       mtr,
		now:       time.Now,
	}
}

// RecomputeArea загружает рабочий набор города и заменяет агрегат ячейки.
// Замена полная: слияния с предыдущей записью нет, поэтому повторный вызов
// при неизменном наборе сигналов дает идентичный результат.
func (s *analyticsService) RecomputeArea(ctx context.Context, location models.Location, city string) (*models.AreaScore, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "RecomputeArea",
		"city":    city,
	})
	log.Info("Recomputing area safety score")

	signals, err := s.signals.Find(ctx, models.SignalFilter{
		City:  city,
		Limit: s.cfg.SignalPageLimit,
	})
	if err != nil {
		log.WithError(err).Error("Failed to load working set for area recompute")
		return nil, fmt.Errorf("service: could not load signals for area recompute: %w", err)
	}

	area := scoring.BuildAreaScore(location, city, signals, s.now())

	if err := s.areas.Upsert(ctx, area); err != nil {
		log.WithError(err).Error("Failed to upsert area score")
		return nil, fmt.Errorf("service: could not upsert area score: %w", err)
	}

	// Список агрегатов города изменился, кеш устарел
	if err := s.areas.InvalidateAreasCache(ctx, city); err != nil {
		log.WithError(err).Warn("Failed to invalidate area scores cache")
	}

	log.WithField("cell_key", area.ID).WithField("incident_count", area.IncidentCount).Info("Area score recomputed")
	return area, nil
}

// ListAreaScores возвращает агрегаты районов города (с кешированием в Redis)
func (s *analyticsService) ListAreaScores(ctx context.Context, city string, limit int) ([]*models.AreaScore, error) {
	if city == "" {
		city = s.cfg.DefaultCity
	}
	if limit < 1 || limit > 500 {
		limit = 500
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "ListAreaScores",
		"city":    city,
	})

	cached, err := s.areas.GetAreasFromCache(ctx, city)
	if err != nil {
		log.WithError(err).Warn("Failed to read area scores cache")
	}
	if cached != nil {
		log.WithField("count", len(cached)).Debug("Area scores served from cache")
		if len(cached) > limit {
			cached = cached[:limit]
		}
		return cached, nil
	}

	areas, err := s.areas.ListByCity(ctx, city, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list area scores from repository")
		return nil, fmt.Errorf("service: could not list area scores: %w", err)
	}

	if err := s.areas.SetAreasCache(ctx, city, areas); err != nil {
		log.WithError(err).Warn("Failed to cache area scores")
	}

	return areas, nil
}

// DetectHotspots кластеризует сигналы города за последние 30 дней
func (s *analyticsService) DetectHotspots(ctx context.Context, city string, limit int) ([]*models.Hotspot, error) {
	if city == "" {
		city = s.cfg.DefaultCity
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "DetectHotspots",
		"city":    city,
	})
	log.Info("Detecting hotspots")

	signals, err := s.signals.Find(ctx, models.SignalFilter{
		City:         city,
		CreatedAfter: s.now().AddDate(0, 0, -recentWindowDays),
		Limit:        s.cfg.SignalPageLimit,
	})
	if err != nil {
		log.WithError(err).Error("Failed to load recent signals for hotspot detection")
		return nil, fmt.Errorf("service: could not load signals for hotspots: %w", err)
	}

	hotspots := scoring.DetectHotspots(signals, limit)
	s.mtr.HotspotQuery()

	log.WithField("count", len(hotspots)).Info("Hotspot detection completed")
	return hotspots, nil
}

// PlanRoute строит прямолинейный профиль риска между двумя точками.
// Флаг preferSafety принимается для совместимости, но на геометрию маршрута
// не влияет: путь всегда прямая линия.
func (s *analyticsService) PlanRoute(ctx context.Context, start, end models.Location, timeOfDay string, preferSafety bool) (*models.Route, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "analytics",
		"method":      "PlanRoute",
		"time_of_day": timeOfDay,
	})
	log.Info("Planning route risk profile")

	// Рабочий набор маршрута не ограничен городом: маршрут может
	// пересекать границы городской выборки
	signals, err := s.signals.Find(ctx, models.SignalFilter{
		Limit: s.cfg.SignalPageLimit,
	})
	if err != nil {
		log.WithError(err).Error("Failed to load working set for route planning")
		return nil, fmt.Errorf("service: could not load signals for route: %w", err)
	}

	route := scoring.PlanRoute(signals, start, end)
	s.mtr.RoutePlanned()

	log.WithFields(logrus.Fields{
		"points":         len(route.Points),
		"risky_segments": len(route.RiskySegments),
	}).Info("Route planned successfully")
	return route, nil
}

// DashboardMetrics возвращает сводные показатели города для дашборда
func (s *analyticsService) DashboardMetrics(ctx context.Context, city string) (*models.DashboardMetrics, error) {
	if city == "" {
		city = s.cfg.DefaultCity
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "DashboardMetrics",
		"city":    city,
	})
	log.Info("Collecting dashboard metrics")

	total, err := s.signals.Count(ctx, models.SignalFilter{City: city})
	if err != nil {
		return nil, fmt.Errorf("service: could not count signals: %w", err)
	}

	recent, err := s.signals.Count(ctx, models.SignalFilter{
		City:         city,
		CreatedAfter: s.now().AddDate(0, 0, -recentWindowDays),
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not count recent signals: %w", err)
	}

	highSeverity, err := s.signals.Count(ctx, models.SignalFilter{
		City:     city,
		Severity: models.SeverityHigh,
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not count high severity signals: %w", err)
	}

	areas, err := s.areas.CountByCity(ctx, city)
	if err != nil {
		return nil, fmt.Errorf("service: could not count monitored areas: %w", err)
	}

	return &models.DashboardMetrics{
		TotalSignals:      total,
		Last30Days:        recent,
		HighSeverityCount: highSeverity,
		AreasMonitored:    areas,
		City:              city,
	}, nil
}

// RiskTrends возвращает посуточные количества сигналов за период
func (s *analyticsService) RiskTrends(ctx context.Context, city string, days int) ([]*models.TrendPoint, error) {
	if city == "" {
		city = s.cfg.DefaultCity
	}
	if days < 1 || days > 365 {
		days = recentWindowDays
	}

	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "RiskTrends",
		"city":    city,
		"days":    days,
	})
	log.Info("Computing risk trends")

	signals, err := s.signals.Find(ctx, models.SignalFilter{
		City:         city,
		CreatedAfter: s.now().AddDate(0, 0, -days),
		Limit:        s.cfg.SignalPageLimit,
	})
	if err != nil {
		log.WithError(err).Error("Failed to load signals for trends")
		return nil, fmt.Errorf("service: could not load signals for trends: %w", err)
	}

	daily := make(map[string]*models.TrendPoint)
	for _, sig := range signals {
		dateKey := sig.CreatedAt.UTC().Format("2006-01-02")
		point, ok := daily[dateKey]
		if !ok {
			point = &models.TrendPoint{Date: dateKey}
			daily[dateKey] = point
		}
		point.Count++
		if sig.Severity == models.SeverityHigh {
			point.HighSeverity++
		}
	}

	trends := make([]*models.TrendPoint, 0, len(daily))
	for _, point := range daily {
		trends = append(trends, point)
	}
	sort.Slice(trends, func(i, j int) bool { return trends[i].Date < trends[j].Date })

	return trends, nil
}

// RequestExport ставит экспортную задачу в очередь и возвращает ее описание
func (s *analyticsService) RequestExport(ctx context.Context, job export.Job) (*export.Job, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "analytics",
		"method":  "RequestExport",
		"format":  job.Format,
	})

	job.ID = uuid.New()
	job.CreatedAt = s.now().UTC()
	if job.Format == "" {
		job.Format = "csv"
	}
	if job.City == "" {
		job.City = s.cfg.DefaultCity
	}

	if err := s.publisher.Publish(ctx, job); err != nil {
		log.WithError(err).Error("Failed to enqueue export job")
		return nil, fmt.Errorf("service: could not enqueue export job: %w", err)
	}

	log.WithField("export_id", job.ID).Info("Export job enqueued")
	return &job, nil
}

// GetExportResult возвращает результат экспортной задачи, если он готов.
// (nil, nil) означает, что задача еще обрабатывается или результат истек.
func (s *analyticsService) GetExportResult(ctx context.Context, id uuid.UUID) (*export.Result, error) {
	result, err := s.results.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get export result: %w", err)
	}
	return result, nil
}
