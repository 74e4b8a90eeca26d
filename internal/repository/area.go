package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/lumina-safety/safety_signal_system/internal/models"
	"github.com/lumina-safety/safety_signal_system/internal/service"
)

// Срок жизни кеша списка агрегатов города
const areasCacheTTL = 5 * time.Minute

type AreaRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewAreaRepository(db *pgxpool.Pool, redisClient *redis.Client) service.AreaRepository {
	return &AreaRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Upsert заменяет агрегат ячейки целиком (замена, не слияние).
// При гонке записей в одну ячейку побеждает последняя: оценка всегда
// выводима заново из исходных сигналов.
func (r *AreaRepository) Upsert(ctx context.Context, area *models.AreaScore) error {
	scores, err := json.Marshal(area.SafetyScores)
	if err != nil {
		return fmt.Errorf("failed to marshal safety scores: %w", err)
	}

	query := `
		INSERT INTO area_scores (id, area_name, location, radius_meters, safety_scores, confidence_level, incident_count, last_updated, city)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO UPDATE SET
			area_name = EXCLUDED.area_name,
			location = EXCLUDED.location,
			radius_meters = EXCLUDED.radius_meters,
			safety_scores = EXCLUDED.safety_scores,
			confidence_level = EXCLUDED.confidence_level,
			incident_count = EXCLUDED.incident_count,
			last_updated = EXCLUDED.last_updated,
			city = EXCLUDED.city;
	`
	_, err = r.db.Exec(ctx, query,
		area.ID,
		area.AreaName,
		area.Location.Lng,
		area.Location.Lat,
		area.RadiusMeters,
		scores,
		area.ConfidenceLevel,
		area.IncidentCount,
		area.LastUpdated,
		area.City,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert area score: %w", err)
	}
	return nil
}

// ListByCity возвращает агрегаты районов города
func (r *AreaRepository) ListByCity(ctx context.Context, city string, limit int) ([]*models.AreaScore, error) {
	query := `
		SELECT
			id,
			area_name,
			ST_Y(location::geometry) as latitude,
			ST_X(location::geometry) as longitude,
			radius_meters,
			safety_scores,
			confidence_level,
			incident_count,
			last_updated,
			city
		FROM area_scores
		WHERE city = $1
		ORDER BY last_updated DESC
		LIMIT $2;
	`
	rows, err := r.db.Query(ctx, query, city, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list area scores: %w", err)
	}
	defer rows.Close()

	areas := make([]*models.AreaScore, 0)
	for rows.Next() {
		area := &models.AreaScore{}
		var scores []byte
		err := rows.Scan(
			&area.ID,
			&area.AreaName,
			&area.Location.Lat,
			&area.Location.Lng,
			&area.RadiusMeters,
			&scores,
			&area.ConfidenceLevel,
			&area.IncidentCount,
			&area.LastUpdated,
			&area.City,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area score row: %w", err)
		}
		if err := json.Unmarshal(scores, &area.SafetyScores); err != nil {
			return nil, fmt.Errorf("failed to unmarshal safety scores: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error area scores iteration: %w", err)
	}
	return areas, nil
}

// CountByCity возвращает количество отслеживаемых районов города
func (r *AreaRepository) CountByCity(ctx context.Context, city string) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM area_scores
		WHERE city = $1;
	`
	var count int
	if err := r.db.QueryRow(ctx, query, city).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count area scores: %w", err)
	}
	return count, nil
}

func areasCacheKey(city string) string {
	return fmt.Sprintf("area_scores:%s", city)
}

// GetAreasFromCache пытается получить список агрегатов города из Redis
func (r *AreaRepository) GetAreasFromCache(ctx context.Context, city string) ([]*models.AreaScore, error) {
	val, err := r.redisClient.Get(ctx, areasCacheKey(city)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get area scores from cache: %w", err)
	}

	areas := make([]*models.AreaScore, 0)
	if err := json.Unmarshal(val, &areas); err != nil {
		return nil, fmt.Errorf("failed to unmarshal area scores from cache: %w", err)
	}
	return areas, nil
}

// SetAreasCache сохраняет список агрегатов города в Redis
func (r *AreaRepository) SetAreasCache(ctx context.Context, city string, areas []*models.AreaScore) error {
	val, err := json.Marshal(areas)
	if err != nil {
		return fmt.Errorf("failed to marshal area scores for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, areasCacheKey(city), val, areasCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set area scores in cache: %w", err)
	}
	return nil
}

// InvalidateAreasCache удаляет кеш агрегатов города
func (r *AreaRepository) InvalidateAreasCache(ctx context.Context, city string) error {
	if err := r.redisClient.Del(ctx, areasCacheKey(city)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate area scores cache: %w", err)
	}
	return nil
}
