package repository

import (
	"context"
	"fmt"

	"streetcats-backend/internal/domains/activitylog"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const defaultRecentLimit = 10

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) activitylog.Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) ListByCat(ctx context.Context, catID uuid.UUID) ([]activitylog.ActivityLog, error) {
	query := `
		SELECT id, cat_id, activity_type, notes, user_name, created_at
		FROM cat_activity_logs
		WHERE cat_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, catID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity logs: %w", err)
	}
	defer rows.Close()

	logs := make([]activitylog.ActivityLog, 0)
	for rows.Next() {
		var l activitylog.ActivityLog
		if err := rows.Scan(&l.ID, &l.CatID, &l.ActivityType, &l.Notes, &l.UserName, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity log: %w", err)
		}
		logs = append(logs, l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read activity logs: %w", err)
	}

	return logs, nil
}

func (r *postgresRepository) ListRecent(ctx context.Context, limit int) ([]activitylog.LogWithCat, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	query := `
		SELECT
			l.id, l.cat_id, l.activity_type, l.notes, l.user_name, l.created_at,
			c.id, c.name, c.slug, c.thumbnail_url
		FROM cat_activity_logs l
		JOIN cats c ON c.id = l.cat_id
		ORDER BY l.created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent activity: %w", err)
	}
	defer rows.Close()

	entries := make([]activitylog.LogWithCat, 0, limit)
	for rows.Next() {
		var e activitylog.LogWithCat
		err := rows.Scan(
			&e.ID, &e.CatID, &e.ActivityType, &e.Notes, &e.UserName, &e.CreatedAt,
			&e.Cat.ID, &e.Cat.Name, &e.Cat.Slug, &e.Cat.ThumbnailURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recent activity: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read recent activity: %w", err)
	}

	return entries, nil
}

func (r *postgresRepository) Insert(ctx context.Context, entity *activitylog.ActivityLog) (*activitylog.ActivityLog, error) {
	query := `
		INSERT INTO cat_activity_logs (id, cat_id, activity_type, notes, user_name, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, cat_id, activity_type, notes, user_name, created_at
	`

	var created activitylog.ActivityLog
	err := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.CatID,
		entity.ActivityType,
		entity.Notes,
		entity.UserName,
		entity.CreatedAt,
	).Scan(&created.ID, &created.CatID, &created.ActivityType, &created.Notes, &created.UserName, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create activity log: %w", err)
	}

	return &created, nil
}
