package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"streetcats-backend/internal/domains/cat"
	"streetcats-backend/internal/shared/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const catColumns = `
	id, name, slug, description, latitude, longitude,
	location_name, location_landmark, photos, thumbnail_url,
	health_status, health_notes, gender, color, age_estimate,
	is_neutered, is_active, created_at, updated_at
`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) cat.Repository {
	return &postgresRepository{pool: pool}
}

func scanCat(row pgx.Row) (*cat.Cat, error) {
	c := &cat.Cat{}
	err := row.Scan(
		&c.ID,
		&c.Name,
		&c.Slug,
		&c.Description,
		&c.Latitude,
		&c.Longitude,
		&c.LocationName,
		&c.LocationLandmark,
		&c.Photos,
		&c.ThumbnailURL,
		&c.HealthStatus,
		&c.HealthNotes,
		&c.Gender,
		&c.Color,
		&c.AgeEstimate,
		&c.IsNeutered,
		&c.IsActive,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *postgresRepository) ListActive(ctx context.Context) ([]cat.Cat, error) {
	query := `
		SELECT ` + catColumns + `
		FROM cats
		WHERE is_active = true
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list cats: %w", err)
	}
	defer rows.Close()

	cats := make([]cat.Cat, 0)
	for rows.Next() {
		c, err := scanCat(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan cat: %w", err)
		}
		cats = append(cats, *c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read cats: %w", err)
	}

	return cats, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*cat.Cat, error) {
	query := `
		SELECT ` + catColumns + `
		FROM cats
		WHERE id = $1
	`

	c, err := scanCat(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cat.ErrCatNotFound
		}
		return nil, fmt.Errorf("failed to get cat: %w", err)
	}
	return c, nil
}

func (r *postgresRepository) Insert(ctx context.Context, entity *cat.Cat) (*cat.Cat, error) {
	query := `
		INSERT INTO cats (
			id, name, slug, description, latitude, longitude,
			location_name, location_landmark, photos, thumbnail_url,
			health_status, health_notes, gender, color, age_estimate,
			is_neutered, is_active, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			$11, $12, $13, $14, $15, $16, $17, $18, $19)
		RETURNING ` + catColumns

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Slug,
		entity.Description,
		entity.Latitude,
		entity.Longitude,
		entity.LocationName,
		entity.LocationLandmark,
		entity.Photos,
		entity.ThumbnailURL,
		entity.HealthStatus,
		entity.HealthNotes,
		entity.Gender,
		entity.Color,
		entity.AgeEstimate,
		entity.IsNeutered,
		entity.IsActive,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanCat(row)
	if err != nil {
		return nil, fmt.Errorf("failed to create cat: %w", err)
	}
	return created, nil
}

// Update builds the SET clause from the non-nil change fields.
// updated_at is always part of the change set.
func (r *postgresRepository) Update(ctx context.Context, id uuid.UUID, changes *cat.Changes) (*cat.Cat, error) {
	set := []string{}
	args := []interface{}{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if changes.Name != nil {
		name := strings.TrimSpace(*changes.Name)
		set = append(set, "name = "+arg(name))
		set = append(set, "slug = "+arg(utils.GenerateSlug(name)))
	}
	if changes.Description != nil {
		set = append(set, "description = "+arg(*changes.Description))
	}
	if changes.Latitude != nil {
		set = append(set, "latitude = "+arg(*changes.Latitude))
	}
	if changes.Longitude != nil {
		set = append(set, "longitude = "+arg(*changes.Longitude))
	}
	if changes.LocationName != nil {
		set = append(set, "location_name = "+arg(*changes.LocationName))
	}
	if changes.LocationLandmark != nil {
		set = append(set, "location_landmark = "+arg(*changes.LocationLandmark))
	}
	if changes.Photos != nil {
		set = append(set, "photos = "+arg(changes.Photos))
	}
	if changes.ThumbnailURL != nil {
		set = append(set, "thumbnail_url = "+arg(*changes.ThumbnailURL))
	}
	if changes.HealthStatus != nil {
		set = append(set, "health_status = "+arg(*changes.HealthStatus))
	}
	if changes.HealthNotes != nil {
		set = append(set, "health_notes = "+arg(*changes.HealthNotes))
	}
	if changes.Gender != nil {
		set = append(set, "gender = "+arg(*changes.Gender))
	}
	if changes.Color != nil {
		set = append(set, "color = "+arg(*changes.Color))
	}
	if changes.AgeEstimate != nil {
		set = append(set, "age_estimate = "+arg(*changes.AgeEstimate))
	}
	if changes.IsNeutered != nil {
		set = append(set, "is_neutered = "+arg(*changes.IsNeutered))
	}

	set = append(set, "updated_at = "+arg(changes.UpdatedAt))

	query := `
		UPDATE cats
		SET ` + strings.Join(set, ", ") + `
		WHERE id = ` + arg(id) + `
		RETURNING ` + catColumns

	updated, err := scanCat(r.pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, cat.ErrCatNotFound
		}
		return nil, fmt.Errorf("failed to update cat: %w", err)
	}
	return updated, nil
}

func (r *postgresRepository) SoftDelete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE cats
		SET is_active = false, updated_at = now()
		WHERE id = $1
	`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete cat: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return cat.ErrCatNotFound
	}
	return nil
}
