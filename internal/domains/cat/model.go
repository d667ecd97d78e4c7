package cat

import (
	"strings"
	"time"

	"streetcats-backend/internal/shared/utils"

	"github.com/google/uuid"
)

// ========================================
// ENUMS
// ========================================

// HealthStatus uses the Indonesian values the mobile client renders.
type HealthStatus string

const (
	HealthSehat  HealthStatus = "sehat"  // healthy
	HealthSakit  HealthStatus = "sakit"  // sick
	HealthKritis HealthStatus = "kritis" // critical
)

func (s HealthStatus) IsValid() bool {
	switch s {
	case HealthSehat, HealthSakit, HealthKritis:
		return true
	}
	return false
}

type Gender string

const (
	GenderJantan  Gender = "jantan"
	GenderBetina  Gender = "betina"
	GenderUnknown Gender = "unknown"
)

func (g Gender) IsValid() bool {
	switch g {
	case GenderJantan, GenderBetina, GenderUnknown:
		return true
	}
	return false
}

type AgeEstimate string

const (
	AgeKitten AgeEstimate = "kitten"
	AgeDewasa AgeEstimate = "dewasa"
	AgeSenior AgeEstimate = "senior"
)

func (a AgeEstimate) IsValid() bool {
	switch a {
	case AgeKitten, AgeDewasa, AgeSenior:
		return true
	}
	return false
}

// FilterStatus selects the derived view over the cat list.
type FilterStatus string

const (
	FilterSemua          FilterStatus = "semua"
	FilterSehat          FilterStatus = "sehat"
	FilterSakit          FilterStatus = "sakit"
	FilterButuhPerhatian FilterStatus = "butuh-perhatian" // maps to kritis
)

func (f FilterStatus) IsValid() bool {
	switch f {
	case FilterSemua, FilterSehat, FilterSakit, FilterButuhPerhatian:
		return true
	}
	return false
}

// ========================================
// ENTITY
// ========================================

// Cat is one tracked animal.
// is_active = false marks logical deletion; such records never appear in
// default listings and are never physically removed by this service.
type Cat struct {
	ID               uuid.UUID    `json:"id" db:"id"`
	Name             string       `json:"name" db:"name"`
	Slug             string       `json:"slug" db:"slug"`
	Description      *string      `json:"description" db:"description"`
	Latitude         float64      `json:"latitude" db:"latitude"`
	Longitude        float64      `json:"longitude" db:"longitude"`
	LocationName     *string      `json:"location_name" db:"location_name"`
	LocationLandmark *string      `json:"location_landmark" db:"location_landmark"`
	Photos           []string     `json:"photos" db:"photos"`
	ThumbnailURL     *string      `json:"thumbnail_url" db:"thumbnail_url"`
	HealthStatus     HealthStatus `json:"health_status" db:"health_status"`
	HealthNotes      *string      `json:"health_notes" db:"health_notes"`
	Gender           *Gender      `json:"gender" db:"gender"`
	Color            *string      `json:"color" db:"color"`
	AgeEstimate      *AgeEstimate `json:"age_estimate" db:"age_estimate"`
	IsNeutered       bool         `json:"is_neutered" db:"is_neutered"`
	IsActive         bool         `json:"is_active" db:"is_active"`
	CreatedAt        time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time    `json:"updated_at" db:"updated_at"`
}

// NewCat builds an entity from a create request with the record defaults:
// health_status = sehat, is_active = true.
func NewCat(req *CreateCatRequest) (*Cat, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrNameRequired
	}

	health := HealthSehat
	if req.HealthStatus != "" {
		health = req.HealthStatus
		if !health.IsValid() {
			return nil, ErrInvalidHealthStatus
		}
	}

	if req.Gender != nil && !req.Gender.IsValid() {
		return nil, ErrInvalidGender
	}
	if req.AgeEstimate != nil && !req.AgeEstimate.IsValid() {
		return nil, ErrInvalidAgeEstimate
	}

	now := time.Now()
	return &Cat{
		ID:               uuid.New(),
		Name:             name,
		Slug:             utils.GenerateSlug(name),
		Description:      req.Description,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		LocationName:     req.LocationName,
		LocationLandmark: req.LocationLandmark,
		Photos:           req.Photos,
		ThumbnailURL:     req.ThumbnailURL,
		HealthStatus:     health,
		HealthNotes:      req.HealthNotes,
		Gender:           req.Gender,
		Color:            req.Color,
		AgeEstimate:      req.AgeEstimate,
		IsNeutered:       req.IsNeutered,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// Changes carries a partial update. Nil fields are left untouched.
// UpdatedAt is always set by the caller; every mutation refreshes it.
type Changes struct {
	Name             *string       `json:"name,omitempty"`
	Description      *string       `json:"description,omitempty"`
	Latitude         *float64      `json:"latitude,omitempty"`
	Longitude        *float64      `json:"longitude,omitempty"`
	LocationName     *string       `json:"location_name,omitempty"`
	LocationLandmark *string       `json:"location_landmark,omitempty"`
	Photos           []string      `json:"photos,omitempty"`
	ThumbnailURL     *string       `json:"thumbnail_url,omitempty"`
	HealthStatus     *HealthStatus `json:"health_status,omitempty"`
	HealthNotes      *string       `json:"health_notes,omitempty"`
	Gender           *Gender       `json:"gender,omitempty"`
	Color            *string       `json:"color,omitempty"`
	AgeEstimate      *AgeEstimate  `json:"age_estimate,omitempty"`
	IsNeutered       *bool         `json:"is_neutered,omitempty"`

	UpdatedAt time.Time `json:"-"`
}

// Validate rejects enum values outside their domain.
func (ch *Changes) Validate() error {
	if ch.HealthStatus != nil && !ch.HealthStatus.IsValid() {
		return ErrInvalidHealthStatus
	}
	if ch.Gender != nil && !ch.Gender.IsValid() {
		return ErrInvalidGender
	}
	if ch.AgeEstimate != nil && !ch.AgeEstimate.IsValid() {
		return ErrInvalidAgeEstimate
	}
	if ch.Name != nil && strings.TrimSpace(*ch.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

// ApplyTo merges the changes into a copy of the entity.
// Used by the in-memory repository and to refresh the local store.
func (ch *Changes) ApplyTo(c Cat) Cat {
	if ch.Name != nil {
		c.Name = strings.TrimSpace(*ch.Name)
		c.Slug = utils.GenerateSlug(c.Name)
	}
	if ch.Description != nil {
		c.Description = ch.Description
	}
	if ch.Latitude != nil {
		c.Latitude = *ch.Latitude
	}
	if ch.Longitude != nil {
		c.Longitude = *ch.Longitude
	}
	if ch.LocationName != nil {
		c.LocationName = ch.LocationName
	}
	if ch.LocationLandmark != nil {
		c.LocationLandmark = ch.LocationLandmark
	}
	if ch.Photos != nil {
		c.Photos = ch.Photos
	}
	if ch.ThumbnailURL != nil {
		c.ThumbnailURL = ch.ThumbnailURL
	}
	if ch.HealthStatus != nil {
		c.HealthStatus = *ch.HealthStatus
	}
	if ch.HealthNotes != nil {
		c.HealthNotes = ch.HealthNotes
	}
	if ch.Gender != nil {
		c.Gender = ch.Gender
	}
	if ch.Color != nil {
		c.Color = ch.Color
	}
	if ch.AgeEstimate != nil {
		c.AgeEstimate = ch.AgeEstimate
	}
	if ch.IsNeutered != nil {
		c.IsNeutered = *ch.IsNeutered
	}
	c.UpdatedAt = ch.UpdatedAt
	return c
}
