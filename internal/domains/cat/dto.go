package cat

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateCatRequest is the insert payload.
// Only name and coordinates are required; everything else is optional.
type CreateCatRequest struct {
	Name             string       `json:"name" binding:"required"`
	Description      *string      `json:"description"`
	Latitude         float64      `json:"latitude"`
	Longitude        float64      `json:"longitude"`
	LocationName     *string      `json:"location_name"`
	LocationLandmark *string      `json:"location_landmark"`
	Photos           []string     `json:"photos"`
	ThumbnailURL     *string      `json:"thumbnail_url"`
	HealthStatus     HealthStatus `json:"health_status"`
	HealthNotes      *string      `json:"health_notes"`
	Gender           *Gender      `json:"gender"`
	Color            *string      `json:"color"`
	AgeEstimate      *AgeEstimate `json:"age_estimate"`
	IsNeutered       bool         `json:"is_neutered"`
}

func (r CreateCatRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, 100),
		),
		validation.Field(&r.Latitude,
			validation.Required.Error("latitude is required"),
			validation.Min(-90.0), validation.Max(90.0),
		),
		validation.Field(&r.Longitude,
			validation.Required.Error("longitude is required"),
			validation.Min(-180.0), validation.Max(180.0),
		),
		validation.Field(&r.Description,
			validation.Length(0, 1000),
		),
	)
}
