package activitylog

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

const (
	maxNotesRunes    = 500
	maxUserNameRunes = 50
	defaultUserName  = "Anonim"
)

// AddLogRequest is the payload for recording an activity.
type AddLogRequest struct {
	CatID        uuid.UUID    `json:"cat_id"`
	ActivityType ActivityType `json:"activity_type"`
	Notes        string       `json:"notes"`
	UserName     string       `json:"user_name"`
}

func (r *AddLogRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.CatID, validation.By(func(interface{}) error {
			if r.CatID == uuid.Nil {
				return ErrCatIDRequired
			}
			return nil
		})),
		validation.Field(&r.ActivityType, validation.By(func(interface{}) error {
			if !r.ActivityType.IsValid() {
				return ErrInvalidActivityType
			}
			return nil
		})),
	)
}

// ToLog sanitizes the free-text fields and builds the entity.
// Notes are trimmed, capped at 500 runes and stored as null when empty.
// The contributor name is trimmed, capped at 50 runes and falls back
// to "Anonim".
func (r *AddLogRequest) ToLog() *ActivityLog {
	var notes *string
	if trimmed := capRunes(strings.TrimSpace(r.Notes), maxNotesRunes); trimmed != "" {
		notes = &trimmed
	}

	userName := capRunes(strings.TrimSpace(r.UserName), maxUserNameRunes)
	if userName == "" {
		userName = defaultUserName
	}

	return &ActivityLog{
		ID:           uuid.New(),
		CatID:        r.CatID,
		ActivityType: r.ActivityType,
		Notes:        notes,
		UserName:     userName,
		CreatedAt:    time.Now(),
	}
}

func capRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
