package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Analysis is the stored outcome of one lead-analysis run. ResultData holds
// the validated leads payload plus the computed summary as returned to the
// caller; rows are never mutated after creation.
type Analysis struct {
	ID         string          `gorm:"type:uuid;primaryKey"`
	PostURL    string          `gorm:"not null"`
	ResultData json.RawMessage `gorm:"type:jsonb;not null"`
	OwnerID    string          `gorm:"type:uuid;not null;index"`
	CreatedAt  time.Time

	Owner *User `gorm:"foreignKey:OwnerID"`
}

func (a *Analysis) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
