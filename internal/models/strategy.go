package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Strategy is the stored outcome of one strategy-generation run. Keywords
// and Hashtags are JSON string arrays exactly as validated from the model
// output.
type Strategy struct {
	ID        string          `gorm:"type:uuid;primaryKey"`
	Niche     string          `gorm:"not null"`
	Avatar    string          `gorm:"not null"`
	Keywords  json.RawMessage `gorm:"type:jsonb;not null"`
	Hashtags  json.RawMessage `gorm:"type:jsonb;not null"`
	OwnerID   string          `gorm:"type:uuid;not null;index"`
	CreatedAt time.Time

	Owner *User `gorm:"foreignKey:OwnerID"`
}

func (s *Strategy) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
