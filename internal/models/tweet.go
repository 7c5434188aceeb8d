package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Tweet struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"not null;index"`
	Content   string    `gorm:"not null"`
	CreatedAt time.Time

	// Связи
	User User `gorm:"foreignKey:UserID"`
}

func (t *Tweet) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
