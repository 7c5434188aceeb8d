package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follow — направленная подписка follower -> followee.
// Уникальный индекс по паре не даёт создать дубликат даже при гонке.
type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	FollowerID uuid.UUID `gorm:"not null;index;uniqueIndex:idx_follower_followee"`
	FolloweeID uuid.UUID `gorm:"not null;index;uniqueIndex:idx_follower_followee"`
	CreatedAt  time.Time

	// Связи
	Follower User `gorm:"foreignKey:FollowerID"`
	Followee User `gorm:"foreignKey:FolloweeID"`
}

func (f *Follow) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
