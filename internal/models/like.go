package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Like — лайк пользователя на твит, не больше одного на пару (user, tweet).
type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"not null;index;uniqueIndex:idx_user_tweet"`
	TweetID   uuid.UUID `gorm:"not null;index;uniqueIndex:idx_user_tweet"`
	CreatedAt time.Time

	// Связи
	User  User  `gorm:"foreignKey:UserID"`
	Tweet Tweet `gorm:"foreignKey:TweetID"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
