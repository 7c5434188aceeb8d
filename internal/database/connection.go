package database

import (
	"errors"
	"os"

	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func (d *Database) Connect() error {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		return errors.New("DATABASE_URL is not set")
	}

	// TranslateError превращает нарушение уникальности в gorm.ErrDuplicatedKey —
	// на этом построена идемпотентность лайков и конфликт повторной подписки
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return err
	}

	if err := Migrate(db); err != nil {
		return err
	}

	d.db = db

	return nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Tweet{}, &models.Follow{}, &models.Like{})
}
