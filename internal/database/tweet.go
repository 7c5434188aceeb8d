package database

import (
	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/gorm"
)

func (d *Database) SaveTweet(tweet *models.Tweet) error {
	return d.db.Create(tweet).Error
}

func (d *Database) GetTweet(id string) (*models.Tweet, error) {
	var tweet models.Tweet
	if err := d.db.Preload("User").First(&tweet, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &tweet, nil
}

// ListTweets возвращает все твиты с авторами, новые первыми.
// Второй ключ сортировки нужен для детерминизма при одинаковом created_at.
func (d *Database) ListTweets() ([]models.Tweet, error) {
	var tweets []models.Tweet

	err := d.db.
		Order("created_at DESC, id DESC").
		Preload("User").
		Find(&tweets).Error

	if err != nil {
		return nil, err
	}

	return tweets, nil
}

// DeleteTweet удаляет твит вместе с его лайками одной транзакцией
func (d *Database) DeleteTweet(id string) error {
	return d.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&models.Like{}, "tweet_id = ?", id).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Tweet{}, "id = ?", id).Error
	})
}
