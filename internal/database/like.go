package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/gorm"
)

// SaveLike вставляет лайк, если его ещё нет. Возвращает false, когда пара
// (user, tweet) уже существует — в том числе когда дубликат вставил
// конкурентный запрос и его поймал уникальный индекс
func (d *Database) SaveLike(like *models.Like) (bool, error) {
	if err := d.db.Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DeleteLike удаляет лайк; отсутствие лайка не ошибка
func (d *Database) DeleteLike(userID, tweetID uuid.UUID) error {
	return d.db.
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Delete(&models.Like{}).Error
}

func (d *Database) CountLikes(tweetID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Like{}).Where("tweet_id = ?", tweetID).Count(&count).Error
	return count, err
}

func (d *Database) IsLikedBy(userID, tweetID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.Like{}).
		Where("user_id = ? AND tweet_id = ?", userID, tweetID).
		Count(&count).Error
	return count > 0, err
}

// CountLikesByTweetIDs считает лайки сразу для пачки твитов одним запросом
func (d *Database) CountLikesByTweetIDs(tweetIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	counts := make(map[uuid.UUID]int64, len(tweetIDs))
	if len(tweetIDs) == 0 {
		return counts, nil
	}

	var rows []struct {
		TweetID uuid.UUID
		Total   int64
	}

	err := d.db.Model(&models.Like{}).
		Select("tweet_id, COUNT(*) AS total").
		Where("tweet_id IN ?", tweetIDs).
		Group("tweet_id").
		Find(&rows).Error

	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.TweetID] = row.Total
	}

	return counts, nil
}

// LikedTweetIDs возвращает подмножество tweetIDs, лайкнутое userID
func (d *Database) LikedTweetIDs(userID uuid.UUID, tweetIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	liked := make(map[uuid.UUID]bool, len(tweetIDs))
	if len(tweetIDs) == 0 {
		return liked, nil
	}

	var ids []uuid.UUID

	err := d.db.Model(&models.Like{}).
		Where("user_id = ? AND tweet_id IN ?", userID, tweetIDs).
		Pluck("tweet_id", &ids).Error

	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		liked[id] = true
	}

	return liked, nil
}
