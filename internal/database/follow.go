package database

import (
	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/models"
)

// SaveFollow вставляет подписку; при дубликате пары возвращает
// gorm.ErrDuplicatedKey — уникальный индекс решает исход гонки
func (d *Database) SaveFollow(follow *models.Follow) error {
	return d.db.Create(follow).Error
}

// DeleteFollow удаляет подписку, сообщая, была ли она вообще
func (d *Database) DeleteFollow(followerID, followeeID uuid.UUID) (bool, error) {
	result := d.db.
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Delete(&models.Follow{})

	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (d *Database) CountFollowing(userID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&count).Error
	return count, err
}

func (d *Database) CountFollowers(userID uuid.UUID) (int64, error) {
	var count int64
	err := d.db.Model(&models.Follow{}).Where("followee_id = ?", userID).Count(&count).Error
	return count, err
}

func (d *Database) IsFollowing(followerID, followeeID uuid.UUID) (bool, error) {
	var count int64
	err := d.db.Model(&models.Follow{}).
		Where("follower_id = ? AND followee_id = ?", followerID, followeeID).
		Count(&count).Error
	return count > 0, err
}

// ListFollowing возвращает пользователей, на которых подписан userID,
// свежие подписки первыми
func (d *Database) ListFollowing(userID uuid.UUID) ([]models.User, error) {
	var users []models.User

	err := d.db.
		Joins("JOIN follows ON follows.followee_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}

// ListFollowers возвращает подписчиков userID, свежие подписки первыми
func (d *Database) ListFollowers(userID uuid.UUID) ([]models.User, error) {
	var users []models.User

	err := d.db.
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followee_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error

	if err != nil {
		return nil, err
	}

	return users, nil
}
