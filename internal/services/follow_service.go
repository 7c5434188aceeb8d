package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/gorm"
)

type FollowService struct {
	db *database.Database
}

func NewFollowService(db *database.Database) *FollowService {
	return &FollowService{db: db}
}

type FollowResult struct {
	TargetID       uuid.UUID
	TargetUsername string
}

// Follow подписывает followerID на targetUsername. Повторная подписка —
// ошибка ErrConflict, а не no-op: дубликат ловит уникальный индекс пары.
// Порядок проверок: сначала существование цели, потом self-check.
func (s *FollowService) Follow(followerID uuid.UUID, targetUsername string) (*FollowResult, error) {
	target, err := s.db.FindUserByUsername(targetUsername)
	if err != nil {
		return nil, storeError(err)
	}

	if target.ID == followerID {
		return nil, fmt.Errorf("%w: cannot follow self", ErrInvalidOperation)
	}

	follow := &models.Follow{
		FollowerID: followerID,
		FolloweeID: target.ID,
	}

	if err := s.db.SaveFollow(follow); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("%w: already following", ErrConflict)
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &FollowResult{TargetID: target.ID, TargetUsername: target.Username}, nil
}

// Unfollow снимает подписку; отсутствие подписки — ErrConflict,
// симметрично повторному Follow
func (s *FollowService) Unfollow(followerID uuid.UUID, targetUsername string) (*FollowResult, error) {
	target, err := s.db.FindUserByUsername(targetUsername)
	if err != nil {
		return nil, storeError(err)
	}

	if target.ID == followerID {
		return nil, fmt.Errorf("%w: cannot unfollow self", ErrInvalidOperation)
	}

	deleted, err := s.db.DeleteFollow(followerID, target.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if !deleted {
		return nil, fmt.Errorf("%w: not following", ErrConflict)
	}

	return &FollowResult{TargetID: target.ID, TargetUsername: target.Username}, nil
}

func (s *FollowService) FollowingCount(userID uuid.UUID) (int64, error) {
	count, err := s.db.CountFollowing(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

func (s *FollowService) FollowerCount(userID uuid.UUID) (int64, error) {
	count, err := s.db.CountFollowers(userID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

func (s *FollowService) IsFollowing(viewerID, subjectID uuid.UUID) (bool, error) {
	following, err := s.db.IsFollowing(viewerID, subjectID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return following, nil
}

// ListFollowing отдаёт подписки пользователя, свежие первыми.
// Сам пользователь обязан существовать.
func (s *FollowService) ListFollowing(userID uuid.UUID) ([]models.User, error) {
	if _, err := s.db.GetUser(userID.String()); err != nil {
		return nil, storeError(err)
	}

	users, err := s.db.ListFollowing(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return users, nil
}

func (s *FollowService) ListFollowers(userID uuid.UUID) ([]models.User, error) {
	if _, err := s.db.GetUser(userID.String()); err != nil {
		return nil, storeError(err)
	}

	users, err := s.db.ListFollowers(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return users, nil
}
