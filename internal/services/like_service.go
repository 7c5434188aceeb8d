package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/models"
)

type LikeService struct {
	db *database.Database
}

func NewLikeService(db *database.Database) *LikeService {
	return &LikeService{db: db}
}

// LikeResult — состояние лайков твита после операции,
// его же отдаёт транспорт для асинхронного обновления UI
type LikeResult struct {
	TweetID    uuid.UUID
	LikedCount int64
	Liked      bool
}

// Like идемпотентен: повторный лайк (в том числе проигравший гонку
// конкурентной вставке) — успех, счётчик отражает текущее состояние
func (s *LikeService) Like(userID, tweetID uuid.UUID) (*LikeResult, error) {
	if _, err := s.db.GetTweet(tweetID.String()); err != nil {
		return nil, storeError(err)
	}

	like := &models.Like{
		UserID:  userID,
		TweetID: tweetID,
	}

	if _, err := s.db.SaveLike(like); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	count, err := s.db.CountLikes(tweetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &LikeResult{TweetID: tweetID, LikedCount: count, Liked: true}, nil
}

// Unlike тоже идемпотентен: снятие несуществующего лайка — no-op
func (s *LikeService) Unlike(userID, tweetID uuid.UUID) (*LikeResult, error) {
	if _, err := s.db.GetTweet(tweetID.String()); err != nil {
		return nil, storeError(err)
	}

	if err := s.db.DeleteLike(userID, tweetID); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	count, err := s.db.CountLikes(tweetID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return &LikeResult{TweetID: tweetID, LikedCount: count, Liked: false}, nil
}

func (s *LikeService) LikeCount(tweetID uuid.UUID) (int64, error) {
	count, err := s.db.CountLikes(tweetID)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return count, nil
}

func (s *LikeService) IsLikedBy(userID, tweetID uuid.UUID) (bool, error) {
	liked, err := s.db.IsLikedBy(userID, tweetID)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return liked, nil
}
