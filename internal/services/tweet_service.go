package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/models"
)

type TweetService struct {
	db *database.Database
}

func NewTweetService(db *database.Database) *TweetService {
	return &TweetService{db: db}
}

// Create сохраняет твит за authorID. Контент сюда приходит уже
// провалидированным на уровне формы (1–140 символов).
func (s *TweetService) Create(authorID uuid.UUID, content string) (*models.Tweet, error) {
	tweet := &models.Tweet{
		UserID:  authorID,
		Content: content,
	}

	if err := s.db.SaveTweet(tweet); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	// Перечитываем, чтобы вернуть твит вместе с автором
	saved, err := s.db.GetTweet(tweet.ID.String())
	if err != nil {
		return nil, storeError(err)
	}

	return saved, nil
}

func (s *TweetService) Get(tweetID uuid.UUID) (*models.Tweet, error) {
	tweet, err := s.db.GetTweet(tweetID.String())
	if err != nil {
		return nil, storeError(err)
	}
	return tweet, nil
}

// Delete удаляет твит только по запросу автора,
// лайки твита уходят той же транзакцией
func (s *TweetService) Delete(requesterID, tweetID uuid.UUID) error {
	tweet, err := s.db.GetTweet(tweetID.String())
	if err != nil {
		return storeError(err)
	}

	if tweet.UserID != requesterID {
		return fmt.Errorf("%w: only the author can delete a tweet", ErrForbidden)
	}

	if err := s.db.DeleteTweet(tweetID.String()); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return nil
}
