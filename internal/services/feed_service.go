package services

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/models"
)

type FeedService struct {
	db *database.Database
}

func NewFeedService(db *database.Database) *FeedService {
	return &FeedService{db: db}
}

// FeedItem — твит, обогащённый автором, числом лайков
// и флагом «лайкнул ли смотрящий»
type FeedItem struct {
	Tweet         models.Tweet
	Author        models.User
	LikeCount     int64
	LikedByViewer bool
}

// BuildFeed обогащает уже загруженные твиты ровно двумя запросами:
// счётчики лайков пачкой и лайки самого viewerID пачкой.
// Никаких запросов на каждый твит, сколько бы их ни было.
func (s *FeedService) BuildFeed(viewerID uuid.UUID, tweets []models.Tweet) ([]FeedItem, error) {
	tweetIDs := make([]uuid.UUID, len(tweets))
	for i, tweet := range tweets {
		tweetIDs[i] = tweet.ID
	}

	counts, err := s.db.CountLikesByTweetIDs(tweetIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	liked, err := s.db.LikedTweetIDs(viewerID, tweetIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	items := make([]FeedItem, len(tweets))
	for i, tweet := range tweets {
		items[i] = FeedItem{
			Tweet:         tweet,
			Author:        tweet.User,
			LikeCount:     counts[tweet.ID],
			LikedByViewer: liked[tweet.ID],
		}
	}

	return items, nil
}

// HomeFeed — общая лента: все твиты всех пользователей, новые первыми.
// Лента намеренно не фильтруется по подпискам — это публичный таймлайн.
func (s *FeedService) HomeFeed(viewerID uuid.UUID) ([]FeedItem, error) {
	tweets, err := s.db.ListTweets()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	return s.BuildFeed(viewerID, tweets)
}
