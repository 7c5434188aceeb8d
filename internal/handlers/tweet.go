package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/handlers/dto"
	"github.com/thereayou/twitter-lite/internal/middleware"
	"github.com/thereayou/twitter-lite/internal/models"
	"github.com/thereayou/twitter-lite/internal/services"
)

type TweetHandler struct {
	tweets *services.TweetService
	feed   *services.FeedService
}

func NewTweetHandler(tweets *services.TweetService, feed *services.FeedService) *TweetHandler {
	return &TweetHandler{tweets: tweets, feed: feed}
}

// Home возвращает общую ленту для текущего пользователя
func (h *TweetHandler) Home(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	items, err := h.feed.HomeFeed(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	result := make([]dto.TweetResponse, len(items))
	for i, item := range items {
		result[i] = formatFeedItem(item)
	}

	c.JSON(http.StatusOK, gin.H{"tweets": result})
}

// CreateTweet создает твит от имени текущего пользователя
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	var req dto.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tweet, err := h.tweets.Create(userID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.TweetResponse{
		ID:        tweet.ID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
		User: dto.UserInfo{
			ID:       tweet.User.ID,
			Username: tweet.User.Username,
		},
	})
}

// GetTweet возвращает один твит с лайками и флагом для смотрящего
func (h *TweetHandler) GetTweet(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	tweetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tweet id"})
		return
	}

	tweet, err := h.tweets.Get(tweetID)
	if err != nil {
		respondError(c, err)
		return
	}

	// Детальный просмотр — та же лента из одного твита
	items, err := h.feed.BuildFeed(userID, []models.Tweet{*tweet})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, formatFeedItem(items[0]))
}

// DeleteTweet удаляет твит; разрешено только автору
func (h *TweetHandler) DeleteTweet(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	tweetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tweet id"})
		return
	}

	if err := h.tweets.Delete(userID, tweetID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "tweet deleted successfully"})
}

// formatFeedItem форматирует элемент ленты для ответа
func formatFeedItem(item services.FeedItem) dto.TweetResponse {
	return dto.TweetResponse{
		ID:        item.Tweet.ID,
		Content:   item.Tweet.Content,
		CreatedAt: item.Tweet.CreatedAt,
		User: dto.UserInfo{
			ID:       item.Author.ID,
			Username: item.Author.Username,
		},
		LikedCount: item.LikeCount,
		IsLiked:    item.LikedByViewer,
	}
}
