package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/handlers/dto"
	"github.com/thereayou/twitter-lite/internal/middleware"
	"github.com/thereayou/twitter-lite/internal/services"
)

type LikeHandler struct {
	likes *services.LikeService
}

func NewLikeHandler(likes *services.LikeService) *LikeHandler {
	return &LikeHandler{likes: likes}
}

// Like ставит лайк; повторный запрос (double-click) безопасен
func (h *LikeHandler) Like(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	tweetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tweet id"})
		return
	}

	result, err := h.likes.Like(userID, tweetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{
		TweetID:    result.TweetID,
		LikedCount: result.LikedCount,
		IsLiked:    result.Liked,
	})
}

// Unlike снимает лайк; снятие несуществующего лайка тоже успех
func (h *LikeHandler) Unlike(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	tweetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tweet id"})
		return
	}

	result, err := h.likes.Unlike(userID, tweetID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LikeResponse{
		TweetID:    result.TweetID,
		LikedCount: result.LikedCount,
		IsLiked:    result.Liked,
	})
}
