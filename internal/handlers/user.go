package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/middleware"
	"github.com/thereayou/twitter-lite/internal/services"
)

type UserHandler struct {
	db      *database.Database
	follows *services.FollowService
}

func NewUserHandler(db *database.Database, follows *services.FollowService) *UserHandler {
	return &UserHandler{db: db, follows: follows}
}

// GetProfile возвращает профиль :username со счётчиками подписок
// и флагом, подписан ли на него смотрящий
func (h *UserHandler) GetProfile(c *gin.Context) {
	viewerID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	user, err := h.db.FindUserByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	followingCount, err := h.follows.FollowingCount(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	followerCount, err := h.follows.FollowerCount(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	isFollowing, err := h.follows.IsFollowing(viewerID, user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":              user.ID,
		"username":        user.Username,
		"created_at":      user.CreatedAt,
		"following_count": followingCount,
		"follower_count":  followerCount,
		"is_following":    isFollowing,
	})
}
