package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/middleware"
	"github.com/thereayou/twitter-lite/internal/models"
	"github.com/thereayou/twitter-lite/internal/services"
)

type FollowHandler struct {
	db      *database.Database
	follows *services.FollowService
}

func NewFollowHandler(db *database.Database, follows *services.FollowService) *FollowHandler {
	return &FollowHandler{db: db, follows: follows}
}

// Follow подписывает текущего пользователя на :username
func (h *FollowHandler) Follow(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	result, err := h.follows.Follow(userID, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": result.TargetUsername})
}

// Unfollow отписывает текущего пользователя от :username
func (h *FollowHandler) Unfollow(c *gin.Context) {
	userID := c.MustGet(middleware.UserIDKey).(uuid.UUID)

	result, err := h.follows.Unfollow(userID, c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"username": result.TargetUsername})
}

// FollowingList возвращает, на кого подписан :username
func (h *FollowHandler) FollowingList(c *gin.Context) {
	user, err := h.db.FindUserByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	users, err := h.follows.ListFollowing(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": formatUserList(users)})
}

// FollowerList возвращает подписчиков :username
func (h *FollowHandler) FollowerList(c *gin.Context) {
	user, err := h.db.FindUserByUsername(c.Param("username"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}

	users, err := h.follows.ListFollowers(user.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": formatUserList(users)})
}

func formatUserList(users []models.User) []gin.H {
	result := make([]gin.H, len(users))
	for i, user := range users {
		result[i] = gin.H{
			"id":       user.ID,
			"username": user.Username,
		}
	}
	return result
}
