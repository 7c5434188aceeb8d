package dto

import (
	"time"

	"github.com/google/uuid"
)

// CreateTweetRequest — уровень формы: длина контента проверяется здесь,
// ядро получает уже валидный текст
type CreateTweetRequest struct {
	Content string `json:"content" binding:"required,min=1,max=140"`
}

// TweetResponse — твит в ленте и в детальном просмотре
type TweetResponse struct {
	ID         uuid.UUID `json:"id"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
	User       UserInfo  `json:"user"`
	LikedCount int64     `json:"liked_count"`
	IsLiked    bool      `json:"is_liked"`
}

type UserInfo struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// LikeResponse — машинное тело ответа Like/Unlike для асинхронного UI
type LikeResponse struct {
	TweetID    uuid.UUID `json:"tweet_id"`
	LikedCount int64     `json:"liked_count"`
	IsLiked    bool      `json:"is_liked"`
}
