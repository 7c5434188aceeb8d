package services_test

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/models"
	"gorm.io/gorm"
)

// newTestDB поднимает изолированную in-memory sqlite базу с теми же
// уникальными индексами, что и в postgres-схеме
func newTestDB(t *testing.T) (*database.Database, *gorm.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))

	return database.NewDatabase(db), db
}

func createUser(t *testing.T, d *database.Database, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@test.com",
		PasswordHash: "hash",
	}
	require.NoError(t, d.SaveUser(user))

	return user
}

func createTweet(t *testing.T, d *database.Database, author *models.User, content string, createdAt time.Time) *models.Tweet {
	t.Helper()

	tweet := &models.Tweet{
		UserID:    author.ID,
		Content:   content,
		CreatedAt: createdAt,
	}
	require.NoError(t, d.SaveTweet(tweet))

	return tweet
}

func createFollow(t *testing.T, d *database.Database, follower, followee *models.User, createdAt time.Time) {
	t.Helper()

	require.NoError(t, d.SaveFollow(&models.Follow{
		FollowerID: follower.ID,
		FolloweeID: followee.ID,
		CreatedAt:  createdAt,
	}))
}

func unknownID() uuid.UUID {
	return uuid.New()
}
