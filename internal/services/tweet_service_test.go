package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/twitter-lite/internal/services"
)

func TestCreateTweet(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewTweetService(db)

	alice := createUser(t, db, "alice")

	tweet, err := svc.Create(alice.ID, "first!")
	require.NoError(t, err)
	assert.Equal(t, "first!", tweet.Content)
	assert.Equal(t, alice.ID, tweet.UserID)
	assert.Equal(t, "alice", tweet.User.Username)
	assert.False(t, tweet.CreatedAt.IsZero())
}

func TestGetTweetNotFound(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewTweetService(db)

	_, err := svc.Get(unknownID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteTweetByNonAuthor(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewTweetService(db)
	likes := services.NewLikeService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	tweet := createTweet(t, db, bob, "hello", time.Now())

	_, err := likes.Like(alice.ID, tweet.ID)
	require.NoError(t, err)

	err = svc.Delete(alice.ID, tweet.ID)
	assert.ErrorIs(t, err, services.ErrForbidden)

	// Твит и его лайки не тронуты
	_, err = svc.Get(tweet.ID)
	require.NoError(t, err)

	count, err := likes.LikeCount(tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestDeleteTweetCascadesLikes(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewTweetService(db)
	likes := services.NewLikeService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	tweet := createTweet(t, db, bob, "hello", time.Now())

	_, err := likes.Like(alice.ID, tweet.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Delete(bob.ID, tweet.ID))

	_, err = svc.Get(tweet.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)

	count, err := likes.LikeCount(tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestDeleteUnknownTweet(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewTweetService(db)

	alice := createUser(t, db, "alice")

	err := svc.Delete(alice.ID, unknownID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}
