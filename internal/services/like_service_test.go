package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thereayou/twitter-lite/internal/services"
)

func TestLikeIsIdempotent(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewLikeService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	tweet := createTweet(t, db, bob, "hello", time.Now())

	for i := 0; i < 3; i++ {
		result, err := svc.Like(alice.ID, tweet.ID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, result.LikedCount)
		assert.True(t, result.Liked)
		assert.Equal(t, tweet.ID, result.TweetID)
	}

	liked, err := svc.IsLikedBy(alice.ID, tweet.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestUnlikeIsIdempotent(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewLikeService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	tweet := createTweet(t, db, bob, "hello", time.Now())

	// Снятие никогда не ставившегося лайка — не ошибка
	result, err := svc.Unlike(alice.ID, tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.LikedCount)
	assert.False(t, result.Liked)
}

func TestLikeUnlikeRoundTrip(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewLikeService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	tweet := createTweet(t, db, bob, "hello", time.Now())

	result, err := svc.Like(alice.ID, tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.LikedCount)
	assert.True(t, result.Liked)

	result, err = svc.Like(alice.ID, tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.LikedCount)

	result, err = svc.Unlike(alice.ID, tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, result.LikedCount)
	assert.False(t, result.Liked)

	liked, err := svc.IsLikedBy(alice.ID, tweet.ID)
	require.NoError(t, err)
	assert.False(t, liked)
}

func TestLikeCountsPerUser(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewLikeService(db)

	alice := createUser(t, db, "alice")
	bob := createUser(t, db, "bob")
	carol := createUser(t, db, "carol")
	tweet := createTweet(t, db, bob, "hello", time.Now())

	_, err := svc.Like(alice.ID, tweet.ID)
	require.NoError(t, err)
	result, err := svc.Like(carol.ID, tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 2, result.LikedCount)

	// Unlike одного не трогает лайк другого
	result, err = svc.Unlike(alice.ID, tweet.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, result.LikedCount)

	liked, err := svc.IsLikedBy(carol.ID, tweet.ID)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestLikeUnknownTweet(t *testing.T) {
	db, _ := newTestDB(t)
	svc := services.NewLikeService(db)

	alice := createUser(t, db, "alice")

	_, err := svc.Like(alice.ID, unknownID())
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = svc.Unlike(alice.ID, unknownID())
	assert.ErrorIs(t, err, services.ErrNotFound)
}
