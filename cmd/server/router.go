package server

import (
	"github.com/gin-gonic/gin"
	"github.com/thereayou/twitter-lite/internal/handlers"
)

func APIEndpoints(
	r *gin.Engine,
	authMW gin.HandlerFunc,
	authH *handlers.AuthHandler,
	tweetH *handlers.TweetHandler,
	likeH *handlers.LikeHandler,
	followH *handlers.FollowHandler,
	userH *handlers.UserHandler,
) {
	// Auth endpoints
	auth := r.Group("/auth")
	{
		auth.POST("/register", authH.Register)
		auth.POST("/login", authH.Login)
		auth.POST("/logout", authH.Logout)
	}

	// API endpoints
	api := r.Group("/api/v1")
	api.Use(authMW)
	{
		api.GET("/tweets", tweetH.Home)
		api.POST("/tweets", tweetH.CreateTweet)
		api.GET("/tweets/:id", tweetH.GetTweet)
		api.DELETE("/tweets/:id", tweetH.DeleteTweet)
		api.POST("/tweets/:id/like", likeH.Like)
		api.POST("/tweets/:id/unlike", likeH.Unlike)

		api.GET("/users/:username", userH.GetProfile)
		api.POST("/users/:username/follow", followH.Follow)
		api.POST("/users/:username/unfollow", followH.Unfollow)
		api.GET("/users/:username/following", followH.FollowingList)
		api.GET("/users/:username/followers", followH.FollowerList)
	}
}
