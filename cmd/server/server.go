package server

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/thereayou/twitter-lite/internal/database"
	"github.com/thereayou/twitter-lite/internal/handlers"
	"github.com/thereayou/twitter-lite/internal/middleware"
	"github.com/thereayou/twitter-lite/internal/services"
	"github.com/thereayou/twitter-lite/pkg/auth"
)

type Server struct {
	Router     *gin.Engine
	DB         *database.Database
	Redis      *redis.Client
	JWTManager *auth.JWTManager
}

func NewServer() *Server {
	if err := godotenv.Load(".env.local"); err != nil {
		if err := godotenv.Load(); err != nil {
			log.Println(".env not found, using environment variables")
		}
	}

	dbConn := &database.Database{}
	if err := dbConn.Connect(); err != nil {
		log.Fatalf("Postgres connect failed: %v", err)
	}

	redisOpts, err := redis.ParseURL(os.Getenv("REDIS_URL"))
	if err != nil {
		log.Fatalf("invalid REDIS_URL: %v", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("Redis connect failed: %v", err)
	}

	jwtMgr := auth.NewJWTManager(
		os.Getenv("JWT_SECRET"),
		24*time.Hour,
	)

	followSvc := services.NewFollowService(dbConn)
	likeSvc := services.NewLikeService(dbConn)
	tweetSvc := services.NewTweetService(dbConn)
	feedSvc := services.NewFeedService(dbConn)

	authH := handlers.NewAuthHandler(dbConn, jwtMgr, rdb)
	tweetH := handlers.NewTweetHandler(tweetSvc, feedSvc)
	likeH := handlers.NewLikeHandler(likeSvc)
	followH := handlers.NewFollowHandler(dbConn, followSvc)
	userH := handlers.NewUserHandler(dbConn, followSvc)

	router := gin.Default()
	authMW := middleware.AuthMiddleware(jwtMgr, rdb)
	APIEndpoints(router, authMW, authH, tweetH, likeH, followH, userH)

	return &Server{
		Router:     router,
		DB:         dbConn,
		Redis:      rdb,
		JWTManager: jwtMgr,
	}
}

func (s *Server) Run() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server starting on port %s", port)
	if err := s.Router.Run(":" + port); err != nil {
		log.Fatalf("Server run error: %v", err)
	}
}
