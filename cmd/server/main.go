package main

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/agorahq/agora/internal/config"
	"github.com/agorahq/agora/internal/handler"
	"github.com/agorahq/agora/internal/middleware"
	"github.com/agorahq/agora/internal/model"
	"github.com/agorahq/agora/internal/repository"
	"github.com/agorahq/agora/internal/service"
	"github.com/agorahq/agora/pkg/database"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	if cfg.AppEnv == "production" {
		logrus.SetFormatter(&logrus.JSONFormatter{})
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := migrate(db); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logrus.Fatalf("invalid REDIS_URL: %v", err)
		}
		rdb = redis.NewClient(opts)
	}

	repos := repository.NewManager(db)
	forumService := service.NewForumService(repos)

	ideaHandler := handler.NewIdeaHandler(forumService)
	authorHandler := handler.NewAuthorHandler(forumService)
	taxonomyHandler := handler.NewTaxonomyHandler(forumService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(cors.New(cors.Config{
		AllowOrigins: strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	writeLimit := middleware.WriteRateLimit(rdb, "write", cfg.RateLimitWrite)

	router.GET("/ideas", ideaHandler.GetIdeas)
	router.GET("/ideas/:id", ideaHandler.GetIdea)
	router.POST("/ideas", writeLimit, ideaHandler.CreateIdea)
	router.PUT("/ideas/:id", writeLimit, ideaHandler.UpdateIdea)
	router.DELETE("/ideas/:id", writeLimit, ideaHandler.DeleteIdea)

	router.GET("/authors", authorHandler.GetAuthors)
	router.GET("/authors/:id", authorHandler.GetAuthor)
	router.POST("/authors", writeLimit, authorHandler.CreateAuthor)
	router.PUT("/authors/:id", writeLimit, authorHandler.UpdateAuthor)
	router.DELETE("/authors/:id", writeLimit, authorHandler.DeleteAuthor)

	router.GET("/categories", taxonomyHandler.GetCategories)
	router.GET("/tags", taxonomyHandler.GetTags)

	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.Fatalf("server exited with error: %v", err)
	}
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&model.Author{},
		&model.Idea{},
		&model.Category{},
		&model.Tag{},
	)
}
