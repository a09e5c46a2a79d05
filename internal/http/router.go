package http

import (
	"github.com/gin-gonic/gin"

	"github.com/signsetu/signsetu/internal/database"
	"github.com/signsetu/signsetu/internal/signs"
	"github.com/signsetu/signsetu/internal/tasks"
)

// RouterConfig holds all dependencies the router needs, improving
// testability and reducing parameter count.
type RouterConfig struct {
	Database   *database.Database
	WordStore  WordStore
	Dictionary *signs.Dictionary
	TaskClient *tasks.Client
	Version    string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Database, cfg.Version)
	words := NewWordsController(cfg.WordStore, cfg.TaskClient)
	translate := NewTranslateController(cfg.Dictionary)

	router.GET("/health", health.Status)

	api := router.Group("/api")
	{
		api.GET("/words", words.ListWords)
		api.GET("/words/:id", words.GetWord)
		api.GET("/words/:id/related", words.GetRelatedWords)
		api.POST("/words", words.CreateWord)
		api.PUT("/words/:id", words.UpdateWord)
		api.DELETE("/words/:id", words.DeleteWord)

		api.POST("/translate", translate.Translate)
		api.GET("/signs", translate.ListSigns)
	}

	return router
}
