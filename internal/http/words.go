package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/signsetu/signsetu/internal/entities"
	"github.com/signsetu/signsetu/internal/store"
	"github.com/signsetu/signsetu/internal/tasks"
)

// WordStore defines the cached word store operations the controller uses.
type WordStore interface {
	ListAll() ([]entities.Word, error)
	Search(query string) ([]entities.Word, error)
	GetByID(id uint) (*entities.Word, error)
	Related(id uint, limit int) ([]entities.Word, error)
	Create(word *entities.Word) error
	Update(id uint, updates map[string]any) (*entities.Word, error)
	Delete(id uint) error
}

type WordsController struct {
	store      WordStore
	taskClient *tasks.Client
}

func NewWordsController(store WordStore, taskClient *tasks.Client) *WordsController {
	return &WordsController{
		store:      store,
		taskClient: taskClient,
	}
}

// CreateWordRequest is the request body for adding a word.
type CreateWordRequest struct {
	Word       string              `json:"word" binding:"required"`
	Definition string              `json:"definition" binding:"required"`
	ImageURL   string              `json:"image_url" binding:"required"`
	VideoURL   string              `json:"video_url" binding:"required"`
	VideoType  entities.VideoType  `json:"video_type,omitempty"`
	Category   string              `json:"category,omitempty"`
	Difficulty entities.Difficulty `json:"difficulty,omitempty"`
	AutoEnrich bool                `json:"auto_enrich,omitempty"`
}

// UpdateWordRequest is the request body for a partial update; absent fields
// are left unchanged.
type UpdateWordRequest struct {
	Word       *string              `json:"word,omitempty"`
	Definition *string              `json:"definition,omitempty"`
	ImageURL   *string              `json:"image_url,omitempty"`
	VideoURL   *string              `json:"video_url,omitempty"`
	VideoType  *entities.VideoType  `json:"video_type,omitempty"`
	Category   *string              `json:"category,omitempty"`
	Difficulty *entities.Difficulty `json:"difficulty,omitempty"`
}

// respondStoreError maps store errors onto response codes.
func respondStoreError(c *gin.Context, err error, context string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondNotFound(c, "word")
	case store.IsValidation(err):
		respondBadRequest(c, err.Error())
	default:
		respondInternalError(c, err, context)
	}
}

// ListWords returns all words, or a search result when ?q= is present.
// GET /api/words
func (wc *WordsController) ListWords(c *gin.Context) {
	if query := c.Query("q"); query != "" {
		words, err := wc.store.Search(query)
		if err != nil {
			respondStoreError(c, err, "search words")
			return
		}
		c.JSON(http.StatusOK, gin.H{"words": words, "total": len(words)})
		return
	}

	words, err := wc.store.ListAll()
	if err != nil {
		respondStoreError(c, err, "list words")
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": words, "total": len(words)})
}

// GetWord returns a single word.
// GET /api/words/:id
func (wc *WordsController) GetWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	word, err := wc.store.GetByID(id)
	if err != nil {
		respondStoreError(c, err, "get word")
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word})
}

// GetRelatedWords returns up to three words related to the given one.
// GET /api/words/:id/related
func (wc *WordsController) GetRelatedWords(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	related, err := wc.store.Related(id, 3)
	if err != nil {
		respondStoreError(c, err, "related words")
		return
	}
	c.JSON(http.StatusOK, gin.H{"words": related})
}

// CreateWord adds a new word.
// POST /api/words
func (wc *WordsController) CreateWord(c *gin.Context) {
	var req CreateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	word := &entities.Word{
		Word:       req.Word,
		Definition: req.Definition,
		ImageURL:   req.ImageURL,
		VideoURL:   req.VideoURL,
		VideoType:  req.VideoType,
		Category:   req.Category,
		Difficulty: req.Difficulty,
	}
	if word.VideoType == "" {
		word.VideoType = entities.VideoTypeYouTube
	}
	if word.Category == "" {
		word.Category = entities.DefaultCategory
	}
	if word.Difficulty == "" {
		word.Difficulty = entities.DifficultyBeginner
	}

	if err := wc.store.Create(word); err != nil {
		respondStoreError(c, err, "create word")
		return
	}

	if req.AutoEnrich && wc.taskClient != nil {
		_, _ = wc.taskClient.Add(tasks.EnrichWordTask{WordID: word.ID}).Save()
	}

	respondCreated(c, gin.H{"word": word})
}

// UpdateWord applies a partial update.
// PUT /api/words/:id
func (wc *WordsController) UpdateWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateWordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	updates := map[string]any{}
	if req.Word != nil {
		updates["word"] = *req.Word
	}
	if req.Definition != nil {
		updates["definition"] = *req.Definition
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.VideoURL != nil {
		updates["video_url"] = *req.VideoURL
		updates["video_id"] = entities.ExtractYouTubeID(*req.VideoURL)
	}
	if req.VideoType != nil {
		updates["video_type"] = *req.VideoType
	}
	if req.Category != nil {
		updates["category"] = *req.Category
	}
	if req.Difficulty != nil {
		updates["difficulty"] = *req.Difficulty
	}

	word, err := wc.store.Update(id, updates)
	if err != nil {
		respondStoreError(c, err, "update word")
		return
	}
	c.JSON(http.StatusOK, gin.H{"word": word})
}

// DeleteWord removes a word.
// DELETE /api/words/:id
func (wc *WordsController) DeleteWord(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := wc.store.Delete(id); err != nil {
		respondStoreError(c, err, "delete word")
		return
	}
	respondSuccess(c, "word deleted successfully")
}
