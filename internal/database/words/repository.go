// Package words provides database operations for sign-word management.
//
// The repository speaks raw gorm errors; translating them into the
// store-level error taxonomy is the job of internal/store.
//
// # Usage
//
//	repo := words.NewRepository(db)
//	all, err := repo.All()
package words

import (
	"strings"

	"gorm.io/gorm"

	"github.com/signsetu/signsetu/internal/entities"
)

// Repository handles all word database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new word repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new word entry. The word column carries a unique index;
// duplicate inserts fail with a constraint error.
func (r *Repository) Create(word *entities.Word) error {
	word.Word = strings.TrimSpace(word.Word)
	return r.db.Create(word).Error
}

// All returns every word, sorted alphabetically.
func (r *Repository) All() ([]entities.Word, error) {
	words := []entities.Word{}
	err := r.db.Preload("Definitions").Order("word ASC").Find(&words).Error
	return words, err
}

// ByID retrieves a word by ID with its definitions.
func (r *Repository) ByID(id uint) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Preload("Definitions").First(&word, id).Error
	if err != nil {
		return nil, err
	}
	return &word, nil
}

// Search returns words whose word or definition contains the query,
// case-insensitively, sorted alphabetically.
func (r *Repository) Search(query string) ([]entities.Word, error) {
	words := []entities.Word{}
	pattern := "%" + query + "%"
	err := r.db.Preload("Definitions").
		Where("LOWER(word) LIKE LOWER(?) OR LOWER(definition) LIKE LOWER(?)", pattern, pattern).
		Order("word ASC").
		Find(&words).Error
	return words, err
}

// Update applies a partial update and returns the updated record.
func (r *Repository) Update(id uint, updates map[string]any) (*entities.Word, error) {
	var word entities.Word
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&word, id).Error; err != nil {
			return err
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&word).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}
	return r.ByID(id)
}

// Delete removes a word and its definitions. Returns false when no word
// exists for the ID.
func (r *Repository) Delete(id uint) (bool, error) {
	found := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var word entities.Word
		if err := tx.First(&word, id).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil
			}
			return err
		}
		found = true
		if err := tx.Where("word_id = ?", id).Delete(&entities.WordDefinition{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Word{}, id).Error
	})
	return found, err
}

// Related returns up to limit words sharing a three-letter prefix or the
// category with the given word, excluding the word itself.
func (r *Repository) Related(word *entities.Word, limit int) ([]entities.Word, error) {
	related := []entities.Word{}
	prefix := word.Word
	if len(prefix) > 3 {
		prefix = prefix[:3]
	}
	query := r.db.
		Where("id != ?", word.ID).
		Where("LOWER(word) LIKE LOWER(?) OR category = ?", prefix+"%", word.Category)
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Order("word ASC").Find(&related).Error
	return related, err
}

// Pending returns words awaiting definition enrichment.
func (r *Repository) Pending(limit int) ([]entities.Word, error) {
	words := []entities.Word{}
	query := r.db.Where("enrichment_status = ?", entities.EnrichmentStatusPending).Order("created_at ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&words).Error
	return words, err
}

// SaveDefinitions saves enrichment definitions for a word, replacing any
// existing ones.
func (r *Repository) SaveDefinitions(wordID uint, definitions []entities.WordDefinition) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("word_id = ?", wordID).Delete(&entities.WordDefinition{}).Error; err != nil {
			return err
		}
		for i := range definitions {
			definitions[i].WordID = wordID
			definitions[i].ID = 0
			if err := tx.Create(&definitions[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// UpdateEnrichmentStatus updates the enrichment status of a word.
func (r *Repository) UpdateEnrichmentStatus(id uint, status entities.EnrichmentStatus, errorMsg string) error {
	updates := map[string]any{
		"enrichment_status": status,
		"enrichment_error":  errorMsg,
	}
	return r.db.Model(&entities.Word{}).Where("id = ?", id).Updates(updates).Error
}
