package tasks

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mikestefanello/backlite"

	"github.com/signsetu/signsetu/internal/dictionary"
	"github.com/signsetu/signsetu/internal/entities"
)

// WordEnricher defines the repository operations word enrichment needs.
type WordEnricher interface {
	ByID(id uint) (*entities.Word, error)
	SaveDefinitions(wordID uint, definitions []entities.WordDefinition) error
	UpdateEnrichmentStatus(id uint, status entities.EnrichmentStatus, errorMsg string) error
	Pending(limit int) ([]entities.Word, error)
}

// EnrichWordTask enriches a single word with dictionary definitions.
type EnrichWordTask struct {
	WordID uint `json:"word_id"`
}

func (t EnrichWordTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_word",
		MaxAttempts: 3,
		Backoff:     30 * time.Second,
		Timeout:     1 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

// EnrichWordProcessor creates a processor for word enrichment.
func EnrichWordProcessor(repo WordEnricher, dictClient dictionary.Client) backlite.QueueProcessor[EnrichWordTask] {
	return func(ctx context.Context, task EnrichWordTask) error {
		word, err := repo.ByID(task.WordID)
		if err != nil {
			return fmt.Errorf("get word %d: %w", task.WordID, err)
		}

		result, err := dictClient.Lookup(ctx, word.Word)
		if err != nil {
			if updateErr := repo.UpdateEnrichmentStatus(task.WordID, entities.EnrichmentStatusFailed, err.Error()); updateErr != nil {
				log.Printf("[TASK] Failed to update enrichment status: %v", updateErr)
			}
			return fmt.Errorf("lookup word %q: %w", word.Word, err)
		}

		if err := repo.SaveDefinitions(task.WordID, result.Definitions); err != nil {
			return fmt.Errorf("save definitions for word %d: %w", task.WordID, err)
		}

		if err := repo.UpdateEnrichmentStatus(task.WordID, entities.EnrichmentStatusEnriched, ""); err != nil {
			return fmt.Errorf("update enrichment status: %w", err)
		}

		log.Printf("[TASK] Enriched word %q with %d definitions", word.Word, len(result.Definitions))
		return nil
	}
}

func NewEnrichWordQueue(repo WordEnricher, dictClient dictionary.Client) backlite.Queue {
	return backlite.NewQueue(EnrichWordProcessor(repo, dictClient))
}

// EnrichAllPendingWordsTask enriches every word still pending enrichment.
type EnrichAllPendingWordsTask struct{}

func (t EnrichAllPendingWordsTask) Config() backlite.QueueConfig {
	return backlite.QueueConfig{
		Name:        "enrich_all_words",
		MaxAttempts: 1,
		Backoff:     time.Minute,
		Timeout:     30 * time.Minute,
		Retention: &backlite.Retention{
			Duration:   24 * time.Hour,
			OnlyFailed: false,
			Data:       &backlite.RetainData{OnlyFailed: true},
		},
	}
}

func EnrichAllPendingWordsProcessor(repo WordEnricher, dictClient dictionary.Client) backlite.QueueProcessor[EnrichAllPendingWordsTask] {
	return func(ctx context.Context, task EnrichAllPendingWordsTask) error {
		words, err := repo.Pending(0) // 0 = no limit
		if err != nil {
			return fmt.Errorf("get pending words: %w", err)
		}

		var enriched, failed int
		for _, word := range words {
			select {
			case <-ctx.Done():
				log.Printf("[TASK] Context cancelled, enriched %d words, %d failed", enriched, failed)
				return ctx.Err()
			default:
			}

			result, err := dictClient.Lookup(ctx, word.Word)
			if err != nil {
				_ = repo.UpdateEnrichmentStatus(word.ID, entities.EnrichmentStatusFailed, err.Error())
				failed++
				continue
			}

			if err := repo.SaveDefinitions(word.ID, result.Definitions); err != nil {
				_ = repo.UpdateEnrichmentStatus(word.ID, entities.EnrichmentStatusFailed, err.Error())
				failed++
				continue
			}

			_ = repo.UpdateEnrichmentStatus(word.ID, entities.EnrichmentStatusEnriched, "")
			enriched++
		}

		log.Printf("[TASK] Enriched %d words, %d failed out of %d total", enriched, failed, len(words))
		return nil
	}
}

func NewEnrichAllPendingWordsQueue(repo WordEnricher, dictClient dictionary.Client) backlite.Queue {
	return backlite.NewQueue(EnrichAllPendingWordsProcessor(repo, dictClient))
}
