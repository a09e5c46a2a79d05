// Package scheduler runs periodic background jobs on cron schedules.
package scheduler

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"github.com/signsetu/signsetu/internal/tasks"
)

// EnrichmentScheduler periodically enqueues an enrichment sweep over words
// that are still pending dictionary definitions.
type EnrichmentScheduler struct {
	taskClient *tasks.Client
	schedule   string

	cron       *cron.Cron
	entryID    cron.EntryID
	mu         sync.RWMutex
	isRunning  bool
	cancelFunc context.CancelFunc
}

// NewEnrichmentScheduler creates a scheduler enqueueing the pending-words
// sweep on the given cron schedule (standard five-field format).
func NewEnrichmentScheduler(taskClient *tasks.Client, schedule string) *EnrichmentScheduler {
	return &EnrichmentScheduler{
		taskClient: taskClient,
		schedule:   schedule,
		cron:       cron.New(cron.WithParser(cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow))),
	}
}

// Start begins the scheduler.
func (s *EnrichmentScheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return nil
	}

	entryID, err := s.cron.AddFunc(s.schedule, func() {
		s.runSweep()
	})
	if err != nil {
		return fmt.Errorf("failed to schedule enrichment sweep: %w", err)
	}
	s.entryID = entryID

	var cancelCtx context.Context
	cancelCtx, s.cancelFunc = context.WithCancel(ctx)

	s.cron.Start()
	s.isRunning = true

	log.Printf("Enrichment scheduler: started with schedule '%s'", s.schedule)

	go func() {
		<-cancelCtx.Done()
		s.Stop()
	}()

	return nil
}

// Stop gracefully stops the scheduler, waiting for a running sweep job to
// finish enqueueing.
func (s *EnrichmentScheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return
	}

	ctx := s.cron.Stop()
	<-ctx.Done()

	s.isRunning = false
	s.cancelFunc = nil

	log.Printf("Enrichment scheduler: stopped")
}

// IsRunning reports whether the scheduler is active.
func (s *EnrichmentScheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

func (s *EnrichmentScheduler) runSweep() {
	if _, err := s.taskClient.Add(tasks.EnrichAllPendingWordsTask{}).Save(); err != nil {
		log.Printf("Enrichment scheduler: failed to enqueue sweep: %v", err)
		return
	}
	log.Printf("Enrichment scheduler: enqueued pending-words sweep")
}
