package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kmathenge/signup-notification-service/internal/domains/emails"
	emailsModels "github.com/kmathenge/signup-notification-service/internal/domains/emails/models"
	"github.com/kmathenge/signup-notification-service/internal/domains/signups"
)

// redeliveryWindow is how long an email may sit in pending before the
// scheduler assumes the original publish was lost and re-publishes it.
const redeliveryWindow = 5 * time.Minute

// Scheduler re-publishes outbound emails stuck in pending, covering
// publish failures at signup time and broker restarts.
type Scheduler struct {
	emailsRepo emails.Repository
	queue      signups.QueuePublisher
	interval   time.Duration
	stopChan   chan struct{}
}

// NewScheduler creates a new scheduler
func NewScheduler(emailsRepo emails.Repository, queue signups.QueuePublisher, interval time.Duration) *Scheduler {
	return &Scheduler{
		emailsRepo: emailsRepo,
		queue:      queue,
		interval:   interval,
		stopChan:   make(chan struct{}),
	}
}

// Start starts the scheduler
func (s *Scheduler) Start() {
	log.Info().Msgf("starting scheduler with interval %v", s.interval)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.requeueStuckEmails()
		case <-s.stopChan:
			log.Info().Msg("stopping scheduler")
			return
		}
	}
}

// Stop stops the scheduler
func (s *Scheduler) Stop() {
	close(s.stopChan)
}

func (s *Scheduler) requeueStuckEmails() {
	ctx := context.Background()

	// We fetch in batches to avoid memory issues, though for now we just
	// fetch a large batch
	params := emailsModels.GetPendingEmailsParams{
		UpdatedBefore: time.Now().Add(-redeliveryWindow),
		Limit:         10000,
		Offset:        0,
	}

	pending, err := s.emailsRepo.GetPendingEmails(ctx, params)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch pending emails")
		return
	}

	if len(pending) == 0 {
		return
	}

	log.Info().Int("count", len(pending)).Msg("found stuck pending emails")

	queuedCount := 0
	for _, email := range pending {
		if err := s.queue.PublishEmailSend(email.ID); err != nil {
			log.Error().Err(err).Int32("email_id", email.ID).Msg("failed to publish email")
			continue
		}
		queuedCount++
	}

	log.Info().Int("queued", queuedCount).Msg("requeue pass complete")
}
