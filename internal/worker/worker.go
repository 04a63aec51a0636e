package worker

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rabbitmq/amqp091-go"
	"github.com/rs/zerolog/log"

	"github.com/kmathenge/signup-notification-service/internal/domains/emails"
	emailsModels "github.com/kmathenge/signup-notification-service/internal/domains/emails/models"
	"github.com/kmathenge/signup-notification-service/internal/domains/signups"
	"github.com/kmathenge/signup-notification-service/internal/queue"
)

type Worker struct {
	rabbitMQ *queue.RabbitMQ
	repo     emails.Repository
	sender   Sender
}

func NewWorker(rabbitMQ *queue.RabbitMQ, db emailsModels.DBTX, sender Sender) *Worker {
	return &Worker{
		rabbitMQ: rabbitMQ,
		repo:     emails.NewRepository(db),
		sender:   sender,
	}
}

func (w *Worker) Start(ctx context.Context) error {
	msgs, err := w.rabbitMQ.Consume()
	if err != nil {
		return fmt.Errorf("failed to start consumer: %w", err)
	}

	log.Info().Msg("worker started, waiting for emails")

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("worker shutting down")
			return nil
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("rabbitMQ channel closed")
			}
			w.processEmail(ctx, d)
		}
	}
}

func (w *Worker) processEmail(ctx context.Context, d amqp091.Delivery) {
	var msg queue.EmailSendMessage
	if err := json.Unmarshal(d.Body, &msg); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal message")
		d.Reject(false)
		return
	}

	log.Info().Int32("email_id", msg.OutboundEmailID).Msg("processing email")

	details, err := w.repo.GetOutboundEmailWithDetails(ctx, msg.OutboundEmailID)
	if err != nil {
		log.Error().Err(err).Int32("email_id", msg.OutboundEmailID).Msg("failed to fetch email details")
		// If the record is missing, reject. Otherwise the DB may be down,
		// so nack with requeue.
		if err == sql.ErrNoRows {
			d.Reject(false)
		} else {
			d.Nack(false, true)
		}
		return
	}

	if details.Status == "sent" {
		// Already delivered, likely a redelivered message. Nothing to do.
		log.Info().Int32("email_id", details.ID).Msg("email already sent, acking duplicate")
		d.Ack(false)
		return
	}

	state, err := signups.ParseUserState(details.SignupUserState)
	if err != nil {
		// A state outside the recognized set can never render, so this is
		// a permanent failure rather than a retry.
		w.handlePermanentFailure(ctx, d, details, err)
		return
	}

	body, err := signups.RenderConfirmation(state)
	if err != nil {
		w.handlePermanentFailure(ctx, d, details, err)
		return
	}

	providerMsgID, err := w.sender.Send(details.Recipient, details.Subject, body)
	if err != nil {
		w.handleFailure(ctx, d, details, err)
		return
	}

	w.handleSuccess(ctx, d, details, providerMsgID)
}

func (w *Worker) handleSuccess(ctx context.Context, d amqp091.Delivery, details emailsModels.GetOutboundEmailWithDetailsRow, providerMsgID string) {
	_, err := w.repo.UpdateOutboundEmailWithRetry(ctx, emailsModels.UpdateOutboundEmailWithRetryParams{
		ID:     details.ID,
		Status: "sent",
		ProviderMessageID: sql.NullString{
			String: providerMsgID,
			Valid:  true,
		},
		LastError: sql.NullString{},
	})

	if err != nil {
		log.Error().Err(err).Int32("email_id", details.ID).Msg("failed to update status to sent")
		// The email went out but the DB update failed, so a redelivery
		// would resend. The sent-status check above limits the window.
		d.Ack(false)
		return
	}

	log.Info().Int32("email_id", details.ID).Msg("email sent successfully")
	d.Ack(false)
}

// handlePermanentFailure marks the email failed without requeueing.
func (w *Worker) handlePermanentFailure(ctx context.Context, d amqp091.Delivery, details emailsModels.GetOutboundEmailWithDetailsRow, cause error) {
	log.Error().Err(cause).
		Int32("email_id", details.ID).
		Str("user_state", details.SignupUserState).
		Msg("email cannot be rendered, marking failed")

	_, err := w.repo.UpdateOutboundEmailWithRetry(ctx, emailsModels.UpdateOutboundEmailWithRetryParams{
		ID:     details.ID,
		Status: "failed",
		LastError: sql.NullString{
			String: cause.Error(),
			Valid:  true,
		},
	})
	if err != nil {
		log.Error().Err(err).Int32("email_id", details.ID).Msg("failed to update status to failed")
	}
	d.Ack(false)
}

func (w *Worker) handleFailure(ctx context.Context, d amqp091.Delivery, details emailsModels.GetOutboundEmailWithDetailsRow, sendErr error) {
	log.Warn().Err(sendErr).Int32("email_id", details.ID).Msg("failed to send email")

	if details.RetryCount >= 3 {
		_, err := w.repo.UpdateOutboundEmailWithRetry(ctx, emailsModels.UpdateOutboundEmailWithRetryParams{
			ID:     details.ID,
			Status: "failed",
			LastError: sql.NullString{
				String: sendErr.Error(),
				Valid:  true,
			},
		})
		if err != nil {
			log.Error().Err(err).Int32("email_id", details.ID).Msg("failed to update status to failed")
		}
		d.Ack(false)
		return
	}

	// returns the updated row.
	updated, err := w.repo.UpdateOutboundEmailWithRetry(ctx, emailsModels.UpdateOutboundEmailWithRetryParams{
		ID:     details.ID,
		Status: "failed",
		LastError: sql.NullString{
			String: sendErr.Error(),
			Valid:  true,
		},
	})
	if err != nil {
		log.Error().Err(err).Int32("email_id", details.ID).Msg("failed to update status to failed")
		d.Nack(false, true)
		return
	}

	if updated.RetryCount < 3 {
		log.Info().Int32("email_id", details.ID).Int32("retry_count", updated.RetryCount).Msg("requeueing for retry")
		// Sleep a bit to prevent tight loop
		time.Sleep(1 * time.Second)
		d.Nack(false, true)
	} else {
		log.Warn().Int32("email_id", details.ID).Msg("max retries reached, giving up")
		d.Ack(false)
	}
}
