package emails

import (
	"context"

	"github.com/kmathenge/signup-notification-service/internal/domains/emails/models"
)

type Repository interface {
	CreateOutboundEmail(ctx context.Context, params models.CreateOutboundEmailParams) (models.OutboundEmail, error)
	CountOutboundEmailsBySignup(ctx context.Context, signupID int32) (int64, error)
	GetOutboundEmailWithDetails(ctx context.Context, id int32) (models.GetOutboundEmailWithDetailsRow, error)
	UpdateOutboundEmailWithRetry(ctx context.Context, params models.UpdateOutboundEmailWithRetryParams) (models.OutboundEmail, error)
	GetPendingEmails(ctx context.Context, params models.GetPendingEmailsParams) ([]models.OutboundEmail, error)
}

type repository struct {
	q *models.Queries
}

func NewRepository(db models.DBTX) Repository {
	return &repository{q: models.New(db)}
}

func (r *repository) CreateOutboundEmail(ctx context.Context, params models.CreateOutboundEmailParams) (models.OutboundEmail, error) {
	return r.q.CreateOutboundEmail(ctx, params)
}

func (r *repository) CountOutboundEmailsBySignup(ctx context.Context, signupID int32) (int64, error) {
	return r.q.CountOutboundEmailsBySignup(ctx, signupID)
}

func (r *repository) GetOutboundEmailWithDetails(ctx context.Context, id int32) (models.GetOutboundEmailWithDetailsRow, error) {
	return r.q.GetOutboundEmailWithDetails(ctx, id)
}

func (r *repository) UpdateOutboundEmailWithRetry(ctx context.Context, params models.UpdateOutboundEmailWithRetryParams) (models.OutboundEmail, error) {
	return r.q.UpdateOutboundEmailWithRetry(ctx, params)
}

func (r *repository) GetPendingEmails(ctx context.Context, params models.GetPendingEmailsParams) ([]models.OutboundEmail, error) {
	return r.q.GetPendingEmails(ctx, params)
}
