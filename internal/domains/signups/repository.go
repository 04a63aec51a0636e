package signups

import (
	"context"
	"database/sql"

	"github.com/kmathenge/signup-notification-service/internal/domains/signups/models"
)

type Repository interface {
	CreateSignup(ctx context.Context, params models.CreateSignupParams) (models.Signup, error)
	GetSignup(ctx context.Context, id int32) (models.Signup, error)
	GetSignupWithDeliveryStatus(ctx context.Context, id int32) (models.GetSignupWithDeliveryStatusRow, error)
	ListSignups(ctx context.Context, params models.ListSignupsParams) ([]models.ListSignupsRow, error)
	CountSignups(ctx context.Context, userState sql.NullString) (int64, error)
}

type repository struct {
	q *models.Queries
}

func NewRepository(db models.DBTX) Repository {
	return &repository{q: models.New(db)}
}

func (r *repository) CreateSignup(ctx context.Context, params models.CreateSignupParams) (models.Signup, error) {
	return r.q.CreateSignup(ctx, params)
}

func (r *repository) GetSignup(ctx context.Context, id int32) (models.Signup, error) {
	return r.q.GetSignup(ctx, id)
}

func (r *repository) GetSignupWithDeliveryStatus(ctx context.Context, id int32) (models.GetSignupWithDeliveryStatusRow, error) {
	return r.q.GetSignupWithDeliveryStatus(ctx, id)
}

func (r *repository) ListSignups(ctx context.Context, params models.ListSignupsParams) ([]models.ListSignupsRow, error) {
	return r.q.ListSignups(ctx, params)
}

func (r *repository) CountSignups(ctx context.Context, userState sql.NullString) (int64, error) {
	return r.q.CountSignups(ctx, userState)
}
