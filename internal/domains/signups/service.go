package signups

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	emailsModels "github.com/kmathenge/signup-notification-service/internal/domains/emails/models"
	"github.com/kmathenge/signup-notification-service/internal/domains/signups/models"
)

type Service struct {
	repo       Repository
	emailsRepo EmailsRepository
	queue      QueuePublisher
}

func NewService(repo Repository, emailsRepo EmailsRepository, queue QueuePublisher) *Service {
	return &Service{
		repo:       repo,
		emailsRepo: emailsRepo,
		queue:      queue,
	}
}

// EmailsRepository interface for outbound email operations
type EmailsRepository interface {
	CreateOutboundEmail(ctx context.Context, params emailsModels.CreateOutboundEmailParams) (emailsModels.OutboundEmail, error)
}

// QueuePublisher interface for publishing emails to queue
type QueuePublisher interface {
	PublishEmailSend(emailID int32) error
}

type CreateSignupRequest struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	ProjectName string `json:"project_name"`
	UserState   string `json:"user_state"`
}

type CreateSignupResponse struct {
	SignupID    int32  `json:"signup_id"`
	EmailID     int32  `json:"email_id"`
	EmailStatus string `json:"email_status"`
}

// CreateSignup records a completed signup workflow and queues the
// confirmation email for the user.
func (s *Service) CreateSignup(ctx context.Context, req CreateSignupRequest) (*CreateSignupResponse, error) {
	if strings.TrimSpace(req.Username) == "" {
		return nil, errors.New("username cannot be empty")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, errors.New("email cannot be empty")
	}

	state, err := ParseUserState(req.UserState)
	if err != nil {
		return nil, err
	}

	signup, err := s.repo.CreateSignup(ctx, models.CreateSignupParams{
		Username:    req.Username,
		Email:       req.Email,
		ProjectName: req.ProjectName,
		UserState:   string(state),
	})
	if err != nil {
		return nil, err
	}

	email, err := s.emailsRepo.CreateOutboundEmail(ctx, emailsModels.CreateOutboundEmailParams{
		SignupID:  signup.ID,
		Recipient: signup.Email,
		Subject:   ConfirmationSubject,
	})
	if err != nil {
		return nil, err
	}

	if err := s.queue.PublishEmailSend(email.ID); err != nil {
		// The scheduler re-publishes stuck pending emails, so the signup
		// is still accepted when the broker is briefly unavailable.
		log.Warn().Err(err).Int32("email_id", email.ID).Msg("failed to publish email, scheduler will retry")
	}

	return &CreateSignupResponse{
		SignupID:    signup.ID,
		EmailID:     email.ID,
		EmailStatus: email.Status,
	}, nil
}

type ListSignupsParams struct {
	Page      int32  `json:"page"`
	PageSize  int32  `json:"page_size"`
	UserState string `json:"user_state"`
}

type Pagination struct {
	Page       int32 `json:"page"`
	PageSize   int32 `json:"page_size"`
	TotalCount int64 `json:"total_count"`
	TotalPages int32 `json:"total_pages"`
}

type SignupSummary struct {
	ID          int32     `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	ProjectName string    `json:"project_name"`
	UserState   string    `json:"user_state"`
	EmailStatus string    `json:"email_status"`
	CreatedAt   time.Time `json:"created_at"`
}

type ListSignupsResponse struct {
	Data       []SignupSummary `json:"data"`
	Pagination Pagination      `json:"pagination"`
}

func stringToNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{Valid: false}
	}
	return sql.NullString{String: s, Valid: true}
}

func (s *Service) ListSignups(ctx context.Context, params ListSignupsParams) (*ListSignupsResponse, error) {
	// Set defaults
	if params.Page < 1 {
		params.Page = 1
	}
	if params.PageSize < 1 {
		params.PageSize = 20
	}
	if params.PageSize > 100 {
		params.PageSize = 100
	}

	if params.UserState != "" {
		if _, err := ParseUserState(params.UserState); err != nil {
			return nil, err
		}
	}

	offset := (params.Page - 1) * params.PageSize

	rows, err := s.repo.ListSignups(ctx, models.ListSignupsParams{
		UserState: stringToNullString(params.UserState),
		Limit:     params.PageSize,
		Offset:    offset,
	})
	if err != nil {
		return nil, err
	}

	totalCount, err := s.repo.CountSignups(ctx, stringToNullString(params.UserState))
	if err != nil {
		return nil, err
	}

	totalPages := int32(0)
	if totalCount > 0 {
		totalPages = int32((totalCount + int64(params.PageSize) - 1) / int64(params.PageSize))
	}

	data := make([]SignupSummary, 0, len(rows))
	for _, row := range rows {
		data = append(data, SignupSummary{
			ID:          row.ID,
			Username:    row.Username,
			Email:       row.Email,
			ProjectName: row.ProjectName,
			UserState:   row.UserState,
			EmailStatus: row.EmailStatus,
			CreatedAt:   row.CreatedAt,
		})
	}

	return &ListSignupsResponse{
		Data: data,
		Pagination: Pagination{
			Page:       params.Page,
			PageSize:   params.PageSize,
			TotalCount: totalCount,
			TotalPages: totalPages,
		},
	}, nil
}

type GetSignupResponse struct {
	ID             int32     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	ProjectName    string    `json:"project_name"`
	UserState      string    `json:"user_state"`
	EmailStatus    string    `json:"email_status"`
	EmailRetries   int32     `json:"email_retries"`
	EmailLastError *string   `json:"email_last_error,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func (s *Service) GetSignup(ctx context.Context, id int32) (*GetSignupResponse, error) {
	row, err := s.repo.GetSignupWithDeliveryStatus(ctx, id)
	if err != nil {
		return nil, err
	}

	var lastError *string
	if row.EmailLastError.Valid {
		lastError = &row.EmailLastError.String
	}

	return &GetSignupResponse{
		ID:             row.ID,
		Username:       row.Username,
		Email:          row.Email,
		ProjectName:    row.ProjectName,
		UserState:      row.UserState,
		EmailStatus:    row.EmailStatus,
		EmailRetries:   row.EmailRetryCount,
		EmailLastError: lastError,
		CreatedAt:      row.CreatedAt,
	}, nil
}

// PreviewRequest represents the request body for an email preview
type PreviewRequest struct {
	OverrideState *string `json:"override_state,omitempty"`
	Token         *string `json:"token,omitempty"`
}

// PreviewResponse represents the rendered preview
type PreviewResponse struct {
	Subject        string  `json:"subject"`
	Body           string  `json:"body"`
	UserState      string  `json:"user_state"`
	TokenEmailBody *string `json:"token_email_body,omitempty"`
}

// Preview renders the confirmation email for a signup without sending it.
// The signup's recorded state can be overridden, and a token email preview
// is included when a token is supplied.
func (s *Service) Preview(ctx context.Context, signupID int32, req PreviewRequest) (*PreviewResponse, error) {
	signup, err := s.repo.GetSignup(ctx, signupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, errors.New("signup not found")
		}
		return nil, err
	}

	stateValue := signup.UserState
	if req.OverrideState != nil && *req.OverrideState != "" {
		stateValue = *req.OverrideState
	}

	state, err := ParseUserState(stateValue)
	if err != nil {
		return nil, err
	}

	body, err := RenderConfirmation(state)
	if err != nil {
		return nil, err
	}

	resp := &PreviewResponse{
		Subject:   ConfirmationSubject,
		Body:      body,
		UserState: string(state),
	}

	if req.Token != nil && *req.Token != "" {
		tokenBody := RenderTokenEmail(signup.Username, *req.Token)
		resp.TokenEmailBody = &tokenBody
	}

	return resp, nil
}
