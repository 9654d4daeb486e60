package services

import (
	apperrors "planvida/internal/errors"
	"planvida/internal/models"
	"planvida/internal/pagination"

	"gorm.io/gorm"
)

// FeedbackService handles user feedback and contact-form submissions.
type FeedbackService struct {
	db *gorm.DB
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(db *gorm.DB) *FeedbackService {
	return &FeedbackService{db: db}
}

// CreateFeedback stores a star rating with an optional comment.
func (s *FeedbackService) CreateFeedback(userID string, stars int, comment string, category models.FeedbackCategory, mode models.FeedbackMode) (*models.Feedback, error) {
	if stars < 1 || stars > 5 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "stars must be between 1 and 5")
	}
	if mode == "" {
		mode = models.FeedbackModePrivate
	}

	feedback := &models.Feedback{
		UserID:   userID,
		Stars:    stars,
		Comment:  comment,
		Category: category,
		Mode:     mode,
	}
	if err := s.db.Create(feedback).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return feedback, nil
}

// ListPublicFeedback returns feedback entries marked public, newest first.
func (s *FeedbackService) ListPublicFeedback(page pagination.PageRequest) (*pagination.PageResponse[models.Feedback], error) {
	page.Defaults()

	query := s.db.Model(&models.Feedback{}).Where("mode = ?", models.FeedbackModePublic)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var entries []models.Feedback
	if err := query.
		Scopes(pagination.Paginate(page)).
		Order("created_at DESC").
		Find(&entries).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	resp := pagination.NewPageResponse(entries, page.Page, page.PageSize, total)
	return &resp, nil
}

// CreateContactMessage stores a message from the public contact form.
func (s *FeedbackService) CreateContactMessage(name, email, message string) (*models.ContactMessage, error) {
	msg := &models.ContactMessage{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.db.Create(msg).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return msg, nil
}
