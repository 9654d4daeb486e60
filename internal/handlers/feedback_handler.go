package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "planvida/internal/errors"
	"planvida/internal/models"
	"planvida/internal/pagination"
	"planvida/internal/services"
)

// FeedbackHandler handles feedback and contact-form requests
type FeedbackHandler struct {
	feedbackService services.FeedbackServicer
}

// NewFeedbackHandler creates a new FeedbackHandler
func NewFeedbackHandler(feedbackService services.FeedbackServicer) *FeedbackHandler {
	return &FeedbackHandler{feedbackService: feedbackService}
}

// CreateFeedbackRequest represents the feedback submission payload
type CreateFeedbackRequest struct {
	Stars    int    `json:"stars" binding:"required,min=1,max=5"`
	Comment  string `json:"comment" binding:"max=500"`
	Category string `json:"category" binding:"required,feedback_category"`
	Mode     string `json:"feedback_mode" binding:"omitempty,feedback_mode"`
}

// ContactRequest represents the public contact-form payload
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=100"`
	Email   string `json:"email" binding:"required,email"`
	Message string `json:"message" binding:"required,max=1000"`
}

// CreateFeedback handles feedback submission
// @Summary     Submit feedback
// @Description Submit a star rating with an optional comment
// @Tags        feedback
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateFeedbackRequest true "Feedback data"
// @Success     201 {object} models.Feedback "Feedback created"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /feedback [post]
func (h *FeedbackHandler) CreateFeedback(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	feedback, err := h.feedbackService.CreateFeedback(
		userID,
		req.Stars,
		req.Comment,
		models.FeedbackCategory(req.Category),
		models.FeedbackMode(req.Mode),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, feedback)
}

// ListPublicFeedback lists publicly visible feedback
// @Summary     List public feedback
// @Description Get feedback entries marked public, newest first
// @Tags        feedback
// @Produce     json
// @Param       page query int false "Page number"
// @Param       page_size query int false "Page size"
// @Success     200 {object} pagination.PageResponse[models.Feedback] "Public feedback"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /feedback/public [get]
func (h *FeedbackHandler) ListPublicFeedback(c *gin.Context) {
	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	resp, err := h.feedbackService.ListPublicFeedback(page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateContactMessage handles public contact-form submissions
// @Summary     Submit a contact message
// @Description Submit a message through the public contact form
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       request body ContactRequest true "Contact message"
// @Success     201 {object} models.ContactMessage "Message stored"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /contact [post]
func (h *FeedbackHandler) CreateContactMessage(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	msg, err := h.feedbackService.CreateContactMessage(req.Name, req.Email, req.Message)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, msg)
}
