package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"planvida/internal/models"
	"planvida/internal/pagination"
	"planvida/internal/services"
)

// --- mock feedback service ---

type mockFeedbackService struct {
	createFeedbackFn       func(userID string, stars int, comment string, category models.FeedbackCategory, mode models.FeedbackMode) (*models.Feedback, error)
	listPublicFeedbackFn   func(page pagination.PageRequest) (*pagination.PageResponse[models.Feedback], error)
	createContactMessageFn func(name, email, message string) (*models.ContactMessage, error)
}

func (m *mockFeedbackService) CreateFeedback(userID string, stars int, comment string, category models.FeedbackCategory, mode models.FeedbackMode) (*models.Feedback, error) {
	if m.createFeedbackFn != nil {
		return m.createFeedbackFn(userID, stars, comment, category, mode)
	}
	return &models.Feedback{}, nil
}

func (m *mockFeedbackService) ListPublicFeedback(page pagination.PageRequest) (*pagination.PageResponse[models.Feedback], error) {
	if m.listPublicFeedbackFn != nil {
		return m.listPublicFeedbackFn(page)
	}
	resp := pagination.NewPageResponse([]models.Feedback{}, 1, 20, 0)
	return &resp, nil
}

func (m *mockFeedbackService) CreateContactMessage(name, email, message string) (*models.ContactMessage, error) {
	if m.createContactMessageFn != nil {
		return m.createContactMessageFn(name, email, message)
	}
	return &models.ContactMessage{}, nil
}

var _ services.FeedbackServicer = (*mockFeedbackService)(nil)

func setupFeedbackRouter(handler *FeedbackHandler) *gin.Engine {
	r := gin.New()
	r.GET("/feedback/public", handler.ListPublicFeedback)
	r.POST("/contact", handler.CreateContactMessage)
	auth := r.Group("", injectUserID(testUserID))
	auth.POST("/feedback", handler.CreateFeedback)
	return r
}

func TestFeedbackHandler_CreateFeedback(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		feedbackSvc := &mockFeedbackService{
			createFeedbackFn: func(userID string, stars int, comment string, category models.FeedbackCategory, mode models.FeedbackMode) (*models.Feedback, error) {
				if userID != testUserID {
					t.Errorf("expected user %s, got %s", testUserID, userID)
				}
				return &models.Feedback{
					UserID:   userID,
					Stars:    stars,
					Comment:  comment,
					Category: category,
					Mode:     mode,
				}, nil
			},
		}
		handler := NewFeedbackHandler(feedbackSvc)
		r := setupFeedbackRouter(handler)

		rec := doRequest(r, "POST", "/feedback",
			`{"stars":5,"comment":"Ótimo","category":"elogio","feedback_mode":"public"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		result := parseJSON(t, rec)
		if result["stars"].(float64) != 5 {
			t.Errorf("expected 5 stars, got %v", result["stars"])
		}
	})

	t.Run("returns 400 on unknown category", func(t *testing.T) {
		handler := NewFeedbackHandler(&mockFeedbackService{})
		r := setupFeedbackRouter(handler)

		rec := doRequest(r, "POST", "/feedback",
			`{"stars":5,"category":"spam"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("returns 400 on out-of-range stars", func(t *testing.T) {
		handler := NewFeedbackHandler(&mockFeedbackService{})
		r := setupFeedbackRouter(handler)

		rec := doRequest(r, "POST", "/feedback",
			`{"stars":9,"category":"elogio"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestFeedbackHandler_ListPublicFeedback(t *testing.T) {
	feedbackSvc := &mockFeedbackService{
		listPublicFeedbackFn: func(page pagination.PageRequest) (*pagination.PageResponse[models.Feedback], error) {
			if page.Page != 2 || page.PageSize != 5 {
				t.Errorf("expected page 2 size 5, got %d/%d", page.Page, page.PageSize)
			}
			resp := pagination.NewPageResponse([]models.Feedback{
				{Stars: 5, Mode: models.FeedbackModePublic},
			}, page.Page, page.PageSize, 1)
			return &resp, nil
		},
	}
	handler := NewFeedbackHandler(feedbackSvc)
	r := setupFeedbackRouter(handler)

	rec := doRequest(r, "GET", "/feedback/public?page=2&page_size=5", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	result := parseJSON(t, rec)
	if result["total_items"].(float64) != 1 {
		t.Errorf("expected 1 total item, got %v", result["total_items"])
	}
}

func TestFeedbackHandler_CreateContactMessage(t *testing.T) {
	t.Run("returns 201 on success", func(t *testing.T) {
		handler := NewFeedbackHandler(&mockFeedbackService{})
		r := setupFeedbackRouter(handler)

		rec := doRequest(r, "POST", "/contact",
			`{"name":"João","email":"joao@example.com","message":"Olá"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
	})

	t.Run("returns 400 on invalid email", func(t *testing.T) {
		handler := NewFeedbackHandler(&mockFeedbackService{})
		r := setupFeedbackRouter(handler)

		rec := doRequest(r, "POST", "/contact",
			`{"name":"João","email":"not-an-email","message":"Olá"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}
