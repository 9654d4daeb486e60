package services

import (
	"github.com/shopspring/decimal"

	"planvida/internal/models"
	"planvida/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, firstName, lastName string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// PlanItemInput is one financial entry supplied by a client when creating a
// plan or replacing its items. Date is the raw "YYYY-MM-DD" string; Meta may
// be nil and is coerced to zero.
type PlanItemInput struct {
	Name  string
	Value decimal.Decimal
	Date  string
	Meta  *decimal.Decimal
}

// PlanItemsInput holds item payloads grouped by raw category string, the
// shape of the API's items_for_plan field. Category strings are validated
// against the closed enum by the service.
type PlanItemsInput map[string][]PlanItemInput

// PlanServicer defines the contract for life-plan business logic.
type PlanServicer interface {
	CreatePlan(userID, name string, items PlanItemsInput, years []int) (*models.Plan, error)
	GetUserPlans(userID string) ([]models.Plan, error)
	GetPlanByID(userID, planID string) (*models.Plan, error)
	UpdatePlan(userID, planID, name string, items PlanItemsInput) (*models.Plan, error)
	DeletePlan(userID, planID string) error
	ExportCSV(userID, planID string) ([]byte, error)
	ExportPDF(userID, planID string, darkMode bool) ([]byte, error)
}

// FeedbackServicer defines the contract for feedback and contact-form logic.
type FeedbackServicer interface {
	CreateFeedback(userID string, stars int, comment string, category models.FeedbackCategory, mode models.FeedbackMode) (*models.Feedback, error)
	ListPublicFeedback(page pagination.PageRequest) (*pagination.PageResponse[models.Feedback], error)
	CreateContactMessage(name, email, message string) (*models.ContactMessage, error)
}
