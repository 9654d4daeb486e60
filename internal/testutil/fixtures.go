package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"planvida/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email.
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestPlan creates an empty life plan for the given user.
func CreateTestPlan(t *testing.T, db *gorm.DB, userID string) *models.Plan {
	t.Helper()

	plan := &models.Plan{
		UserID: userID,
		Name:   fmt.Sprintf("Test Plan %d", nextID()),
	}
	if err := db.Create(plan).Error; err != nil {
		t.Fatalf("failed to create test plan: %v", err)
	}
	return plan
}

// CreateTestItem creates a plan item with the given category, name, value and
// date. Value is parsed as a decimal string; meta defaults to zero.
func CreateTestItem(t *testing.T, db *gorm.DB, planID string, category models.Category, name, value string, date models.DateOnly) *models.PlanItem {
	t.Helper()

	item := &models.PlanItem{
		PlanID:   planID,
		Category: category,
		Name:     name,
		Value:    decimal.RequireFromString(value),
		Meta:     decimal.Zero,
		Date:     date,
	}
	if err := db.Create(item).Error; err != nil {
		t.Fatalf("failed to create test plan item: %v", err)
	}
	return item
}

// CreateTestFeedback creates a feedback entry with the given visibility mode.
func CreateTestFeedback(t *testing.T, db *gorm.DB, userID string, mode models.FeedbackMode) *models.Feedback {
	t.Helper()

	feedback := &models.Feedback{
		UserID:   userID,
		Stars:    5,
		Comment:  fmt.Sprintf("Test feedback %d", nextID()),
		Category: models.FeedbackElogio,
		Mode:     mode,
	}
	if err := db.Create(feedback).Error; err != nil {
		t.Fatalf("failed to create test feedback: %v", err)
	}
	return feedback
}

// Date builds a DateOnly for fixtures.
func Date(year int, month time.Month, day int) models.DateOnly {
	return models.NewDate(year, month, day)
}
