// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"planvida/internal/models"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("plan_category", validatePlanCategory)
		_ = v.RegisterValidation("plan_item_date", validatePlanItemDate)
		_ = v.RegisterValidation("feedback_category", validateFeedbackCategory)
		_ = v.RegisterValidation("feedback_mode", validateFeedbackMode)
	}
}

func validatePlanCategory(fl validator.FieldLevel) bool {
	_, ok := models.ParseCategory(fl.Field().String())
	return ok
}

func validatePlanItemDate(fl validator.FieldLevel) bool {
	_, err := models.ParseDate(fl.Field().String())
	return err == nil
}

func validateFeedbackCategory(fl validator.FieldLevel) bool {
	switch models.FeedbackCategory(fl.Field().String()) {
	case models.FeedbackProblemaTecnico, models.FeedbackSugestaoMelhoria, models.FeedbackElogio:
		return true
	}
	return false
}

func validateFeedbackMode(fl validator.FieldLevel) bool {
	switch models.FeedbackMode(fl.Field().String()) {
	case models.FeedbackModePublic, models.FeedbackModePrivate:
		return true
	}
	return false
}
