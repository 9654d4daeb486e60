package services

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "planvida/internal/errors"
	"planvida/internal/models"
	"planvida/internal/report"
)

// planService handles life-plan business logic.
type planService struct {
	db *gorm.DB
}

// NewPlanService creates a new PlanServicer.
func NewPlanService(db *gorm.DB) PlanServicer {
	return &planService{db: db}
}

// itemOrder keeps Items in storage-retrieval (insertion) order wherever a
// plan is loaded; the CSV export contract depends on it.
func itemOrder(db *gorm.DB) *gorm.DB {
	return db.Order("plan_items.created_at ASC, plan_items.id ASC")
}

// CreatePlan creates a plan for the user. When items is empty the plan is
// seeded with the default catalog for the given years (current year when
// none are supplied). Creation is idempotent by name: if the user already
// has a plan with this exact name it is returned unchanged; a plan with a
// different name is a conflict. The unique index on plans.user_id is the
// authoritative enforcement; a duplicate-key error on the race path maps to
// the same conflict.
func (s *planService) CreatePlan(userID, name string, items PlanItemsInput, years []int) (*models.Plan, error) {
	var existing models.Plan
	err := s.db.Where("user_id = ?", userID).First(&existing).Error
	if err == nil {
		if existing.Name == name {
			return s.GetPlanByID(userID, existing.ID)
		}
		return nil, apperrors.ErrPlanExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var newItems []models.PlanItem
	if len(items) > 0 {
		newItems, err = convertItems(items)
		if err != nil {
			return nil, err
		}
	} else {
		if len(years) == 0 {
			years = []int{time.Now().Year()}
		}
		newItems = defaultPlanItems(years)
	}

	plan := &models.Plan{UserID: userID, Name: name}
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(plan).Error; err != nil {
			return err
		}
		for i := range newItems {
			newItems[i].PlanID = plan.ID
		}
		if len(newItems) > 0 {
			if err := tx.Create(&newItems).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrPlanExists
		}
		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetPlanByID(userID, plan.ID)
}

// GetUserPlans returns the user's plans with items loaded.
func (s *planService) GetUserPlans(userID string) ([]models.Plan, error) {
	var plans []models.Plan
	if err := s.db.Preload("Items", itemOrder).Where("user_id = ?", userID).Find(&plans).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return plans, nil
}

// GetPlanByID returns a plan by ID if it belongs to the user. The ownership
// filter doubles as the existence check so non-owned plan IDs are
// indistinguishable from missing ones.
func (s *planService) GetPlanByID(userID, planID string) (*models.Plan, error) {
	var plan models.Plan
	err := s.db.Preload("Items", itemOrder).
		Where("id = ? AND user_id = ?", planID, userID).
		First(&plan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPlanNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &plan, nil
}

// UpdatePlan replaces the plan's name and, when items are supplied, its
// entire item set. Replacement is delete-all-then-insert inside one
// transaction: a concurrent reader sees the fully-old or fully-new set,
// never a mix. Items absent from the new payload are permanently lost.
func (s *planService) UpdatePlan(userID, planID, name string, items PlanItemsInput) (*models.Plan, error) {
	plan, err := s.GetPlanByID(userID, planID)
	if err != nil {
		return nil, err
	}

	var newItems []models.PlanItem
	if items != nil {
		newItems, err = convertItems(items)
		if err != nil {
			return nil, err
		}
		for i := range newItems {
			newItems[i].PlanID = plan.ID
		}
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if name != "" && name != plan.Name {
			if err := tx.Model(&models.Plan{}).Where("id = ?", plan.ID).Update("name", name).Error; err != nil {
				return err
			}
		}
		if items != nil {
			if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.PlanItem{}).Error; err != nil {
				return err
			}
			if len(newItems) > 0 {
				if err := tx.Create(&newItems).Error; err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return s.GetPlanByID(userID, planID)
}

// DeletePlan removes the plan and, by cascade, all of its items.
func (s *planService) DeletePlan(userID, planID string) error {
	plan, err := s.GetPlanByID(userID, planID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("plan_id = ?", plan.ID).Delete(&models.PlanItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Plan{}, "id = ?", plan.ID).Error
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// ExportCSV renders the plan's items as a flat CSV document.
func (s *planService) ExportCSV(userID, planID string) ([]byte, error) {
	plan, err := s.GetPlanByID(userID, planID)
	if err != nil {
		return nil, err
	}

	data, err := report.CSV(plan.Items)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}

// ExportPDF renders the plan's sectioned report table as a PDF document.
func (s *planService) ExportPDF(userID, planID string, darkMode bool) ([]byte, error) {
	plan, err := s.GetPlanByID(userID, planID)
	if err != nil {
		return nil, err
	}

	table := report.BuildTable(plan.Name, plan.Items)
	data, err := report.RenderPDF(table, report.ThemeFor(darkMode))
	if err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return data, nil
}

// convertItems validates and flattens the items_for_plan payload into model
// rows. Category strings must belong to the closed enum; dates must be
// YYYY-MM-DD; a missing meta becomes zero.
func convertItems(items PlanItemsInput) ([]models.PlanItem, error) {
	grouped := make(map[models.Category][]PlanItemInput, len(items))
	for rawCategory, entries := range items {
		category, ok := models.ParseCategory(rawCategory)
		if !ok {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidCategory, "unknown category: "+rawCategory)
		}
		grouped[category] = append(grouped[category], entries...)
	}

	// Flatten in the canonical category order so insertion order, and with
	// it CSV retrieval order, is deterministic.
	var result []models.PlanItem
	for _, category := range models.ReportCategoryOrder {
		for _, entry := range grouped[category] {
			if entry.Name == "" {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "item name is required")
			}
			date, err := models.ParseDate(entry.Date)
			if err != nil {
				return nil, apperrors.WithMessage(apperrors.ErrInvalidItemDate, "invalid item date: "+entry.Date)
			}
			meta := decimal.Zero
			if entry.Meta != nil {
				meta = *entry.Meta
			}
			result = append(result, models.PlanItem{
				Category: category,
				Name:     entry.Name,
				Value:    entry.Value,
				Meta:     meta,
				Date:     date,
			})
		}
	}
	return result, nil
}
