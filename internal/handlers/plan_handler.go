package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "planvida/internal/errors"
	"planvida/internal/models"
	"planvida/internal/report"
	"planvida/internal/services"
)

// PlanHandler handles life-plan requests
type PlanHandler struct {
	planService services.PlanServicer
}

// NewPlanHandler creates a new PlanHandler
func NewPlanHandler(planService services.PlanServicer) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// PlanItemPayload represents one financial entry in a plan request. Value is
// a pointer so an absent value is rejected rather than stored as 0.00; an
// explicit "0.00" stays valid.
type PlanItemPayload struct {
	Name  string           `json:"name" binding:"required,max=100"`
	Value *decimal.Decimal `json:"value" binding:"required"`
	Date  string           `json:"date" binding:"required,plan_item_date"`
	Meta  *decimal.Decimal `json:"meta"`
}

// CategoryItems wraps the item list for one category
type CategoryItems struct {
	Items []PlanItemPayload `json:"items" binding:"omitempty,dive"`
}

// CreatePlanRequest represents the plan creation request payload.
// ItemsForPlan is keyed by category name; when omitted or empty the plan is
// seeded with the default item catalog for the requested years.
type CreatePlanRequest struct {
	Name         string                   `json:"name" binding:"required,max=100"`
	Years        []int                    `json:"years" binding:"omitempty,dive,min=1900,max=2200"`
	ItemsForPlan map[string]CategoryItems `json:"items_for_plan" binding:"omitempty,dive,keys,plan_category,endkeys"`
}

// UpdatePlanRequest represents the plan update request payload.
// When ItemsForPlan is present the plan's items are replaced wholesale.
type UpdatePlanRequest struct {
	Name         string                   `json:"name" binding:"omitempty,max=100"`
	ItemsForPlan map[string]CategoryItems `json:"items_for_plan" binding:"omitempty,dive,keys,plan_category,endkeys"`
}

// PlanItemResponse represents one plan item in a response
type PlanItemResponse struct {
	ID       string          `json:"id"`
	Category string          `json:"category"`
	Name     string          `json:"name"`
	Value    decimal.Decimal `json:"value"`
	Meta     decimal.Decimal `json:"meta"`
	Date     string          `json:"date"`
}

// PlanResponse represents a life plan with its derived aggregates
type PlanResponse struct {
	ID               string                     `json:"id"`
	Name             string                     `json:"name"`
	UserID           string                     `json:"user_id"`
	Items            []PlanItemResponse         `json:"items"`
	TotalPerCategory map[string]decimal.Decimal `json:"total_per_category"`
	ProfitLossByDate []report.DateProfitLoss    `json:"profit_loss_by_date"`
	CreatedAt        time.Time                  `json:"created_at"`
	UpdatedAt        time.Time                  `json:"updated_at"`
}

func convertItemPayloads(itemsForPlan map[string]CategoryItems) services.PlanItemsInput {
	if itemsForPlan == nil {
		return nil
	}
	input := make(services.PlanItemsInput, len(itemsForPlan))
	for category, group := range itemsForPlan {
		entries := make([]services.PlanItemInput, 0, len(group.Items))
		for _, item := range group.Items {
			value := decimal.Zero
			if item.Value != nil {
				value = *item.Value
			}
			entries = append(entries, services.PlanItemInput{
				Name:  item.Name,
				Value: value,
				Date:  item.Date,
				Meta:  item.Meta,
			})
		}
		input[category] = entries
	}
	return input
}

func planResponse(plan *models.Plan) PlanResponse {
	items := make([]PlanItemResponse, 0, len(plan.Items))
	for _, item := range plan.Items {
		items = append(items, PlanItemResponse{
			ID:       item.ID,
			Category: string(item.Category),
			Name:     item.Name,
			Value:    item.Value,
			Meta:     item.Meta,
			Date:     item.Date.String(),
		})
	}

	totals := make(map[string]decimal.Decimal)
	for category, total := range report.TotalsByCategory(plan.Items) {
		totals[string(category)] = total
	}

	return PlanResponse{
		ID:               plan.ID,
		Name:             plan.Name,
		UserID:           plan.UserID,
		Items:            items,
		TotalPerCategory: totals,
		ProfitLossByDate: report.ProfitLossByDate(plan.Items),
		CreatedAt:        plan.CreatedAt,
		UpdatedAt:        plan.UpdatedAt,
	}
}

// CreatePlan handles life plan creation
// @Summary     Create a life plan
// @Description Create the user's life plan, seeding default items when none are provided. Creating a plan with the name of the existing plan returns that plan.
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreatePlanRequest true "Plan data"
// @Success     201 {object} PlanResponse "Plan created"
// @Failure     400 {object} ErrorResponse "Invalid input or plan already exists"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [post]
func (h *PlanHandler) CreatePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.CreatePlan(userID, req.Name, convertItemPayloads(req.ItemsForPlan), req.Years)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, planResponse(plan))
}

// GetPlans lists the user's life plans
// @Summary     List life plans
// @Description Get the authenticated user's life plans with derived aggregates
// @Tags        plans
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} PlanResponse "Plans"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans [get]
func (h *PlanHandler) GetPlans(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	plans, err := h.planService.GetUserPlans(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	responses := make([]PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, planResponse(&plans[i]))
	}
	c.JSON(http.StatusOK, gin.H{"plans": responses})
}

// GetPlan returns one life plan
// @Summary     Get a life plan
// @Description Get a life plan by ID with its items and derived aggregates
// @Tags        plans
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {object} PlanResponse "Plan"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [get]
func (h *PlanHandler) GetPlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	plan, err := h.planService.GetPlanByID(userID, c.Param("id"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, planResponse(plan))
}

// UpdatePlan updates a life plan
// @Summary     Update a life plan
// @Description Rename a plan and/or replace its items wholesale
// @Tags        plans
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Param       request body UpdatePlanRequest true "Plan update data"
// @Success     200 {object} PlanResponse "Updated plan"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [put]
func (h *PlanHandler) UpdatePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	plan, err := h.planService.UpdatePlan(userID, c.Param("id"), req.Name, convertItemPayloads(req.ItemsForPlan))
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, planResponse(plan))
}

// DeletePlan deletes a life plan
// @Summary     Delete a life plan
// @Description Delete a life plan and all of its items
// @Tags        plans
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     204 "Plan deleted"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id} [delete]
func (h *PlanHandler) DeletePlan(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.planService.DeletePlan(userID, c.Param("id")); err != nil {
		respondWithError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportCSV streams a plan's items as a CSV attachment
// @Summary     Export plan as CSV
// @Description Download all plan items as a CSV file
// @Tags        plans
// @Produce     text/csv
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Success     200 {string} string "CSV content"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id}/export-csv [get]
func (h *PlanHandler) ExportCSV(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planID := c.Param("id")
	data, err := h.planService.ExportCSV(userID, planID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("life_plan_%s_%s.csv", planID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv", data)
}

// ExportPDF streams a plan's yearly report as a PDF attachment
// @Summary     Export plan as PDF
// @Description Download the plan's pivoted report as a PDF file
// @Tags        plans
// @Produce     application/pdf
// @Security    BearerAuth
// @Param       id path string true "Plan ID"
// @Param       dark_mode query bool false "Render with the dark theme"
// @Success     200 {string} string "PDF content"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Plan not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /plans/{id}/export-pdf [get]
func (h *PlanHandler) ExportPDF(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	planID := c.Param("id")
	darkMode := c.Query("dark_mode") == "true"
	data, err := h.planService.ExportPDF(userID, planID, darkMode)
	if err != nil {
		respondWithError(c, err)
		return
	}

	filename := fmt.Sprintf("life_plan_%s_%s.pdf", planID, time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", data)
}
