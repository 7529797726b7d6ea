package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/fixedcost"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

// FixedCostController handles fixed cost and override endpoints.
type FixedCostController struct {
	listUseCase           *fixedcost.ListFixedCostsUseCase
	createUseCase         *fixedcost.CreateFixedCostUseCase
	updateUseCase         *fixedcost.UpdateFixedCostUseCase
	deleteUseCase         *fixedcost.DeleteFixedCostUseCase
	occurrencesUseCase    *fixedcost.PreviewOccurrencesUseCase
	listOverridesUseCase  *fixedcost.ListOverridesUseCase
	upsertOverrideUseCase *fixedcost.UpsertOverrideUseCase
	deleteOverrideUseCase *fixedcost.DeleteOverrideUseCase
	dates                 dateParser
}

// NewFixedCostController creates a new fixed cost controller instance.
func NewFixedCostController(
	listUseCase *fixedcost.ListFixedCostsUseCase,
	createUseCase *fixedcost.CreateFixedCostUseCase,
	updateUseCase *fixedcost.UpdateFixedCostUseCase,
	deleteUseCase *fixedcost.DeleteFixedCostUseCase,
	occurrencesUseCase *fixedcost.PreviewOccurrencesUseCase,
	listOverridesUseCase *fixedcost.ListOverridesUseCase,
	upsertOverrideUseCase *fixedcost.UpsertOverrideUseCase,
	deleteOverrideUseCase *fixedcost.DeleteOverrideUseCase,
	clock adapter.Clock,
) *FixedCostController {
	return &FixedCostController{
		listUseCase:           listUseCase,
		createUseCase:         createUseCase,
		updateUseCase:         updateUseCase,
		deleteUseCase:         deleteUseCase,
		occurrencesUseCase:    occurrencesUseCase,
		listOverridesUseCase:  listOverridesUseCase,
		upsertOverrideUseCase: upsertOverrideUseCase,
		deleteOverrideUseCase: deleteOverrideUseCase,
		dates:                 dateParser{clock: clock},
	}
}

// List handles GET /fixed-costs requests.
func (c *FixedCostController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), fixedcost.ListFixedCostsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedCostListResponse(output.FixedCosts))
}

// Create handles POST /fixed-costs requests.
func (c *FixedCostController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateFixedCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeFixedCostNameRequired))
		return
	}

	startDate, ok := c.dates.parse(req.StartDate)
	if !ok {
		c.invalidDate(ctx, "start_date")
		return
	}
	endDate, ok := c.dates.parseOptional(req.EndDate)
	if !ok {
		c.invalidDate(ctx, "end_date")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), fixedcost.CreateFixedCostInput{
		UserID:    userID,
		Name:      req.Name,
		Amount:    decimal.NewFromFloat(req.Amount),
		Rhythm:    req.Rhythm,
		StartDate: startDate,
		EndDate:   endDate,
		Category:  req.Category,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToFixedCostResponse(output.FixedCost))
}

// Update handles PATCH /fixed-costs/:id requests.
func (c *FixedCostController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	fixedCostID, ok := pathID(ctx, "id", "fixed cost")
	if !ok {
		return
	}

	var req dto.UpdateFixedCostRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
		return
	}

	startDate, ok := c.dates.parseOptional(req.StartDate)
	if !ok {
		c.invalidDate(ctx, "start_date")
		return
	}
	endDate, ok := c.dates.parseOptional(req.EndDate)
	if !ok {
		c.invalidDate(ctx, "end_date")
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), fixedcost.UpdateFixedCostInput{
		FixedCostID:  fixedCostID,
		UserID:       userID,
		Name:         req.Name,
		Amount:       decimalPtr(req.Amount),
		Rhythm:       req.Rhythm,
		StartDate:    startDate,
		EndDate:      endDate,
		ClearEndDate: req.ClearEndDate,
		Category:     req.Category,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToFixedCostResponse(output.FixedCost))
}

// Delete handles DELETE /fixed-costs/:id requests.
func (c *FixedCostController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	fixedCostID, ok := pathID(ctx, "id", "fixed cost")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), fixedcost.DeleteFixedCostInput{
		FixedCostID: fixedCostID,
		UserID:      userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// Occurrences handles GET /fixed-costs/:id/occurrences requests.
func (c *FixedCostController) Occurrences(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	fixedCostID, ok := pathID(ctx, "id", "fixed cost")
	if !ok {
		return
	}

	startDate, ok := c.dates.queryDate(ctx, "start_date")
	if !ok {
		return
	}
	endDate, ok := c.dates.queryDate(ctx, "end_date")
	if !ok {
		return
	}
	if startDate == nil {
		writeError(ctx, http.StatusBadRequest, "start_date is required", string(domainerror.ErrCodeMissingStartDate))
		return
	}
	if endDate == nil {
		writeError(ctx, http.StatusBadRequest, "end_date is required", string(domainerror.ErrCodeMissingEndDate))
		return
	}

	output, err := c.occurrencesUseCase.Execute(ctx.Request.Context(), fixedcost.PreviewOccurrencesInput{
		FixedCostID: fixedCostID,
		UserID:      userID,
		StartDate:   *startDate,
		EndDate:     *endDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOccurrenceListResponse(output.FixedCost, output.Occurrences))
}

// ListOverrides handles GET /fixed-costs/:id/overrides requests.
func (c *FixedCostController) ListOverrides(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	fixedCostID, ok := pathID(ctx, "id", "fixed cost")
	if !ok {
		return
	}

	output, err := c.listOverridesUseCase.Execute(ctx.Request.Context(), fixedcost.ListOverridesInput{
		FixedCostID: fixedCostID,
		UserID:      userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverrideListResponse(output.Overrides))
}

// UpsertOverride handles PUT /fixed-costs/:id/overrides requests.
func (c *FixedCostController) UpsertOverride(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	fixedCostID, ok := pathID(ctx, "id", "fixed cost")
	if !ok {
		return
	}

	var req dto.UpsertOverrideRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidFixedCostDate))
		return
	}

	originalDate, ok := c.dates.parse(req.OriginalDate)
	if !ok {
		c.invalidDate(ctx, "original_date")
		return
	}
	newDate, ok := c.dates.parseOptional(req.NewDate)
	if !ok {
		c.invalidDate(ctx, "new_date")
		return
	}

	output, err := c.upsertOverrideUseCase.Execute(ctx.Request.Context(), fixedcost.UpsertOverrideInput{
		FixedCostID:  fixedCostID,
		UserID:       userID,
		OriginalDate: originalDate,
		NewDate:      newDate,
		NewAmount:    decimalPtr(req.NewAmount),
		Skipped:      req.Skipped,
		Notes:        req.Notes,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverrideResponse(output.Override))
}

// DeleteOverride handles DELETE /fixed-costs/:id/overrides/:date requests.
func (c *FixedCostController) DeleteOverride(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	fixedCostID, ok := pathID(ctx, "id", "fixed cost")
	if !ok {
		return
	}
	originalDate, ok := c.dates.parse(ctx.Param("date"))
	if !ok {
		c.invalidDate(ctx, "date")
		return
	}

	_, err := c.deleteOverrideUseCase.Execute(ctx.Request.Context(), fixedcost.DeleteOverrideInput{
		FixedCostID:  fixedCostID,
		UserID:       userID,
		OriginalDate: originalDate,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *FixedCostController) invalidDate(ctx *gin.Context, field string) {
	writeError(ctx, http.StatusBadRequest, "Invalid "+field+": use YYYY-MM-DD or DD.MM.YYYY", string(domainerror.ErrCodeInvalidFixedCostDate))
}
