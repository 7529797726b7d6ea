package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/balance"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

// BalanceController handles the account balance endpoints.
type BalanceController struct {
	getUseCase *balance.GetBalanceUseCase
	setUseCase *balance.SetBalanceUseCase
	dates      dateParser
}

// NewBalanceController creates a new balance controller instance.
func NewBalanceController(
	getUseCase *balance.GetBalanceUseCase,
	setUseCase *balance.SetBalanceUseCase,
	clock adapter.Clock,
) *BalanceController {
	return &BalanceController{
		getUseCase: getUseCase,
		setUseCase: setUseCase,
		dates:      dateParser{clock: clock},
	}
}

// Get handles GET /balance requests.
func (c *BalanceController) Get(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), balance.GetBalanceInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output.Snapshot))
}

// Set handles PUT /balance requests.
func (c *BalanceController) Set(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.SetBalanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidBalance))
		return
	}

	date, ok := c.dates.parseOptional(req.Date)
	if !ok {
		writeError(ctx, http.StatusBadRequest, "Invalid date: use YYYY-MM-DD or DD.MM.YYYY", string(domainerror.ErrCodeInvalidDateFormat))
		return
	}

	output, err := c.setUseCase.Execute(ctx.Request.Context(), balance.SetBalanceInput{
		UserID: userID,
		Amount: decimalPtr(req.Amount),
		Date:   date,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToBalanceResponse(output.Snapshot))
}
