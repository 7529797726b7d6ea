// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/transaction"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

// TransactionController handles transaction-related endpoints.
type TransactionController struct {
	listUseCase   *transaction.ListTransactionsUseCase
	createUseCase *transaction.CreateTransactionUseCase
	importUseCase *transaction.ImportTransactionsUseCase
	settleUseCase *transaction.SettleTransactionUseCase
	deleteUseCase *transaction.DeleteTransactionUseCase
	dates         dateParser
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	listUseCase *transaction.ListTransactionsUseCase,
	createUseCase *transaction.CreateTransactionUseCase,
	importUseCase *transaction.ImportTransactionsUseCase,
	settleUseCase *transaction.SettleTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	clock adapter.Clock,
) *TransactionController {
	return &TransactionController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		importUseCase: importUseCase,
		settleUseCase: settleUseCase,
		deleteUseCase: deleteUseCase,
		dates:         dateParser{clock: clock},
	}
}

// List handles GET /transactions requests.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
		Search: ctx.Query("search"),
	}

	if input.StartDate, ok = c.dates.queryDate(ctx, "start_date"); !ok {
		return
	}
	if input.EndDate, ok = c.dates.queryDate(ctx, "end_date"); !ok {
		return
	}

	if directionStr := ctx.Query("direction"); directionStr != "" {
		direction := entity.Direction(directionStr)
		if !direction.IsValid() {
			writeError(ctx, http.StatusBadRequest, "direction must be: Incoming or Outgoing", string(domainerror.ErrCodeInvalidDirection))
			return
		}
		input.Direction = &direction
	}

	openOnly, ok := queryBool(ctx, "open_only")
	if !ok {
		return
	}
	input.OpenOnly = openOnly != nil && *openOnly

	includeSimulated, ok := queryBool(ctx, "include_simulated")
	if !ok {
		return
	}
	input.IncludeSimulated = includeSimulated != nil && *includeSimulated

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output))
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	date, ok := c.dates.parse(req.Date)
	if !ok {
		writeError(ctx, http.StatusBadRequest, "Invalid date: use YYYY-MM-DD or DD.MM.YYYY", string(domainerror.ErrCodeInvalidTransactionDate))
		return
	}

	var fixedCostID *uuid.UUID
	if req.FixedCostID != nil && *req.FixedCostID != "" {
		id, err := uuid.Parse(*req.FixedCostID)
		if err != nil {
			writeError(ctx, http.StatusBadRequest, "Invalid fixed cost ID format", "")
			return
		}
		fixedCostID = &id
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), transaction.CreateTransactionInput{
		UserID:       userID,
		Date:         date,
		Amount:       decimal.NewFromFloat(req.Amount),
		Direction:    entity.Direction(req.Direction),
		Details:      req.Details,
		Category:     req.Category,
		IsSimulation: req.IsSimulation,
		Settled:      req.Settled,
		FixedCostID:  fixedCostID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// Import handles POST /transactions/import requests.
// Rows that cannot be parsed are skipped and reported; the rest are stored.
func (c *TransactionController) Import(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.ImportTransactionsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeMissingTransactionFields))
		return
	}

	output, err := c.importUseCase.Execute(ctx.Request.Context(), transaction.ImportTransactionsInput{
		UserID:       userID,
		Rows:         dto.ToImportRows(req.Rows),
		IsSimulation: req.IsSimulation,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToImportTransactionsResponse(output))
}

// Settle handles POST /transactions/:id/settle requests.
func (c *TransactionController) Settle(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx, "id", "transaction")
	if !ok {
		return
	}

	var req dto.SettleTransactionRequest
	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&req); err != nil {
			writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), "")
			return
		}
	}
	settled := true
	if req.Settled != nil {
		settled = *req.Settled
	}

	output, err := c.settleUseCase.Execute(ctx.Request.Context(), transaction.SettleTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Settled:       settled,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	transactionID, ok := pathID(ctx, "id", "transaction")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
