package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/liq-planung/backend/internal/application/adapter"
	"github.com/liq-planung/backend/internal/application/usecase/simulation"
	"github.com/liq-planung/backend/internal/domain/entity"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

// SimulationController handles what-if simulation endpoints.
type SimulationController struct {
	listUseCase   *simulation.ListSimulationsUseCase
	createUseCase *simulation.CreateSimulationUseCase
	updateUseCase *simulation.UpdateSimulationUseCase
	deleteUseCase *simulation.DeleteSimulationUseCase
	dates         dateParser
}

// NewSimulationController creates a new simulation controller instance.
func NewSimulationController(
	listUseCase *simulation.ListSimulationsUseCase,
	createUseCase *simulation.CreateSimulationUseCase,
	updateUseCase *simulation.UpdateSimulationUseCase,
	deleteUseCase *simulation.DeleteSimulationUseCase,
	clock adapter.Clock,
) *SimulationController {
	return &SimulationController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
		dates:         dateParser{clock: clock},
	}
}

// List handles GET /simulations requests.
func (c *SimulationController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), simulation.ListSimulationsInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationListResponse(output.Simulations))
}

// Create handles POST /simulations requests.
func (c *SimulationController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateSimulationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidSimulation))
		return
	}

	date, ok := c.dates.parse(req.Date)
	if !ok {
		c.invalidDate(ctx, "date")
		return
	}
	endDate, ok := c.dates.parseOptional(req.EndDate)
	if !ok {
		c.invalidDate(ctx, "end_date")
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), simulation.CreateSimulationInput{
		UserID:    userID,
		Name:      req.Name,
		Amount:    decimal.NewFromFloat(req.Amount),
		Direction: entity.Direction(req.Direction),
		Date:      date,
		Recurring: req.Recurring,
		Interval:  req.Interval,
		EndDate:   endDate,
		Category:  req.Category,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToSimulationResponse(output.Simulation))
}

// Update handles PATCH /simulations/:id requests, including toggling active.
func (c *SimulationController) Update(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simulationID, ok := pathID(ctx, "id", "simulation")
	if !ok {
		return
	}

	var req dto.UpdateSimulationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body: "+err.Error(), string(domainerror.ErrCodeInvalidSimulation))
		return
	}

	date, ok := c.dates.parseOptional(req.Date)
	if !ok {
		c.invalidDate(ctx, "date")
		return
	}
	endDate, ok := c.dates.parseOptional(req.EndDate)
	if !ok {
		c.invalidDate(ctx, "end_date")
		return
	}

	input := simulation.UpdateSimulationInput{
		SimulationID: simulationID,
		UserID:       userID,
		Name:         req.Name,
		Amount:       decimalPtr(req.Amount),
		Date:         date,
		Recurring:    req.Recurring,
		Interval:     req.Interval,
		EndDate:      endDate,
		ClearEndDate: req.ClearEndDate,
		Active:       req.Active,
		Category:     req.Category,
	}
	if req.Direction != nil {
		direction := entity.Direction(*req.Direction)
		input.Direction = &direction
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSimulationResponse(output.Simulation))
}

// Delete handles DELETE /simulations/:id requests.
func (c *SimulationController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	simulationID, ok := pathID(ctx, "id", "simulation")
	if !ok {
		return
	}

	_, err := c.deleteUseCase.Execute(ctx.Request.Context(), simulation.DeleteSimulationInput{
		SimulationID: simulationID,
		UserID:       userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (c *SimulationController) invalidDate(ctx *gin.Context, field string) {
	writeError(ctx, http.StatusBadRequest, "Invalid "+field+": use YYYY-MM-DD or DD.MM.YYYY", string(domainerror.ErrCodeInvalidSimulation))
}
