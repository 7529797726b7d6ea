package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	categoryrule "github.com/liq-planung/backend/internal/application/usecase/category_rule"
	domainerror "github.com/liq-planung/backend/internal/domain/error"
	"github.com/liq-planung/backend/internal/integration/entrypoint/dto"
)

// CategoryRuleController handles category rule endpoints.
type CategoryRuleController struct {
	listUseCase   *categoryrule.ListCategoryRulesUseCase
	createUseCase *categoryrule.CreateCategoryRuleUseCase
	deleteUseCase *categoryrule.DeleteCategoryRuleUseCase
	testUseCase   *categoryrule.TestPatternUseCase
}

// NewCategoryRuleController creates a new category rule controller instance.
func NewCategoryRuleController(
	listUseCase *categoryrule.ListCategoryRulesUseCase,
	createUseCase *categoryrule.CreateCategoryRuleUseCase,
	deleteUseCase *categoryrule.DeleteCategoryRuleUseCase,
	testUseCase *categoryrule.TestPatternUseCase,
) *CategoryRuleController {
	return &CategoryRuleController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		deleteUseCase: deleteUseCase,
		testUseCase:   testUseCase,
	}
}

// List handles GET /category-rules requests.
func (c *CategoryRuleController) List(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), categoryrule.ListCategoryRulesInput{UserID: userID})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCategoryRuleListResponse(output.Rules))
}

// Create handles POST /category-rules requests.
func (c *CategoryRuleController) Create(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.CreateCategoryRuleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body", string(domainerror.ErrCodeMissingRuleFields))
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), categoryrule.CreateCategoryRuleInput{
		UserID:   userID,
		Pattern:  req.Pattern,
		Category: req.Category,
		Priority: req.Priority,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCategoryRuleResponse(output.Rule))
}

// Delete handles DELETE /category-rules/:id requests.
func (c *CategoryRuleController) Delete(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}
	ruleID, ok := pathID(ctx, "id", "rule")
	if !ok {
		return
	}

	err := c.deleteUseCase.Execute(ctx.Request.Context(), categoryrule.DeleteCategoryRuleInput{
		RuleID: ruleID,
		UserID: userID,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// TestPattern handles POST /category-rules/test requests.
func (c *CategoryRuleController) TestPattern(ctx *gin.Context) {
	userID, ok := requireUser(ctx)
	if !ok {
		return
	}

	var req dto.TestPatternRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		writeError(ctx, http.StatusBadRequest, "Invalid request body", string(domainerror.ErrCodeMissingRuleFields))
		return
	}

	output, err := c.testUseCase.Execute(ctx.Request.Context(), categoryrule.TestPatternInput{
		UserID:  userID,
		Pattern: req.Pattern,
		Limit:   req.Limit,
	})
	if err != nil {
		handleError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTestPatternResponse(output))
}
