package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type BudgetController struct {
	budgetService services.BudgetServiceInterface
}

func NewBudgetController(budgetService services.BudgetServiceInterface) *BudgetController {
	return &BudgetController{
		budgetService: budgetService,
	}
}

// GetBudgetSummary godoc
// @Summary Get the categorized cost summary of a trip
// @Description Aggregates transport, stay, meals, activity and miscellaneous costs and flags an exceeded budget. An optional limit query overrides the trip's own budget.
// @Tags Budget
// @Produce json
// @Param tripId path string true "Trip ID"
// @Param limit query number false "Budget limit override"
// @Success 200 {object} response_models.BudgetSummaryResponse
// @Security BearerAuth
// @Router /budget/trips/{tripId} [get]
func (b *BudgetController) GetBudgetSummary(c *gin.Context) {

	var overrideLimit *decimal.Decimal
	if raw := c.Query("limit"); raw != "" {
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil || value < 0 {
			utils.RespondError(c, http.StatusBadRequest, "Invalid budget limit")
			return
		}
		d := decimal.NewFromFloat(value)
		overrideLimit = &d
	}

	summary, err := b.budgetService.GetBudgetSummary(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), overrideLimit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Budget summary computed successfully")
}
