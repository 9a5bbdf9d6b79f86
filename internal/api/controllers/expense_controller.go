package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"wayfarer/internal/models/request_models"
	"wayfarer/internal/services"
	"wayfarer/pkg/utils"
)

type ExpenseController struct {
	expenseService services.ExpenseServiceInterface
}

func NewExpenseController(expenseService services.ExpenseServiceInterface) *ExpenseController {
	return &ExpenseController{
		expenseService: expenseService,
	}
}

func (e *ExpenseController) ListExpenses(c *gin.Context) {

	expenses, err := e.expenseService.ListExpenses(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expenses, "Expenses fetched successfully")
}

func (e *ExpenseController) CreateExpense(c *gin.Context) {

	var req request_models.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Expense category is required")
		return
	}

	expense, err := e.expenseService.CreateExpense(c.Request.Context(), c.GetString("user_id"), c.Param("tripId"), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, expense, "Expense created successfully")
}

func (e *ExpenseController) DeleteExpense(c *gin.Context) {

	err := e.expenseService.DeleteExpense(c.Request.Context(), c.GetString("user_id"), c.Param("expenseId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"deleted": true}, "Expense deleted successfully")
}
