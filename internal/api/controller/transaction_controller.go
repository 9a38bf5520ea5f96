package controller

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/alfredhq/alfred/internal/api/response"
	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
	"github.com/alfredhq/alfred/internal/service"
)

type TransactionController struct {
	service *service.TransactionService
}

func NewTransactionController(s *service.TransactionService) *TransactionController {
	return &TransactionController{service: s}
}

type CreateTransactionRequest struct {
	Description string             `json:"description" binding:"required,max=255"`
	Amount      decimal.Decimal    `json:"amount"`
	Type        string             `json:"type" binding:"required,oneof=INCOME EXPENSE INVESTMENT"`
	Category    string             `json:"category"`
	Date        string             `json:"date" binding:"required"`
	Recurrence  *RecurrenceRequest `json:"recurrence"`
}

// Create stores a manual transaction.
// @Summary Create transaction
// @Tags Transaction
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateTransactionRequest true "transaction"
// @Success 200 {object} response.Response{data=model.Transaction}
// @Router /transactions [post]
func (ctrl *TransactionController) Create(c *gin.Context) {
	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	date, err := parseDay(req.Date)
	if err != nil {
		badRequest(c, err)
		return
	}

	category := req.Category
	if category == "" {
		category = model.DefaultCategory
	}
	tx := &model.Transaction{
		UserID:      currentUser(c),
		Description: req.Description,
		Amount:      req.Amount,
		Type:        model.TransactionType(req.Type),
		Category:    category,
		Date:        date,
		Recurrence:  req.Recurrence.toModel(),
		Source:      model.SourceManual,
	}
	if err := ctrl.service.CreateTransaction(c.Request.Context(), tx); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tx)
}

type ListTransactionsQuery struct {
	PageQuery
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE INVESTMENT"`
	Category  string `form:"category"`
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// List returns the user's transactions, newest first.
// @Summary List transactions
// @Tags Transaction
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.Response{data=response.PageData}
// @Router /transactions [get]
func (ctrl *TransactionController) List(c *gin.Context) {
	var q ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	start, end, err := dateRange(q.StartDate, q.EndDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	list, total, err := ctrl.service.List(c.Request.Context(), repository.TransactionFilter{
		UserID:    currentUser(c),
		Type:      model.TransactionType(q.Type),
		Category:  q.Category,
		StartDate: start,
		EndDate:   end,
		Page:      q.Page,
		PageSize:  q.PageSize,
	})
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, response.PageData{List: list, Total: total, Page: q.Page, PageSize: q.PageSize})
}

type UpdateTransactionRequest struct {
	Description *string          `json:"description"`
	Amount      *decimal.Decimal `json:"amount"`
	Type        *string          `json:"type" binding:"omitempty,oneof=INCOME EXPENSE INVESTMENT"`
	Category    *string          `json:"category"`
	Date        *string          `json:"date"`
}

func (ctrl *TransactionController) Update(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	upd := service.TransactionUpdate{
		Description: req.Description,
		Amount:      req.Amount,
		Category:    req.Category,
	}
	if req.Type != nil {
		typ := model.TransactionType(*req.Type)
		upd.Type = &typ
	}
	if req.Date != nil {
		date, err := parseDay(*req.Date)
		if err != nil {
			badRequest(c, err)
			return
		}
		upd.Date = &date
	}

	tx, err := ctrl.service.Update(c.Request.Context(), currentUser(c), id, upd)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, tx)
}

func (ctrl *TransactionController) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := ctrl.service.Delete(c.Request.Context(), currentUser(c), id); err != nil {
		fail(c, err)
		return
	}
	response.Success(c, nil)
}

type SummaryQuery struct {
	StartDate string `form:"start_date"`
	EndDate   string `form:"end_date"`
}

// Summary totals income, expenses and investments for a period.
// @Summary Transaction summary
// @Tags Transaction
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD, inclusive"
// @Success 200 {object} response.Response{data=service.Summary}
// @Router /transactions/summary [get]
func (ctrl *TransactionController) Summary(c *gin.Context) {
	var q SummaryQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}
	start, end, err := dateRange(q.StartDate, q.EndDate)
	if err != nil {
		badRequest(c, err)
		return
	}

	sum, err := ctrl.service.Summary(c.Request.Context(), currentUser(c), start, end)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, sum)
}
