package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/analytics"
	"fintrack/internal/services"
)

// recentActivityLimit is how many transactions the dashboard shows.
const recentActivityLimit = 5

// DashboardHandler assembles the aggregate view of a user's finances.
type DashboardHandler struct {
	accountService services.AccountServicer
	ledgerService  services.LedgerServicer
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(accountService services.AccountServicer, ledgerService services.LedgerServicer) *DashboardHandler {
	return &DashboardHandler{accountService: accountService, ledgerService: ledgerService}
}

// DashboardResponse represents the dashboard payload
type DashboardResponse struct {
	TotalBalance       int64                     `json:"total_balance"`
	Accounts           interface{}               `json:"accounts"`
	RecentTransactions interface{}               `json:"recent_transactions"`
	ExpensesByCategory []analytics.CategoryTotal `json:"expenses_by_category"`
}

// GetDashboard returns the user's aggregate financial overview
// @Summary     Get dashboard
// @Description Get total balance, accounts, recent transactions, and expense breakdown by category
// @Tags        dashboard
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} DashboardResponse "Dashboard data"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}
	ctx := c.Request.Context()

	accounts, err := h.accountService.GetUserAccounts(ctx, userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	// One bounded query feeds both the activity list and the category
	// breakdown: the chart summarizes recent activity, not full history.
	recent, err := h.ledgerService.RecentTransactions(ctx, userID, recentActivityLimit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"total_balance":        analytics.TotalBalance(accounts),
		"accounts":             accounts,
		"recent_transactions":  recent,
		"expenses_by_category": analytics.ExpensesByCategory(recent),
	})
}
