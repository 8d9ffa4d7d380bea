package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fintrack/internal/advice"
	"fintrack/internal/services"
)

// AdviceHandler produces AI-generated financial advice.
type AdviceHandler struct {
	accountService services.AccountServicer
	ledgerService  services.LedgerServicer
	adviceService  *advice.Service
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(accountService services.AccountServicer, ledgerService services.LedgerServicer, adviceService *advice.Service) *AdviceHandler {
	return &AdviceHandler{
		accountService: accountService,
		ledgerService:  ledgerService,
		adviceService:  adviceService,
	}
}

// AdviceResponse represents the advice payload
type AdviceResponse struct {
	Advice string `json:"advice"`
}

// GetAdvice generates financial advice from the user's data
// @Summary     Get AI financial advice
// @Description Summarize the user's balances and recent transactions and generate advice. Always returns 200; degraded modes return a fallback message.
// @Tags        advice
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} AdviceResponse "Generated or fallback advice"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /advice [post]
func (h *AdviceHandler) GetAdvice(c *gin.Context) {
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

	transactions, err := h.ledgerService.RecentTransactions(ctx, userID, 0)
	if err != nil {
		respondWithError(c, err)
		return
	}

	text := h.adviceService.RequestAdvice(ctx, accounts, transactions)
	c.JSON(http.StatusOK, gin.H{"advice": text})
}
