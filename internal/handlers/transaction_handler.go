package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
	"fintrack/internal/services"
)

// TransactionHandler handles transaction-related requests.
type TransactionHandler struct {
	ledgerService services.LedgerServicer
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledgerService services.LedgerServicer) *TransactionHandler {
	return &TransactionHandler{ledgerService: ledgerService}
}

// CreateTransactionRequest represents the request payload for recording a transaction
type CreateTransactionRequest struct {
	AccountID string `json:"account_id" binding:"required"`
	Type      string `json:"type" binding:"required,transaction_type"`
	Amount    int64  `json:"amount" binding:"required,gt=0"`
	Category  string `json:"category" binding:"required,max=100"`
	Note      string `json:"note" binding:"max=500"`
	Date      string `json:"date"`
}

// TransactionResponse represents a transaction in the response
type TransactionResponse struct {
	ID        string                 `json:"id"`
	UserID    string                 `json:"user_id"`
	AccountID string                 `json:"account_id"`
	Type      models.TransactionType `json:"type"`
	Amount    int64                  `json:"amount"`
	Category  string                 `json:"category"`
	Note      string                 `json:"note"`
	Date      time.Time              `json:"date"`
}

// parseDate accepts RFC3339 or a bare calendar date. An empty string
// means "now" and is resolved downstream.
func parseDate(raw string) (time.Time, error) {
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		parsed, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "invalid date format")
		}
	}
	return parsed, nil
}

// CreateTransaction records a transaction and adjusts the account balance
// @Summary     Record a transaction
// @Description Record an income or expense transaction and update the account balance atomically
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateTransactionRequest true "Transaction details"
// @Success     201 {object} TransactionResponse "Transaction recorded"
// @Failure     400 {object} ErrorResponse "Invalid input or no accounts"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Account not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		respondWithError(c, err)
		return
	}

	transaction, account, err := h.ledgerService.RecordTransaction(
		c.Request.Context(),
		userID,
		req.AccountID,
		models.TransactionType(req.Type),
		req.Amount,
		req.Category,
		req.Note,
		date,
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"transaction": transaction,
		"account":     account,
	})
}

// GetUserTransactions handles the retrieval of transactions for a user
// @Summary     Get user transactions
// @Description Get a paginated list of transactions for the authenticated user, most recent first
// @Tags        transactions
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page      query int false "Page number (default 1)"
// @Param       page_size query int false "Items per page (default 20, max 100)"
// @Success     200 {object} pagination.PageResponse[models.Transaction] "Paginated transactions"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /transactions [get]
func (h *TransactionHandler) GetUserTransactions(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var page pagination.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.ledgerService.GetUserTransactions(c.Request.Context(), userID, page)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
