package handlers

import (
	"errors"
	"net/http"

	"stayflow/models"
	"stayflow/services/payments"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CreateTransactionHandler records a guest transaction.
func CreateTransactionHandler(svc payments.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var t models.Transaction
		if err := c.ShouldBindJSON(&t); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
			return
		}

		created, err := svc.CreateTransaction(&t)
		if err != nil {
			logger.Error("Failed to create transaction", zap.Error(err))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, created)
	}
}

// GetTransactionHandler returns one transaction by ID.
func GetTransactionHandler(svc payments.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := svc.GetTransaction(c.Param("id"))
		if err != nil {
			if errors.Is(err, payments.ErrTransactionNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
				return
			}
			getLogger(c).Error("Failed to fetch transaction", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// ListTransactionsHandler returns all transactions.
func ListTransactionsHandler(svc payments.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		txns, err := svc.ListTransactions()
		if err != nil {
			getLogger(c).Error("Failed to list transactions", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list transactions"})
			return
		}
		c.JSON(http.StatusOK, txns)
	}
}

// SettleTransactionHandler marks a pending transaction Paid, optionally
// collecting the amount by card first.
func SettleTransactionHandler(svc payments.TransactionService) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req struct {
			ByCard bool `json:"byCard"`
		}
		// Body is optional; default is a cash settlement.
		_ = c.ShouldBindJSON(&req)

		intentID, err := svc.Settle(c.Param("id"), req.ByCard)
		if err != nil {
			switch {
			case errors.Is(err, payments.ErrTransactionNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
			case errors.Is(err, payments.ErrAlreadySettled):
				c.JSON(http.StatusConflict, gin.H{"error": "Transaction already settled"})
			default:
				logger.Error("Failed to settle transaction", zap.Error(err))
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to settle transaction"})
			}
			return
		}

		resp := gin.H{"status": "settled"}
		if intentID != "" {
			resp["paymentIntentId"] = intentID
		}
		c.JSON(http.StatusOK, resp)
	}
}
