package payments

import (
	transactionRepo "stayflow/database/repository/transaction"
	"stayflow/models"
)

// ProfileInvalidator is notified after every transaction mutation.
type ProfileInvalidator interface {
	Invalidate()
}

// TransactionService manages guest transactions and settlement.
type TransactionService interface {
	CreateTransaction(t *models.Transaction) (*models.Transaction, error)
	GetTransaction(id string) (*models.Transaction, error)
	ListTransactions() ([]models.Transaction, error)
	// Settle marks a pending transaction Paid. When byCard is set, a Stripe
	// PaymentIntent is created first and its ID returned.
	Settle(id string, byCard bool) (string, error)
}

// DefaultTransactionService is the production implementation.
type DefaultTransactionService struct {
	Repo transactionRepo.TransactionRepository
	CRM  ProfileInvalidator
}
