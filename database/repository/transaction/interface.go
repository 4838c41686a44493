package transactionRepo

import "stayflow/models"

// TransactionRepository defines persistence operations for guest transactions.
type TransactionRepository interface {
	Create(t *models.Transaction) error
	GetByID(id string) (*models.Transaction, error)
	GetAll() ([]models.Transaction, error)
	MarkPaid(id string) error
	SumByStatusOnDate(status, date string) (int64, error)
}
