package payments

import (
	"errors"
	"fmt"
	"time"

	"stayflow/models"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
)

var (
	// ErrTransactionNotFound indicates the referenced transaction does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrAlreadySettled indicates a settle attempt on a Paid transaction.
	ErrAlreadySettled = errors.New("transaction already settled")
)

func (s *DefaultTransactionService) CreateTransaction(t *models.Transaction) (*models.Transaction, error) {
	if t.Guest == "" {
		return nil, fmt.Errorf("payments: transaction requires a guest name")
	}
	if t.Amount < 0 {
		return nil, fmt.Errorf("payments: amount cannot be negative")
	}
	if _, err := models.ParseDate(t.Date); err != nil {
		return nil, fmt.Errorf("payments: invalid transaction date %q", t.Date)
	}
	if t.Status == "" {
		t.Status = models.TransactionPending
	}
	if t.Status != models.TransactionPaid && t.Status != models.TransactionPending {
		return nil, fmt.Errorf("payments: unknown transaction status %q", t.Status)
	}

	t.ID = uuid.New().String()
	t.CreatedAt = time.Now()
	if err := s.Repo.Create(t); err != nil {
		return nil, fmt.Errorf("payments: failed to create transaction: %w", err)
	}
	s.invalidate()
	return t, nil
}

func (s *DefaultTransactionService) GetTransaction(id string) (*models.Transaction, error) {
	t, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTransactionNotFound
	}
	return t, nil
}

func (s *DefaultTransactionService) ListTransactions() ([]models.Transaction, error) {
	return s.Repo.GetAll()
}

// Settle moves a pending transaction to Paid. Card settlements create a
// Stripe PaymentIntent first; cash settlements just flip the status.
func (s *DefaultTransactionService) Settle(id string, byCard bool) (string, error) {
	t, err := s.GetTransaction(id)
	if err != nil {
		return "", err
	}
	if t.Status == models.TransactionPaid {
		return "", ErrAlreadySettled
	}

	var intentID string
	if byCard {
		params := &stripe.PaymentIntentParams{
			Amount:   stripe.Int64(t.Amount * 100),
			Currency: stripe.String(string(stripe.CurrencyINR)),
			Metadata: map[string]string{"transaction_id": t.ID, "guest": t.Guest},
		}
		pi, err := paymentintent.New(params)
		if err != nil {
			return "", fmt.Errorf("payments: failed to create payment intent: %w", err)
		}
		intentID = pi.ID
	}

	if err := s.Repo.MarkPaid(id); err != nil {
		return "", fmt.Errorf("payments: failed to settle transaction %s: %w", id, err)
	}
	s.invalidate()
	return intentID, nil
}

func (s *DefaultTransactionService) invalidate() {
	if s.CRM != nil {
		s.CRM.Invalidate()
	}
}
