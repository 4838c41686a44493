package payments

import (
	"errors"
	"testing"

	"stayflow/models"
)

// fakeTransactionRepo is an in-memory TransactionRepository.
type fakeTransactionRepo struct {
	transactions map[string]*models.Transaction
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{transactions: make(map[string]*models.Transaction)}
}

func (f *fakeTransactionRepo) Create(t *models.Transaction) error {
	f.transactions[t.ID] = t
	return nil
}

func (f *fakeTransactionRepo) GetByID(id string) (*models.Transaction, error) {
	return f.transactions[id], nil
}

func (f *fakeTransactionRepo) GetAll() ([]models.Transaction, error) {
	var out []models.Transaction
	for _, t := range f.transactions {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTransactionRepo) MarkPaid(id string) error {
	if t, ok := f.transactions[id]; ok {
		t.Status = models.TransactionPaid
	}
	return nil
}

func (f *fakeTransactionRepo) SumByStatusOnDate(status, date string) (int64, error) {
	return 0, nil
}

// countingInvalidator records how often derived views were invalidated.
type countingInvalidator struct{ n int }

func (c *countingInvalidator) Invalidate() { c.n++ }

func validTransaction() *models.Transaction {
	return &models.Transaction{
		Guest:  "Ann",
		Date:   "2026-09-02",
		Type:   "Restaurant",
		Amount: 4500,
	}
}

func TestCreateTransactionValidation(t *testing.T) {
	svc := &DefaultTransactionService{Repo: newFakeTransactionRepo()}

	cases := []struct {
		name   string
		mutate func(*models.Transaction)
	}{
		{"missing guest", func(tr *models.Transaction) { tr.Guest = "" }},
		{"negative amount", func(tr *models.Transaction) { tr.Amount = -1 }},
		{"malformed date", func(tr *models.Transaction) { tr.Date = "02/09/2026" }},
		{"unknown status", func(tr *models.Transaction) { tr.Status = "Refunded" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tr := validTransaction()
			tc.mutate(tr)
			if _, err := svc.CreateTransaction(tr); err == nil {
				t.Error("expected a validation error")
			}
		})
	}
}

func TestCreateTransactionDefaultsPending(t *testing.T) {
	inv := &countingInvalidator{}
	svc := &DefaultTransactionService{Repo: newFakeTransactionRepo(), CRM: inv}

	created, err := svc.CreateTransaction(validTransaction())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.Status != models.TransactionPending {
		t.Errorf("Status = %q, want default Pending", created.Status)
	}
	if created.ID == "" {
		t.Error("expected an assigned transaction ID")
	}
	if inv.n != 1 {
		t.Errorf("derived views invalidated %d times, want 1", inv.n)
	}
}

func TestSettleCashFlipsPendingToPaid(t *testing.T) {
	inv := &countingInvalidator{}
	repo := newFakeTransactionRepo()
	svc := &DefaultTransactionService{Repo: repo, CRM: inv}

	created, err := svc.CreateTransaction(validTransaction())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	intentID, err := svc.Settle(created.ID, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if intentID != "" {
		t.Errorf("cash settlement returned intent %q, want none", intentID)
	}
	if got := repo.transactions[created.ID].Status; got != models.TransactionPaid {
		t.Errorf("Status = %q, want Paid", got)
	}
	if inv.n != 2 {
		t.Errorf("derived views invalidated %d times, want 2 (create + settle)", inv.n)
	}
}

func TestSettleAlreadyPaidConflicts(t *testing.T) {
	inv := &countingInvalidator{}
	repo := newFakeTransactionRepo()
	svc := &DefaultTransactionService{Repo: repo, CRM: inv}

	created, err := svc.CreateTransaction(validTransaction())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Settle(created.ID, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before := inv.n
	if _, err := svc.Settle(created.ID, false); !errors.Is(err, ErrAlreadySettled) {
		t.Errorf("second settle error = %v, want ErrAlreadySettled", err)
	}
	if repo.transactions[created.ID].Status != models.TransactionPaid {
		t.Error("transaction status changed on rejected settle")
	}
	if inv.n != before {
		t.Error("rejected settle should not invalidate derived views")
	}
}

func TestSettleUnknownTransaction(t *testing.T) {
	svc := &DefaultTransactionService{Repo: newFakeTransactionRepo()}
	if _, err := svc.Settle("missing", false); !errors.Is(err, ErrTransactionNotFound) {
		t.Errorf("error = %v, want ErrTransactionNotFound", err)
	}
}
