package inventory

import (
	"context"
	"errors"
	"testing"

	"stayflow/models"
)

// fakeInventoryRepo is an in-memory InventoryRepository.
type fakeInventoryRepo struct {
	items     map[string]*models.InventoryItem
	movements []models.StockMovement
}

func newFakeInventoryRepo() *fakeInventoryRepo {
	return &fakeInventoryRepo{items: make(map[string]*models.InventoryItem)}
}

func (f *fakeInventoryRepo) CreateItem(i *models.InventoryItem) error {
	f.items[i.ID] = i
	return nil
}

func (f *fakeInventoryRepo) UpdateItem(i *models.InventoryItem) error {
	f.items[i.ID] = i
	return nil
}

func (f *fakeInventoryRepo) DeleteItem(id string) error {
	delete(f.items, id)
	return nil
}

func (f *fakeInventoryRepo) GetItemByID(id string) (*models.InventoryItem, error) {
	return f.items[id], nil
}

func (f *fakeInventoryRepo) GetAllItems() ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	for _, i := range f.items {
		out = append(out, *i)
	}
	return out, nil
}

func (f *fakeInventoryRepo) ApplyMovement(m *models.StockMovement) error {
	f.movements = append(f.movements, *m)
	if item, ok := f.items[m.ItemID]; ok {
		item.Quantity += m.Delta
	}
	return nil
}

func (f *fakeInventoryRepo) GetMovementsByItem(itemID string, limit int64) ([]models.StockMovement, error) {
	var out []models.StockMovement
	for _, m := range f.movements {
		if m.ItemID == itemID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeInventoryRepo) GetLowStockItems() ([]models.InventoryItem, error) {
	var out []models.InventoryItem
	for _, i := range f.items {
		if i.Quantity <= i.ReorderLevel {
			out = append(out, *i)
		}
	}
	return out, nil
}

// recordingNotifier captures role pushes.
type recordingNotifier struct {
	rolePushes []string
}

func (r *recordingNotifier) SendStaffPush(ctx context.Context, staffID, title, body string, data map[string]string) error {
	return nil
}

func (r *recordingNotifier) SendRolePush(ctx context.Context, role, title, body string, data map[string]string) error {
	r.rolePushes = append(r.rolePushes, role)
	return nil
}

func seedItem(repo *fakeInventoryRepo) *models.InventoryItem {
	item := &models.InventoryItem{ID: "towels", Name: "Bath towels", Unit: "pcs", Quantity: 50, ReorderLevel: 10}
	repo.items[item.ID] = item
	return item
}

func TestRecordMovementAdjustsQuantity(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo)
	svc := &DefaultInventoryService{Repo: repo}

	m, err := svc.RecordMovement(&models.StockMovement{ItemID: item.ID, Delta: -5, Reason: "room service"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" || m.Date == "" {
		t.Errorf("movement should get an ID and a date, got %+v", m)
	}
	if item.Quantity != 45 {
		t.Errorf("Quantity = %v, want 45", item.Quantity)
	}
}

func TestRecordMovementRejectsNegativeStock(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo)
	svc := &DefaultInventoryService{Repo: repo}

	_, err := svc.RecordMovement(&models.StockMovement{ItemID: item.ID, Delta: -51})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if item.Quantity != 50 {
		t.Errorf("rejected movement must not change quantity, got %v", item.Quantity)
	}
}

func TestRecordMovementUnknownItem(t *testing.T) {
	svc := &DefaultInventoryService{Repo: newFakeInventoryRepo()}
	if _, err := svc.RecordMovement(&models.StockMovement{ItemID: "ghost", Delta: 1}); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRecordMovementLowStockAlert(t *testing.T) {
	repo := newFakeInventoryRepo()
	item := seedItem(repo)
	notifier := &recordingNotifier{}
	svc := &DefaultInventoryService{Repo: repo, Notifier: notifier}

	// 50 -> 12 stays above the reorder level of 10: no alert.
	if _, err := svc.RecordMovement(&models.StockMovement{ItemID: item.ID, Delta: -38}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.rolePushes) != 0 {
		t.Fatalf("no alert expected above the reorder level, got %d", len(notifier.rolePushes))
	}

	// 12 -> 8 crosses the line: inventory staff get pushed.
	if _, err := svc.RecordMovement(&models.StockMovement{ItemID: item.ID, Delta: -4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(notifier.rolePushes) != 1 || notifier.rolePushes[0] != models.RoleInventory {
		t.Fatalf("expected one push to inventory staff, got %v", notifier.rolePushes)
	}
}
