package inventoryRepo

import (
	"context"
	"fmt"
	"time"

	"stayflow/database"
	"stayflow/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoInventoryRepo implements InventoryRepository using MongoDB.
type MongoInventoryRepo struct {
	items     *mongo.Collection
	movements *mongo.Collection
}

// NewMongoInventoryRepo creates a new instance of InventoryRepository using MongoDB.
func NewMongoInventoryRepo() InventoryRepository {
	repo := &MongoInventoryRepo{
		items:     database.Collection("inventory_items"),
		movements: database.Collection("stock_movements"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create inventory indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoInventoryRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.items.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create item indexes: %w", err)
	}
	if _, err := r.movements.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "item_id", Value: 1}, {Key: "created_at", Value: -1}},
	}); err != nil {
		return fmt.Errorf("failed to create movement indexes: %w", err)
	}
	return nil
}

func (r *MongoInventoryRepo) CreateItem(i *models.InventoryItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.items.InsertOne(ctx, i); err != nil {
		return fmt.Errorf("failed to insert inventory item: %w", err)
	}
	return nil
}

func (r *MongoInventoryRepo) UpdateItem(i *models.InventoryItem) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.items.ReplaceOne(ctx, bson.M{"id": i.ID}, i)
	if err != nil {
		return fmt.Errorf("failed to update inventory item %s: %w", i.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoInventoryRepo) DeleteItem(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.items.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete inventory item %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoInventoryRepo) GetItemByID(id string) (*models.InventoryItem, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var item models.InventoryItem
	if err := r.items.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch inventory item %s: %w", id, err)
	}
	return &item, nil
}

func (r *MongoInventoryRepo) GetAllItems() ([]models.InventoryItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.items.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve inventory items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode inventory items: %w", err)
	}
	return items, nil
}

// ApplyMovement inserts the movement record and increments the item
// quantity by the movement delta.
func (r *MongoInventoryRepo) ApplyMovement(m *models.StockMovement) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.movements.InsertOne(ctx, m); err != nil {
		return fmt.Errorf("failed to insert stock movement: %w", err)
	}

	res, err := r.items.UpdateOne(ctx,
		bson.M{"id": m.ItemID},
		bson.M{"$inc": bson.M{"quantity": m.Delta}},
	)
	if err != nil {
		return fmt.Errorf("failed to adjust quantity for item %s: %w", m.ItemID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoInventoryRepo) GetMovementsByItem(itemID string, limit int64) ([]models.StockMovement, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.movements.Find(ctx, bson.M{"item_id": itemID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve movements for item %s: %w", itemID, err)
	}
	defer cursor.Close(ctx)

	var movements []models.StockMovement
	if err := cursor.All(ctx, &movements); err != nil {
		return nil, fmt.Errorf("failed to decode stock movements: %w", err)
	}
	return movements, nil
}

// GetLowStockItems compares quantity against reorder_level with an $expr query.
func (r *MongoInventoryRepo) GetLowStockItems() ([]models.InventoryItem, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"$expr": bson.M{"$lte": bson.A{"$quantity", "$reorder_level"}}}
	cursor, err := r.items.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve low-stock items: %w", err)
	}
	defer cursor.Close(ctx)

	var items []models.InventoryItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode low-stock items: %w", err)
	}
	return items, nil
}
