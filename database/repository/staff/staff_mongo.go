package staffRepo

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

// MongoStaffRepo implements StaffRepository using MongoDB.
type MongoStaffRepo struct {
	staff  *mongo.Collection
	shifts *mongo.Collection
}

// NewMongoStaffRepo creates a new instance of StaffRepository using MongoDB.
func NewMongoStaffRepo() StaffRepository {
	repo := &MongoStaffRepo{
		staff:  database.Collection("staff"),
		shifts: database.Collection("shifts"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create staff indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoStaffRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.staff.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "role", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create staff indexes: %w", err)
	}
	if _, err := r.shifts.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "staff_id", Value: 1}, {Key: "date", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create shift indexes: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) Create(s *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.staff.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert staff: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) Update(s *models.Staff) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.staff.ReplaceOne(ctx, bson.M{"id": s.ID}, s)
	if err != nil {
		return fmt.Errorf("failed to update staff %s: %w", s.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoStaffRepo) Delete(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.staff.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete staff %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoStaffRepo) GetByID(id string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Staff
	if err := r.staff.FindOne(ctx, bson.M{"id": id}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff %s: %w", id, err)
	}
	return &s, nil
}

func (r *MongoStaffRepo) GetByEmail(email string) (*models.Staff, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var s models.Staff
	if err := r.staff.FindOne(ctx, bson.M{"email": email}).Decode(&s); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch staff with email %s: %w", email, err)
	}
	return &s, nil
}

func (r *MongoStaffRepo) GetAll() ([]models.Staff, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.staff.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff: %w", err)
	}
	defer cursor.Close(ctx)

	var members []models.Staff
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return members, nil
}

func (r *MongoStaffRepo) GetByRole(role string) ([]models.Staff, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.staff.Find(ctx, bson.M{"role": role})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve staff by role %s: %w", role, err)
	}
	defer cursor.Close(ctx)

	var members []models.Staff
	if err := cursor.All(ctx, &members); err != nil {
		return nil, fmt.Errorf("failed to decode staff: %w", err)
	}
	return members, nil
}

func (r *MongoStaffRepo) SetFCMToken(id, token string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.staff.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"fcm_token": token}})
	if err != nil {
		return fmt.Errorf("failed to set FCM token for staff %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoStaffRepo) CreateShift(sh *models.Shift) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.shifts.InsertOne(ctx, sh); err != nil {
		return fmt.Errorf("failed to insert shift: %w", err)
	}
	return nil
}

func (r *MongoStaffRepo) DeleteShift(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.shifts.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete shift %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoStaffRepo) GetShiftsByStaffAndDate(staffID, date string) ([]models.Shift, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	cursor, err := r.shifts.Find(ctx, bson.M{"staff_id": staffID, "date": date})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shifts for staff %s: %w", staffID, err)
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, fmt.Errorf("failed to decode shifts: %w", err)
	}
	return shifts, nil
}

func (r *MongoStaffRepo) GetShiftsInRange(from, to string) ([]models.Shift, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}, {Key: "start", Value: 1}})
	cursor, err := r.shifts.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve shifts in range: %w", err)
	}
	defer cursor.Close(ctx)

	var shifts []models.Shift
	if err := cursor.All(ctx, &shifts); err != nil {
		return nil, fmt.Errorf("failed to decode shifts: %w", err)
	}
	return shifts, nil
}
