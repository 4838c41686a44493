package roomRepo

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

// MongoRoomRepo implements RoomRepository using MongoDB.
type MongoRoomRepo struct {
	rooms *mongo.Collection
	tasks *mongo.Collection
}

// NewMongoRoomRepo creates a new instance of RoomRepository using MongoDB.
func NewMongoRoomRepo() RoomRepository {
	repo := &MongoRoomRepo{
		rooms: database.Collection("rooms"),
		tasks: database.Collection("housekeeping_tasks"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create room indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoRoomRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.rooms.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "number", Value: 1}}, Options: options.Index().SetUnique(true)},
	}); err != nil {
		return fmt.Errorf("failed to create room indexes: %w", err)
	}
	if _, err := r.tasks.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}, {Key: "due_date", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create task indexes: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) CreateRoom(room *models.Room) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.rooms.InsertOne(ctx, room); err != nil {
		return fmt.Errorf("failed to insert room: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) UpdateRoomStatus(id, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.rooms.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return fmt.Errorf("failed to update room status for %s: %w", id, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRoomRepo) GetRoomByID(id string) (*models.Room, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var room models.Room
	if err := r.rooms.FindOne(ctx, bson.M{"id": id}).Decode(&room); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch room %s: %w", id, err)
	}
	return &room, nil
}

func (r *MongoRoomRepo) GetAllRooms() ([]models.Room, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "number", Value: 1}})
	cursor, err := r.rooms.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rooms: %w", err)
	}
	defer cursor.Close(ctx)

	var rooms []models.Room
	if err := cursor.All(ctx, &rooms); err != nil {
		return nil, fmt.Errorf("failed to decode rooms: %w", err)
	}
	return rooms, nil
}

func (r *MongoRoomRepo) CountRooms() (int64, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	n, err := r.rooms.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count rooms: %w", err)
	}
	return n, nil
}

func (r *MongoRoomRepo) CreateTask(t *models.HousekeepingTask) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.tasks.InsertOne(ctx, t); err != nil {
		return fmt.Errorf("failed to insert housekeeping task: %w", err)
	}
	return nil
}

func (r *MongoRoomRepo) UpdateTask(t *models.HousekeepingTask) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.tasks.ReplaceOne(ctx, bson.M{"id": t.ID}, t)
	if err != nil {
		return fmt.Errorf("failed to update housekeeping task %s: %w", t.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoRoomRepo) GetTaskByID(id string) (*models.HousekeepingTask, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var t models.HousekeepingTask
	if err := r.tasks.FindOne(ctx, bson.M{"id": id}).Decode(&t); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch housekeeping task %s: %w", id, err)
	}
	return &t, nil
}

func (r *MongoRoomRepo) GetOpenTasks() ([]models.HousekeepingTask, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"status": bson.M{"$in": []string{models.TaskOpen, models.TaskInProgress}}}
	opts := options.Find().SetSort(bson.D{{Key: "due_date", Value: 1}})
	cursor, err := r.tasks.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve open tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.HousekeepingTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}

func (r *MongoRoomRepo) GetTasksDueOn(date string) ([]models.HousekeepingTask, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{
		"due_date": date,
		"status":   bson.M{"$ne": models.TaskDone},
	}
	cursor, err := r.tasks.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve due tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []models.HousekeepingTask
	if err := cursor.All(ctx, &tasks); err != nil {
		return nil, fmt.Errorf("failed to decode tasks: %w", err)
	}
	return tasks, nil
}
