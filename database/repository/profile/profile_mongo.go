package profileRepo

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

// MongoProfileRepo implements ProfileRepository using MongoDB.
type MongoProfileRepo struct {
	profiles  *mongo.Collection
	summaries *mongo.Collection
}

// NewMongoProfileRepo creates a new instance of ProfileRepository using MongoDB.
func NewMongoProfileRepo() ProfileRepository {
	repo := &MongoProfileRepo{
		profiles:  database.Collection("guest_profiles"),
		summaries: database.Collection("revenue_summaries"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create profile indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoProfileRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.profiles.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create profile indexes: %w", err)
	}
	if _, err := r.summaries.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "date", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create summary indexes: %w", err)
	}
	return nil
}

// UpsertProfile merge-writes the latest snapshot for a guest, keyed by email.
func (r *MongoProfileRepo) UpsertProfile(p *models.GuestProfile) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.profiles.ReplaceOne(ctx, bson.M{"email": p.Email}, p, opts); err != nil {
		return fmt.Errorf("failed to upsert profile for %s: %w", p.Email, err)
	}
	return nil
}

func (r *MongoProfileRepo) GetProfiles() ([]models.GuestProfile, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "total_spend", Value: -1}})
	cursor, err := r.profiles.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve profiles: %w", err)
	}
	defer cursor.Close(ctx)

	var profiles []models.GuestProfile
	if err := cursor.All(ctx, &profiles); err != nil {
		return nil, fmt.Errorf("failed to decode profiles: %w", err)
	}
	return profiles, nil
}

func (r *MongoProfileRepo) UpsertSummary(s *models.RevenueSummary) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.Replace().SetUpsert(true)
	if _, err := r.summaries.ReplaceOne(ctx, bson.M{"date": s.Date}, s, opts); err != nil {
		return fmt.Errorf("failed to upsert revenue summary for %s: %w", s.Date, err)
	}
	return nil
}

func (r *MongoProfileRepo) GetSummaries(from, to string) ([]models.RevenueSummary, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	filter := bson.M{"date": bson.M{"$gte": from, "$lte": to}}
	opts := options.Find().SetSort(bson.D{{Key: "date", Value: 1}})
	cursor, err := r.summaries.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve revenue summaries: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []models.RevenueSummary
	if err := cursor.All(ctx, &summaries); err != nil {
		return nil, fmt.Errorf("failed to decode revenue summaries: %w", err)
	}
	return summaries, nil
}
