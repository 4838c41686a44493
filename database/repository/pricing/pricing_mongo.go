package pricingRepo

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

// MongoPricingRepo implements PricingRepository using MongoDB.
type MongoPricingRepo struct {
	plans *mongo.Collection
	rules *mongo.Collection
}

// NewMongoPricingRepo creates a new instance of PricingRepository using MongoDB.
func NewMongoPricingRepo() PricingRepository {
	repo := &MongoPricingRepo{
		plans: database.Collection("rate_plans"),
		rules: database.Collection("pricing_rules"),
	}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create pricing indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoPricingRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	if _, err := r.plans.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true),
	}); err != nil {
		return fmt.Errorf("failed to create plan indexes: %w", err)
	}
	if _, err := r.rules.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "rate_plan_id", Value: 1}, {Key: "position", Value: 1}}},
	}); err != nil {
		return fmt.Errorf("failed to create rule indexes: %w", err)
	}
	return nil
}

func (r *MongoPricingRepo) CreatePlan(p *models.RatePlan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.plans.InsertOne(ctx, p); err != nil {
		return fmt.Errorf("failed to insert rate plan: %w", err)
	}
	return nil
}

func (r *MongoPricingRepo) UpdatePlan(p *models.RatePlan) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.plans.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return fmt.Errorf("failed to update rate plan %s: %w", p.ID, err)
	}
	if res.MatchedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoPricingRepo) DeletePlan(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.plans.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete rate plan %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *MongoPricingRepo) GetPlanByID(id string) (*models.RatePlan, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var p models.RatePlan
	if err := r.plans.FindOne(ctx, bson.M{"id": id}).Decode(&p); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch rate plan %s: %w", id, err)
	}
	return &p, nil
}

func (r *MongoPricingRepo) GetAllPlans() ([]models.RatePlan, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.plans.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve rate plans: %w", err)
	}
	defer cursor.Close(ctx)

	var plans []models.RatePlan
	if err := cursor.All(ctx, &plans); err != nil {
		return nil, fmt.Errorf("failed to decode rate plans: %w", err)
	}
	return plans, nil
}

func (r *MongoPricingRepo) CreateRule(rule *models.PricingRule) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.rules.InsertOne(ctx, rule); err != nil {
		return fmt.Errorf("failed to insert pricing rule: %w", err)
	}
	return nil
}

func (r *MongoPricingRepo) DeleteRule(id string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.rules.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete pricing rule %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

// GetRulesByPlan returns rules sorted by position. The evaluator applies the
// first matching rule per type, so this order is the author's evaluation order.
func (r *MongoPricingRepo) GetRulesByPlan(planID string) ([]models.PricingRule, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "position", Value: 1}})
	cursor, err := r.rules.Find(ctx, bson.M{"rate_plan_id": planID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve pricing rules for plan %s: %w", planID, err)
	}
	defer cursor.Close(ctx)

	var rules []models.PricingRule
	if err := cursor.All(ctx, &rules); err != nil {
		return nil, fmt.Errorf("failed to decode pricing rules: %w", err)
	}
	return rules, nil
}

func (r *MongoPricingRepo) DeleteRulesByPlan(planID string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if _, err := r.rules.DeleteMany(ctx, bson.M{"rate_plan_id": planID}); err != nil {
		return fmt.Errorf("failed to delete rules for plan %s: %w", planID, err)
	}
	return nil
}

// NextRulePosition returns the next free position for a plan's rules.
func (r *MongoPricingRepo) NextRulePosition(planID string) (int, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	opts := options.FindOne().SetSort(bson.D{{Key: "position", Value: -1}})
	var last models.PricingRule
	err := r.rules.FindOne(ctx, bson.M{"rate_plan_id": planID}, opts).Decode(&last)
	if err == mongo.ErrNoDocuments {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to determine rule position for plan %s: %w", planID, err)
	}
	return last.Position + 1, nil
}
