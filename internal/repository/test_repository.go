package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TestRepository struct {
	Col *mongo.Collection
}

func NewTestRepository(db *mongo.Database) *TestRepository {
	return &TestRepository{Col: db.Collection("tests")}
}

func (r *TestRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Test, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

// FindApprovedIDs returns the ids of currently approved tests. The full-test
// trend only counts attempts on tests still visible to learners.
func (r *TestRepository) FindApprovedIDs(ctx context.Context) ([]string, error) {
	tests, err := r.find(ctx, bson.M{"status": models.TestStatusApproved})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(tests))
	for _, t := range tests {
		ids = append(ids, t.ID)
	}
	return ids, nil
}

func (r *TestRepository) find(ctx context.Context, filter bson.M) ([]models.Test, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tests []models.Test
	for cur.Next(ctx) {
		var t models.Test
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		tests = append(tests, t)
	}
	return tests, nil
}

type UserRepository struct {
	Col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{Col: db.Collection("users")}
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*models.User, error) {
	var user models.User
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": start, "$lt": end},
	})
}

// CountBySourceBetween breaks new registrations down by acquisition source.
func (r *UserRepository) CountBySourceBetween(ctx context.Context, start, end time.Time) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}},
		{"$group": bson.M{"_id": "$registration_source", "count": bson.M{"$sum": 1}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Source string `bson:"_id"`
			Count  int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Source] = row.Count
	}
	return counts, nil
}

type ConversationRepository struct {
	Col *mongo.Collection
}

func NewConversationRepository(db *mongo.Database) *ConversationRepository {
	return &ConversationRepository{Col: db.Collection("conversations")}
}

func (r *ConversationRepository) CountCreatedBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": start, "$lt": end},
	})
}
