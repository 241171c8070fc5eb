package repository

import (
	"context"
	"time"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubmissionRepository struct {
	Col *mongo.Collection
}

func NewSubmissionRepository(db *mongo.Database) *SubmissionRepository {
	return &SubmissionRepository{Col: db.Collection("submissions")}
}

// FindLatestByUser returns the learner's most recent submission, or nil
// without error when the learner has never submitted.
func (r *SubmissionRepository) FindLatestByUser(ctx context.Context, userID string) (*models.Submission, error) {
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})
	var sub models.Submission
	err := r.Col.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&sub)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &sub, nil
}

func (r *SubmissionRepository) FindByUserSince(ctx context.Context, userID string, since time.Time) ([]models.Submission, error) {
	cur, err := r.Col.Find(ctx, bson.M{
		"user_id":    userID,
		"created_at": bson.M{"$gte": since},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subs []models.Submission
	for cur.Next(ctx) {
		var s models.Submission
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

// FindRecentFullTests returns the learner's most recent scored attempts on
// the given tests, newest first.
func (r *SubmissionRepository) FindRecentFullTests(ctx context.Context, userID string, testIDs []string, limit int) ([]models.Submission, error) {
	if len(testIDs) == 0 {
		return nil, nil
	}
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(int64(limit))
	cur, err := r.Col.Find(ctx, bson.M{
		"user_id":     userID,
		"test_id":     bson.M{"$in": testIDs},
		"total_score": bson.M{"$ne": nil},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var subs []models.Submission
	for cur.Next(ctx) {
		var s models.Submission
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		subs = append(subs, s)
	}
	return subs, nil
}

func (r *SubmissionRepository) CountBetween(ctx context.Context, start, end time.Time) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{
		"created_at": bson.M{"$gte": start, "$lt": end},
	})
}

// CountActiveUsersBetween counts distinct learners that submitted anything
// in the period.
func (r *SubmissionRepository) CountActiveUsersBetween(ctx context.Context, start, end time.Time) (int64, error) {
	ids, err := r.Col.Distinct(ctx, "user_id", bson.M{
		"created_at": bson.M{"$gte": start, "$lt": end},
	})
	if err != nil {
		return 0, err
	}
	return int64(len(ids)), nil
}

// CountByModeBetween breaks submissions down by practice vs exam mode.
func (r *SubmissionRepository) CountByModeBetween(ctx context.Context, start, end time.Time) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}},
		{"$group": bson.M{"_id": "$mode", "count": bson.M{"$sum": 1}}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Mode  string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Mode] = row.Count
	}
	return counts, nil
}

// CountPerDayBetween returns the activity trend series: submissions per
// calendar day across the period.
func (r *SubmissionRepository) CountPerDayBetween(ctx context.Context, start, end time.Time) (map[string]int64, error) {
	pipeline := []bson.M{
		{"$match": bson.M{"created_at": bson.M{"$gte": start, "$lt": end}}},
		{"$group": bson.M{
			"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$created_at"}},
			"count": bson.M{"$sum": 1},
		}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[string]int64)
	for cur.Next(ctx) {
		var row struct {
			Day   string `bson:"_id"`
			Count int64  `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Day] = row.Count
	}
	return counts, nil
}

// CountScoreBandsBetween buckets scored submissions by combined score.
func (r *SubmissionRepository) CountScoreBandsBetween(ctx context.Context, start, end time.Time, bounds []int) (map[int]int64, error) {
	boundaries := make([]interface{}, len(bounds))
	for i, b := range bounds {
		boundaries[i] = b
	}
	pipeline := []bson.M{
		{"$match": bson.M{
			"created_at":  bson.M{"$gte": start, "$lt": end},
			"total_score": bson.M{"$ne": nil},
		}},
		{"$bucket": bson.M{
			"groupBy":    "$total_score",
			"boundaries": boundaries,
			"default":    -1,
			"output":     bson.M{"count": bson.M{"$sum": 1}},
		}},
	}
	cur, err := r.Col.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	counts := make(map[int]int64)
	for cur.Next(ctx) {
		var row struct {
			Lower int   `bson:"_id"`
			Count int64 `bson:"count"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		counts[row.Lower] = row.Count
	}
	return counts, nil
}
