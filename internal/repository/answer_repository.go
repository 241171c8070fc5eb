package repository

import (
	"context"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AnswerRepository struct {
	Col *mongo.Collection
}

func NewAnswerRepository(db *mongo.Database) *AnswerRepository {
	return &AnswerRepository{Col: db.Collection("answers")}
}

func (r *AnswerRepository) FindBySubmission(ctx context.Context, submissionID string) ([]models.Answer, error) {
	return r.find(ctx, bson.M{"submission_id": submissionID})
}

func (r *AnswerRepository) FindBySubmissions(ctx context.Context, submissionIDs []string) ([]models.Answer, error) {
	if len(submissionIDs) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"submission_id": bson.M{"$in": submissionIDs}})
}

func (r *AnswerRepository) find(ctx context.Context, filter bson.M) ([]models.Answer, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var answers []models.Answer
	for cur.Next(ctx) {
		var a models.Answer
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, nil
}
