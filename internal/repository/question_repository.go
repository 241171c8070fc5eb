package repository

import (
	"context"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type QuestionRepository struct {
	Col *mongo.Collection
}

func NewQuestionRepository(db *mongo.Database) *QuestionRepository {
	return &QuestionRepository{Col: db.Collection("questions")}
}

func (r *QuestionRepository) FindByID(ctx context.Context, id string) (*models.Question, error) {
	var question models.Question
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&question)
	if err != nil {
		return nil, err
	}
	return &question, nil
}

func (r *QuestionRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Question, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}

// FindByPartAndTags returns the mini-test candidate pool: every question
// under the part carrying any of the requested tags.
func (r *QuestionRepository) FindByPartAndTags(ctx context.Context, partID string, tagIDs []string) ([]models.Question, error) {
	cur, err := r.Col.Find(ctx, bson.M{
		"part_id": partID,
		"tag_ids": bson.M{"$in": tagIDs},
	})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var questions []models.Question
	for cur.Next(ctx) {
		var q models.Question
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	return questions, nil
}
