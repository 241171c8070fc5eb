package repository

import (
	"context"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type TagRepository struct {
	Col *mongo.Collection
}

func NewTagRepository(db *mongo.Database) *TagRepository {
	return &TagRepository{Col: db.Collection("tags")}
}

func (r *TagRepository) FindAll(ctx context.Context) ([]models.Tag, error) {
	return r.find(ctx, bson.M{})
}

func (r *TagRepository) FindByID(ctx context.Context, id string) (*models.Tag, error) {
	var tag models.Tag
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&tag)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &tag, nil
}

func (r *TagRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Tag, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return r.find(ctx, bson.M{"_id": bson.M{"$in": ids}})
}

func (r *TagRepository) find(ctx context.Context, filter bson.M) ([]models.Tag, error) {
	cur, err := r.Col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var tags []models.Tag
	for cur.Next(ctx) {
		var t models.Tag
		if err := cur.Decode(&t); err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}
