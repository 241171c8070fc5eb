package repository

import (
	"context"

	"prep-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GroupRepository struct {
	Col *mongo.Collection
}

func NewGroupRepository(db *mongo.Database) *GroupRepository {
	return &GroupRepository{Col: db.Collection("groups")}
}

func (r *GroupRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Group, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var groups []models.Group
	for cur.Next(ctx) {
		var g models.Group
		if err := cur.Decode(&g); err != nil {
			return nil, err
		}
		groups = append(groups, g)
	}
	return groups, nil
}

type PartRepository struct {
	Col *mongo.Collection
}

func NewPartRepository(db *mongo.Database) *PartRepository {
	return &PartRepository{Col: db.Collection("parts")}
}

func (r *PartRepository) FindAll(ctx context.Context) ([]models.Part, error) {
	cur, err := r.Col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var parts []models.Part
	for cur.Next(ctx) {
		var p models.Part
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}

func (r *PartRepository) FindByID(ctx context.Context, id string) (*models.Part, error) {
	var part models.Part
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&part)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &part, nil
}

func (r *PartRepository) FindByIDs(ctx context.Context, ids []string) ([]models.Part, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	cur, err := r.Col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var parts []models.Part
	for cur.Next(ctx) {
		var p models.Part
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		parts = append(parts, p)
	}
	return parts, nil
}
