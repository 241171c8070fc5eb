package service

import (
	"context"

	"prep-service/internal/models"
	"prep-service/internal/repository"
)

type TagService struct {
	Repo *repository.TagRepository
}

func NewTagService(repo *repository.TagRepository) *TagService {
	return &TagService{Repo: repo}
}

// GetAllTags returns every knowledge tag for the mini-test picker.
func (s *TagService) GetAllTags(ctx context.Context) ([]models.Tag, error) {
	return s.Repo.FindAll(ctx)
}

func (s *TagService) GetTagByID(ctx context.Context, id string) (*models.Tag, error) {
	return s.Repo.FindByID(ctx, id)
}

type PartService struct {
	Repo *repository.PartRepository
}

func NewPartService(repo *repository.PartRepository) *PartService {
	return &PartService{Repo: repo}
}

func (s *PartService) GetAllParts(ctx context.Context) ([]models.Part, error) {
	return s.Repo.FindAll(ctx)
}
