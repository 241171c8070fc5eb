package service

import (
	"context"
	"fmt"
	"strings"

	"prep-service/internal/minitest"
	"prep-service/internal/models"
	"prep-service/internal/repository"
)

type MiniTestService struct {
	PartRepo     *repository.PartRepository
	TagRepo      *repository.TagRepository
	QuestionRepo *repository.QuestionRepository
	GroupRepo    *repository.GroupRepository
	Sampler      *minitest.Sampler
}

func NewMiniTestService(
	partRepo *repository.PartRepository,
	tagRepo *repository.TagRepository,
	questionRepo *repository.QuestionRepository,
	groupRepo *repository.GroupRepository,
) *MiniTestService {
	return &MiniTestService{
		PartRepo:     partRepo,
		TagRepo:      tagRepo,
		QuestionRepo: questionRepo,
		GroupRepo:    groupRepo,
		Sampler:      minitest.NewSampler(),
	}
}

// Generate builds a tag-balanced mini test. Referenced part and tags must
// exist before any pool is loaded; selection errors propagate typed.
func (s *MiniTestService) Generate(ctx context.Context, partID string, tagIDs []string, count int) (*minitest.MiniTest, error) {
	part, err := s.PartRepo.FindByID(ctx, partID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, fmt.Errorf("%w: part %s", ErrNotFound, partID)
	}

	tags, err := s.TagRepo.FindByIDs(ctx, tagIDs)
	if err != nil {
		return nil, err
	}
	tagNameByID := make(map[string]string, len(tags))
	for _, t := range tags {
		tagNameByID[t.ID] = t.Name
	}
	var missing []string
	for _, id := range tagIDs {
		if _, ok := tagNameByID[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: tags %s", ErrNotFound, strings.Join(missing, ", "))
	}

	pool, err := s.QuestionRepo.FindByPartAndTags(ctx, partID, tagIDs)
	if err != nil {
		return nil, err
	}

	selected, err := s.Sampler.Select(pool, tagIDs, count)
	if err != nil {
		return nil, err
	}

	groupIDs := make([]string, 0, len(selected))
	seen := make(map[string]bool)
	for _, q := range selected {
		if !seen[q.GroupID] {
			seen[q.GroupID] = true
			groupIDs = append(groupIDs, q.GroupID)
		}
	}
	groups, err := s.GroupRepo.FindByIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	groupByID := make(map[string]models.Group, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
	}

	mt := minitest.Build(selected, groupByID, tagNameByID)
	return &mt, nil
}
