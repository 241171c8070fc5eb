package service

import (
	"context"
	"fmt"
	"time"

	"prep-service/internal/analytics"
	"prep-service/internal/models"
	"prep-service/internal/repository"
)

const maxRecentFullTests = 10

type AnalyticsService struct {
	UserRepo       *repository.UserRepository
	SubmissionRepo *repository.SubmissionRepository
	AnswerRepo     *repository.AnswerRepository
	QuestionRepo   *repository.QuestionRepository
	GroupRepo      *repository.GroupRepository
	PartRepo       *repository.PartRepository
	TagRepo        *repository.TagRepository
	TestRepo       *repository.TestRepository
}

func NewAnalyticsService(
	userRepo *repository.UserRepository,
	submissionRepo *repository.SubmissionRepository,
	answerRepo *repository.AnswerRepository,
	questionRepo *repository.QuestionRepository,
	groupRepo *repository.GroupRepository,
	partRepo *repository.PartRepository,
	tagRepo *repository.TagRepository,
	testRepo *repository.TestRepository,
) *AnalyticsService {
	return &AnalyticsService{
		UserRepo:       userRepo,
		SubmissionRepo: submissionRepo,
		AnswerRepo:     answerRepo,
		QuestionRepo:   questionRepo,
		GroupRepo:      groupRepo,
		PartRepo:       partRepo,
		TagRepo:        tagRepo,
		TestRepo:       testRepo,
	}
}

// GetUserBreakdown folds the learner's answer history inside the lookback
// window into the nested section/part/tag statistics. The window is anchored
// at the learner's latest submission, falling back to now.
func (s *AnalyticsService) GetUserBreakdown(ctx context.Context, userID string, windowDays int) (*analytics.Breakdown, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	anchor := time.Now()
	latest, err := s.SubmissionRepo.FindLatestByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if latest != nil {
		anchor = latest.CreatedAt
	}
	since := anchor.AddDate(0, 0, -windowDays)

	subs, err := s.SubmissionRepo.FindByUserSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	if len(subs) == 0 {
		b := analytics.BuildBreakdown(nil, nil)
		return &b, nil
	}

	records, err := s.loadAnswerRecords(ctx, subs)
	if err != nil {
		return nil, err
	}

	b := analytics.BuildBreakdown(subs, records)
	return &b, nil
}

// loadAnswerRecords joins the window's answers with their questions' tag
// names and their groups' part names.
func (s *AnalyticsService) loadAnswerRecords(ctx context.Context, subs []models.Submission) ([]analytics.AnswerRecord, error) {
	subIDs := make([]string, 0, len(subs))
	for _, sub := range subs {
		subIDs = append(subIDs, sub.ID)
	}
	answers, err := s.AnswerRepo.FindBySubmissions(ctx, subIDs)
	if err != nil {
		return nil, err
	}

	questionIDs := distinct(answers, func(a models.Answer) string { return a.QuestionID })
	groupIDs := distinct(answers, func(a models.Answer) string { return a.GroupID })

	questions, err := s.QuestionRepo.FindByIDs(ctx, questionIDs)
	if err != nil {
		return nil, err
	}
	questionByID := make(map[string]models.Question, len(questions))
	tagIDSet := make(map[string]bool)
	for _, q := range questions {
		questionByID[q.ID] = q
		for _, id := range q.TagIDs {
			tagIDSet[id] = true
		}
	}

	groups, err := s.GroupRepo.FindByIDs(ctx, groupIDs)
	if err != nil {
		return nil, err
	}
	partIDSet := make(map[string]bool)
	groupByID := make(map[string]models.Group, len(groups))
	for _, g := range groups {
		groupByID[g.ID] = g
		partIDSet[g.PartID] = true
	}

	parts, err := s.PartRepo.FindByIDs(ctx, keys(partIDSet))
	if err != nil {
		return nil, err
	}
	partNameByID := make(map[string]string, len(parts))
	for _, p := range parts {
		partNameByID[p.ID] = p.Name
	}

	tags, err := s.TagRepo.FindByIDs(ctx, keys(tagIDSet))
	if err != nil {
		return nil, err
	}
	tagNameByID := make(map[string]string, len(tags))
	for _, t := range tags {
		tagNameByID[t.ID] = t.Name
	}

	records := make([]analytics.AnswerRecord, 0, len(answers))
	for _, a := range answers {
		group, ok := groupByID[a.GroupID]
		if !ok {
			continue
		}
		rec := analytics.AnswerRecord{
			PartName:  partNameByID[group.PartID],
			IsCorrect: a.IsCorrect,
		}
		if q, ok := questionByID[a.QuestionID]; ok {
			for _, tagID := range q.TagIDs {
				if name, ok := tagNameByID[tagID]; ok {
					rec.TagNames = append(rec.TagNames, name)
				}
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

// GetFullTestSummary computes the recent full-test trend over the learner's
// latest scored attempts on currently approved tests.
func (s *AnalyticsService) GetFullTestSummary(ctx context.Context, userID string, size int) (*analytics.TrendSummary, error) {
	user, err := s.UserRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", ErrNotFound, userID)
	}

	if size <= 0 || size > maxRecentFullTests {
		size = maxRecentFullTests
	}

	approvedIDs, err := s.TestRepo.FindApprovedIDs(ctx)
	if err != nil {
		return nil, err
	}
	subs, err := s.SubmissionRepo.FindRecentFullTests(ctx, userID, approvedIDs, size)
	if err != nil {
		return nil, err
	}

	testIDs := distinct(subs, func(sub models.Submission) string { return sub.TestID })
	tests, err := s.TestRepo.FindByIDs(ctx, testIDs)
	if err != nil {
		return nil, err
	}
	testNameByID := make(map[string]string, len(tests))
	for _, t := range tests {
		testNameByID[t.ID] = t.Name
	}

	attempts := make([]analytics.ScoredAttempt, 0, len(subs))
	for _, sub := range subs {
		attempts = append(attempts, analytics.ScoredAttempt{
			ID:             sub.ID,
			TestName:       testNameByID[sub.TestID],
			CreatedAt:      sub.CreatedAt,
			ListeningScore: sub.ListeningScore,
			ReadingScore:   sub.ReadingScore,
			TotalScore:     sub.TotalScore,
		})
	}

	summary := analytics.SummarizeAttempts(attempts)
	return &summary, nil
}

func distinct[T any](items []T, key func(T) string) []string {
	seen := make(map[string]bool, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, k)
	}
	return out
}

func keys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}
