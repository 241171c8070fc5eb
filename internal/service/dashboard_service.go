package service

import (
	"context"
	"sync"
	"time"

	"prep-service/internal/kpi"
	"prep-service/internal/repository"
)

// scoreBandBounds splits combined scores into the reporting bands used on
// the admin dashboard.
var scoreBandBounds = []int{0, 255, 505, 755, 995}

var scoreBandLabels = map[int]string{
	0:   "0-250",
	255: "255-500",
	505: "505-750",
	755: "755-990",
}

type ActivityPoint struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type DeepInsight struct {
	ModeUsage           map[string]int64 `json:"modeUsage"`
	RegistrationSources map[string]int64 `json:"registrationSources"`
	ScoreBands          map[string]int64 `json:"scoreBands"`
}

// AdminDashboard is the full admin analytics payload: four KPIs, the
// activity trend series, and the deep-insight breakdowns.
type AdminDashboard struct {
	Period         kpi.Period      `json:"period"`
	NewLearners    kpi.Trend       `json:"newLearners"`
	ActiveLearners kpi.Trend       `json:"activeLearners"`
	Conversations  kpi.Trend       `json:"conversations"`
	TestsSubmitted kpi.Trend       `json:"testsSubmitted"`
	ActivityTrend  []ActivityPoint `json:"activityTrend"`
	DeepInsight    DeepInsight     `json:"deepInsight"`
}

type DashboardService struct {
	UserRepo         *repository.UserRepository
	SubmissionRepo   *repository.SubmissionRepository
	ConversationRepo *repository.ConversationRepository
}

func NewDashboardService(
	userRepo *repository.UserRepository,
	submissionRepo *repository.SubmissionRepository,
	conversationRepo *repository.ConversationRepository,
) *DashboardService {
	return &DashboardService{
		UserRepo:         userRepo,
		SubmissionRepo:   submissionRepo,
		ConversationRepo: conversationRepo,
	}
}

// GetAdminDashboard validates the range, then computes every KPI and
// breakdown concurrently. The reads are independent; the first error wins.
func (s *DashboardService) GetAdminDashboard(ctx context.Context, from, to time.Time) (*AdminDashboard, error) {
	if err := kpi.ValidateRange(from, to, time.Now()); err != nil {
		return nil, err
	}

	current := kpi.CurrentPeriod(from, to)
	dashboard := &AdminDashboard{Period: current}

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error

	run := func(fn func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := fn(); err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
			}
		}()
	}

	run(func() error {
		trend, err := kpi.Compute(ctx, from, to, s.UserRepo.CountCreatedBetween)
		dashboard.NewLearners = trend
		return err
	})
	run(func() error {
		trend, err := kpi.Compute(ctx, from, to, s.SubmissionRepo.CountActiveUsersBetween)
		dashboard.ActiveLearners = trend
		return err
	})
	run(func() error {
		trend, err := kpi.Compute(ctx, from, to, s.ConversationRepo.CountCreatedBetween)
		dashboard.Conversations = trend
		return err
	})
	run(func() error {
		trend, err := kpi.Compute(ctx, from, to, s.SubmissionRepo.CountBetween)
		dashboard.TestsSubmitted = trend
		return err
	})
	run(func() error {
		counts, err := s.SubmissionRepo.CountPerDayBetween(ctx, current.Start, current.End)
		if err != nil {
			return err
		}
		dashboard.ActivityTrend = buildActivitySeries(current, counts)
		return nil
	})
	run(func() error {
		counts, err := s.SubmissionRepo.CountByModeBetween(ctx, current.Start, current.End)
		dashboard.DeepInsight.ModeUsage = counts
		return err
	})
	run(func() error {
		counts, err := s.UserRepo.CountBySourceBetween(ctx, current.Start, current.End)
		dashboard.DeepInsight.RegistrationSources = counts
		return err
	})
	run(func() error {
		bands, err := s.SubmissionRepo.CountScoreBandsBetween(ctx, current.Start, current.End, scoreBandBounds)
		if err != nil {
			return err
		}
		dashboard.DeepInsight.ScoreBands = labelScoreBands(bands)
		return nil
	})

	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}
	return dashboard, nil
}

// buildActivitySeries densifies the per-day counts into one point per
// calendar day of the period, zero-filled.
func buildActivitySeries(period kpi.Period, counts map[string]int64) []ActivityPoint {
	var series []ActivityPoint
	for day := period.Start; day.Before(period.End); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		series = append(series, ActivityPoint{Date: key, Count: counts[key]})
	}
	return series
}

func labelScoreBands(bands map[int]int64) map[string]int64 {
	labeled := make(map[string]int64, len(scoreBandLabels))
	for _, lower := range scoreBandBounds[:len(scoreBandBounds)-1] {
		labeled[scoreBandLabels[lower]] = bands[lower]
	}
	return labeled
}
