package minitest

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"prep-service/internal/models"
)

func taggedQuestion(id string, tagIDs ...string) models.Question {
	return models.Question{ID: id, GroupID: "g-" + id, TagIDs: tagIDs}
}

func TestShuffleIsPureAndSeeded(t *testing.T) {
	pool := make([]models.Question, 10)
	for i := range pool {
		pool[i] = taggedQuestion(fmt.Sprintf("q%d", i), "t1")
	}

	a := NewSeededSampler(42).Shuffle(pool)
	b := NewSeededSampler(42).Shuffle(pool)

	if len(a) != len(pool) {
		t.Fatalf("Expected %d questions, got %d", len(pool), len(a))
	}
	for i := range a {
		if a[i].ID != b[i].ID {
			t.Fatalf("Same seed produced different orders at %d: %s vs %s", i, a[i].ID, b[i].ID)
		}
	}

	// Input order untouched.
	for i := range pool {
		if pool[i].ID != fmt.Sprintf("q%d", i) {
			t.Fatal("Shuffle mutated its input")
		}
	}

	// Result is a permutation.
	seen := make(map[string]bool)
	for _, q := range a {
		if seen[q.ID] {
			t.Fatalf("Duplicate %s in shuffle output", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSelectRoundRobinFairness(t *testing.T) {
	// 3 tags with 2 unique questions each, target 6: every id distinct and
	// each tag contributes once before any tag contributes twice.
	pool := []models.Question{
		taggedQuestion("a1", "t1"), taggedQuestion("a2", "t1"),
		taggedQuestion("b1", "t2"), taggedQuestion("b2", "t2"),
		taggedQuestion("c1", "t3"), taggedQuestion("c2", "t3"),
	}
	tags := []string{"t1", "t2", "t3"}

	selected, err := NewSeededSampler(7).Select(pool, tags, 6)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(selected) != 6 {
		t.Fatalf("Expected 6 questions, got %d", len(selected))
	}

	seen := make(map[string]bool)
	for _, q := range selected {
		if seen[q.ID] {
			t.Errorf("Question %s selected twice", q.ID)
		}
		seen[q.ID] = true
	}

	// First round covers each tag exactly once, in request order.
	firstRound := selected[:3]
	for i, tagID := range tags {
		if !firstRound[i].HasTag(tagID) {
			t.Errorf("Round 1 slot %d: expected a %s question, got %s", i, tagID, firstRound[i].ID)
		}
	}
}

func TestSelectShortResultWhenUnionSmallerThanTarget(t *testing.T) {
	// Two fully overlapping tags: union is 3 distinct questions.
	pool := []models.Question{
		taggedQuestion("q1", "t1", "t2"),
		taggedQuestion("q2", "t1", "t2"),
		taggedQuestion("q3", "t1", "t2"),
	}

	selected, err := NewSeededSampler(1).Select(pool, []string{"t1", "t2"}, 10)
	if err != nil {
		t.Fatalf("Expected short result, got error: %v", err)
	}
	if len(selected) != 3 {
		t.Errorf("Expected the full union of 3, got %d", len(selected))
	}
}

func TestSelectDisjointPoolsExhaustTogether(t *testing.T) {
	pool := []models.Question{
		taggedQuestion("a1", "t1"), taggedQuestion("a2", "t1"),
		taggedQuestion("b1", "t2"), taggedQuestion("b2", "t2"),
	}

	selected, err := NewSeededSampler(3).Select(pool, []string{"t1", "t2"}, 10)
	if err != nil {
		t.Fatalf("Expected short result, got error: %v", err)
	}
	if len(selected) != 4 {
		t.Errorf("Expected all 4 questions, got %d", len(selected))
	}
}

func TestSelectTagExhaustionIsFatal(t *testing.T) {
	// t2 has a single question; t1 still has supply when t2 runs out on the
	// second round.
	pool := []models.Question{
		taggedQuestion("a1", "t1"), taggedQuestion("a2", "t1"),
		taggedQuestion("a3", "t1"), taggedQuestion("a4", "t1"),
		taggedQuestion("b1", "t2"),
	}

	_, err := NewSeededSampler(5).Select(pool, []string{"t1", "t2"}, 4)
	if !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("Expected ErrPoolExhausted, got %v", err)
	}
}

func TestSelectStopsAtTarget(t *testing.T) {
	pool := []models.Question{
		taggedQuestion("a1", "t1"), taggedQuestion("a2", "t1"),
		taggedQuestion("b1", "t2"), taggedQuestion("b2", "t2"),
	}

	selected, err := NewSeededSampler(11).Select(pool, []string{"t1", "t2"}, 3)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(selected) != 3 {
		t.Errorf("Expected exactly 3 questions, got %d", len(selected))
	}
}

func TestSelectEmptyPool(t *testing.T) {
	// No candidates at all: the union (zero questions) is consumed before
	// any draw, so the result is empty rather than an exhaustion error.
	selected, err := NewSeededSampler(9).Select(nil, []string{"t1"}, 5)
	if err != nil {
		t.Fatalf("Expected empty selection, got error: %v", err)
	}
	if len(selected) != 0 {
		t.Errorf("Expected no questions, got %d", len(selected))
	}
}

func TestSamplerServesConcurrentSelections(t *testing.T) {
	// One sampler instance is shared by every request; concurrent
	// selections must each stay valid (run with -race to verify the
	// shared random source is safe).
	pool := make([]models.Question, 50)
	for i := range pool {
		pool[i] = taggedQuestion(fmt.Sprintf("q%d", i), "t1")
	}
	s := NewSeededSampler(1)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			selected, err := s.Select(pool, []string{"t1"}, 20)
			if err != nil {
				t.Errorf("Unexpected error: %v", err)
				return
			}
			if len(selected) != 20 {
				t.Errorf("Expected 20 questions, got %d", len(selected))
			}
			seen := make(map[string]bool, len(selected))
			for _, q := range selected {
				if seen[q.ID] {
					t.Errorf("Question %s selected twice", q.ID)
				}
				seen[q.ID] = true
			}
		}()
	}
	wg.Wait()
}

func TestBuildRegrouping(t *testing.T) {
	groups := map[string]models.Group{
		"g1": {ID: "g1", Position: 2, Passage: "A short passage", AudioURL: "audio/g1.mp3"},
		"g2": {ID: "g2", Position: 5},
	}
	tagNames := map[string]string{"t1": "grammar", "t2": "inference"}

	selected := []models.Question{
		{ID: "q3", GroupID: "g1", Position: 3, TagIDs: []string{"t1"}},
		{ID: "q5", GroupID: "g2", Position: 1, TagIDs: []string{"t2"}},
		{ID: "q1", GroupID: "g1", Position: 1, TagIDs: []string{"t1", "t2"}},
	}

	mt := Build(selected, groups, tagNames)

	if mt.TotalQuestions != 3 {
		t.Errorf("Expected 3 total questions, got %d", mt.TotalQuestions)
	}
	if len(mt.QuestionGroups) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(mt.QuestionGroups))
	}

	g1 := mt.QuestionGroups[0]
	if g1.ID != "g1" || g1.Index != 1 {
		t.Errorf("Expected g1 first with index 1, got %s index %d", g1.ID, g1.Index)
	}
	if g1.Passage != "A short passage" || g1.AudioURL != "audio/g1.mp3" {
		t.Errorf("Group media not carried over: %+v", g1)
	}

	// Questions sort by stored position within the group.
	if g1.Questions[0].ID != "q1" || g1.Questions[1].ID != "q3" {
		t.Errorf("Expected position order [q1, q3], got [%s, %s]", g1.Questions[0].ID, g1.Questions[1].ID)
	}

	// One running display index across all questions, not reset per group.
	g2 := mt.QuestionGroups[1]
	if g1.Questions[0].Index != 1 || g1.Questions[1].Index != 2 || g2.Questions[0].Index != 3 {
		t.Errorf("Unexpected display indexes: %d %d %d",
			g1.Questions[0].Index, g1.Questions[1].Index, g2.Questions[0].Index)
	}

	if len(g1.Questions[0].Tags) != 2 {
		t.Errorf("Expected 2 tag names on q1, got %v", g1.Questions[0].Tags)
	}
}
