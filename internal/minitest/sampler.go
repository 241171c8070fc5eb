package minitest

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"prep-service/internal/models"
)

// ErrPoolExhausted is returned when a requested tag's question pool runs out
// while the round-robin still needs a draw from it. Surfaced distinctly from
// not-found so callers can suggest a lower count or broader tags.
var ErrPoolExhausted = errors.New("question pool exhausted")

// Sampler draws a deduplicated, tag-balanced question subset. The random
// source is injected so selection is deterministic under a fixed seed; a
// mutex serializes draws so one sampler can serve concurrent requests,
// which keeps every other piece of selection state scoped to a single call.
type Sampler struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewSampler() *Sampler {
	return NewSeededSampler(time.Now().UnixNano())
}

func NewSeededSampler(seed int64) *Sampler {
	return &Sampler{rand: rand.New(rand.NewSource(seed))}
}

// Shuffle returns a new uniformly shuffled copy of the pool (Fisher-Yates).
// The input slice is left untouched.
func (s *Sampler) Shuffle(pool []models.Question) []models.Question {
	shuffled := make([]models.Question, len(pool))
	copy(shuffled, pool)
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(shuffled) - 1; i > 0; i-- {
		j := s.rand.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return shuffled
}

// cursors tracks the per-tag read position across round-robin rounds.
type cursors struct {
	next map[string]int
}

func newCursors(tagIDs []string) *cursors {
	c := &cursors{next: make(map[string]int, len(tagIDs))}
	for _, id := range tagIDs {
		c.next[id] = 0
	}
	return c
}

// draw advances the tag's cursor past already-used questions and returns the
// first unused one. ok is false when the tag's list is exhausted.
func (c *cursors) draw(tagID string, list []models.Question, used map[string]bool) (models.Question, bool) {
	i := c.next[tagID]
	for i < len(list) && used[list[i].ID] {
		i++
	}
	c.next[tagID] = i
	if i >= len(list) {
		return models.Question{}, false
	}
	c.next[tagID] = i + 1
	return list[i], true
}

// Select shuffles the pool and round-robins across the requested tags until
// target questions are chosen. Tags are visited in request order; a question
// qualifying under several tags is selected at most once. A tag whose list
// runs out while a draw from it is still required fails the whole request
// with ErrPoolExhausted; a full round that adds nothing ends selection early
// with the deduplicated union instead of looping forever.
func (s *Sampler) Select(pool []models.Question, tagIDs []string, target int) ([]models.Question, error) {
	shuffled := s.Shuffle(pool)

	byTag := make(map[string][]models.Question, len(tagIDs))
	for _, q := range shuffled {
		for _, tagID := range tagIDs {
			if q.HasTag(tagID) {
				byTag[tagID] = append(byTag[tagID], q)
			}
		}
	}

	selected := make([]models.Question, 0, target)
	used := make(map[string]bool, target)
	state := newCursors(tagIDs)

	for len(selected) < target {
		added := 0
		for _, tagID := range tagIDs {
			if len(selected) >= target {
				break
			}
			q, ok := state.draw(tagID, byTag[tagID], used)
			if !ok {
				if len(used) >= len(pool) {
					// The deduplicated union is consumed; a short
					// result, not an error.
					return selected, nil
				}
				return nil, fmt.Errorf("%w: tag %s", ErrPoolExhausted, tagID)
			}
			selected = append(selected, q)
			used[q.ID] = true
			added++
		}
		if added == 0 {
			break
		}
	}

	return selected, nil
}
