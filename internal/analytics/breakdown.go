package analytics

import (
	"sync"

	"prep-service/internal/models"
)

type tally struct {
	correct int
	total   int
}

func (t *tally) add(correct bool) {
	t.total++
	if correct {
		t.correct++
	}
}

func (t *tally) row(tag string) TagRow {
	wrong := t.total - t.correct
	return TagRow{
		Tag:            tag,
		CorrectAnswers: t.correct,
		WrongAnswers:   wrong,
		CorrectPercent: Percent(t.correct, wrong),
	}
}

type partTallies struct {
	tagOrder []string
	tags     map[string]*tally
	total    tally
}

func (p *partTallies) tag(name string) *tally {
	if t, ok := p.tags[name]; ok {
		return t
	}
	t := &tally{}
	p.tags[name] = t
	p.tagOrder = append(p.tagOrder, name)
	return t
}

// Accumulator is the two-level part -> tag tally structure. Parts and tags
// keep first-seen insertion order so fixtures aggregate deterministically.
type Accumulator struct {
	partOrder []string
	parts     map[string]*partTallies
}

func NewAccumulator() *Accumulator {
	return &Accumulator{parts: make(map[string]*partTallies)}
}

// Add tallies one answer. An answer whose question carries N tags is counted
// once under each of its N tags (multi-label fan-out); the part's Total
// pseudo-tag counts it exactly once regardless of tagging.
func (a *Accumulator) Add(rec AnswerRecord) {
	p, ok := a.parts[rec.PartName]
	if !ok {
		p = &partTallies{tags: make(map[string]*tally)}
		a.parts[rec.PartName] = p
		a.partOrder = append(a.partOrder, rec.PartName)
	}
	for _, tag := range rec.TagNames {
		p.tag(tag).add(rec.IsCorrect)
	}
	p.total.add(rec.IsCorrect)
}

// PartNames returns the parts in first-seen order.
func (a *Accumulator) PartNames() []string {
	return a.partOrder
}

// Rows materializes the breakdown, one ordered row list per part with the
// Total pseudo-tag appended last.
func (a *Accumulator) Rows() map[string][]TagRow {
	rows := make(map[string][]TagRow, len(a.parts))
	for _, part := range a.partOrder {
		p := a.parts[part]
		list := make([]TagRow, 0, len(p.tagOrder)+1)
		for _, tag := range p.tagOrder {
			list = append(list, p.tags[tag].row(tag))
		}
		list = append(list, p.total.row(TotalTag))
		rows[part] = list
	}
	return rows
}

// BuildBreakdown folds a window of submissions and joined answer records into
// the learner's nested statistics. Section totals come from the submissions'
// own precomputed counters; the part/tag breakdown is derived from the
// answer records because tag membership is not precomputed on submissions.
// The two section passes are independent and run concurrently.
func BuildBreakdown(subs []models.Submission, records []AnswerRecord) Breakdown {
	b := Breakdown{ExamList: make([]SectionStats, 2)}

	testIDs := make(map[string]bool)
	for _, s := range subs {
		testIDs[s.TestID] = true
		b.TotalTimes += s.TimeSpentSeconds
	}
	b.NumberOfTests = len(testIDs)
	b.NumberOfSubmissions = len(subs)

	var wg sync.WaitGroup
	for i, examType := range []string{models.ExamTypeListening, models.ExamTypeReading} {
		wg.Add(1)
		go func(i int, examType string) {
			defer wg.Done()
			b.ExamList[i] = buildSection(examType, subs, records)
		}(i, examType)
	}
	wg.Wait()

	return b
}

func buildSection(examType string, subs []models.Submission, records []AnswerRecord) SectionStats {
	s := SectionStats{ExamType: examType}

	for _, sub := range subs {
		if examType == models.ExamTypeListening {
			s.TotalQuestions += sub.TotalListeningQuestions
			s.TotalCorrectAnswers += sub.CorrectListeningAnswers
		} else {
			s.TotalQuestions += sub.TotalReadingQuestions
			s.TotalCorrectAnswers += sub.CorrectReadingAnswers
		}
	}
	s.CorrectPercent = Percent(s.TotalCorrectAnswers, s.TotalQuestions-s.TotalCorrectAnswers)

	acc := NewAccumulator()
	for _, rec := range records {
		if models.ClassifyPartName(rec.PartName) == examType {
			acc.Add(rec)
		}
	}
	s.UserAnswersByPart = acc.Rows()

	return s
}
