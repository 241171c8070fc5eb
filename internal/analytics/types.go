package analytics

import "time"

// TotalTag is the pseudo-tag row appended last to every part's breakdown.
// It tallies every answer in the part regardless of tagging.
const TotalTag = "Total"

// AnswerRecord is one answer joined with its owning part's display name and
// its question's tag names. The aggregation engine consumes these instead of
// raw documents so it stays a pure fold over already-loaded rows.
type AnswerRecord struct {
	PartName  string   `json:"part_name"`
	TagNames  []string `json:"tag_names"`
	IsCorrect bool     `json:"is_correct"`
}

// TagRow is one line of a part's breakdown.
type TagRow struct {
	Tag            string  `json:"tag"`
	CorrectAnswers int     `json:"correctAnswers"`
	WrongAnswers   int     `json:"wrongAnswers"`
	CorrectPercent float64 `json:"correctPercent"`
}

// SectionStats aggregates one exam section (listening or reading).
type SectionStats struct {
	ExamType            string              `json:"examType"`
	TotalQuestions      int                 `json:"totalQuestions"`
	TotalCorrectAnswers int                 `json:"totalCorrectAnswers"`
	CorrectPercent      float64             `json:"correctPercent"`
	UserAnswersByPart   map[string][]TagRow `json:"userAnswersByPart"`
}

// Breakdown is the full analytics payload for one learner window,
// listening section first, reading second.
type Breakdown struct {
	NumberOfTests       int            `json:"numberOfTests"`
	NumberOfSubmissions int            `json:"numberOfSubmissions"`
	TotalTimes          int            `json:"totalTimes"`
	ExamList            []SectionStats `json:"examList"`
}

// ScoredAttempt is one full-test submission joined with its test's name,
// consumed by the recent-trend summary. Score pointers are nil when the
// asynchronous score calculation has not produced a value.
type ScoredAttempt struct {
	ID             string
	TestName       string
	CreatedAt      time.Time
	ListeningScore *int
	ReadingScore   *int
	TotalScore     *int
}

// AttemptRow is one row of the recent-tests list. Missing scores render as 0.
type AttemptRow struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"createdAt"`
	ListeningScore int       `json:"listeningScore"`
	ReadingScore   int       `json:"readingScore"`
	TotalScore     int       `json:"totalScore"`
}

// TrendSummary is the recent full-test view: means rounded to the nearest
// multiple of 5 per the platform's score-reporting convention, maxima exact.
type TrendSummary struct {
	AverageScore          int          `json:"averageScore"`
	HighestScore          int          `json:"highestScore"`
	AverageListeningScore int          `json:"averageListeningScore"`
	AverageReadingScore   int          `json:"averageReadingScore"`
	MaxListeningScore     int          `json:"maxListeningScore"`
	MaxReadingScore       int          `json:"maxReadingScore"`
	RecentTests           []AttemptRow `json:"recentTests"`
}
