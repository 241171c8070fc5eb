package models

import "time"

const (
	ModeExam     = "exam"
	ModePractice = "practice"
)

// Submission is one learner attempt at a test. The section counters are
// computed once at submission time; the three score fields are filled in
// asynchronously by score calculation and stay nil for practice runs.
type Submission struct {
	ID                      string    `bson:"_id,omitempty" json:"id"`
	UserID                  string    `bson:"user_id" json:"user_id"`
	TestID                  string    `bson:"test_id" json:"test_id"`
	Mode                    string    `bson:"mode" json:"mode"`
	TimeSpentSeconds        int       `bson:"time_spent_seconds" json:"time_spent_seconds"`
	TotalListeningQuestions int       `bson:"total_listening_questions" json:"total_listening_questions"`
	CorrectListeningAnswers int       `bson:"correct_listening_answers" json:"correct_listening_answers"`
	TotalReadingQuestions   int       `bson:"total_reading_questions" json:"total_reading_questions"`
	CorrectReadingAnswers   int       `bson:"correct_reading_answers" json:"correct_reading_answers"`
	ListeningScore          *int      `bson:"listening_score,omitempty" json:"listening_score,omitempty"`
	ReadingScore            *int      `bson:"reading_score,omitempty" json:"reading_score,omitempty"`
	TotalScore              *int      `bson:"total_score,omitempty" json:"total_score,omitempty"`
	CreatedAt               time.Time `bson:"created_at" json:"created_at"`
}

// IsFullTest reports whether the attempt was a full timed exam, i.e. a
// combined score has been calculated for it.
func (s *Submission) IsFullTest() bool {
	return s.TotalScore != nil
}

// Answer is one learner response inside a submission. The group id is
// stored redundantly so aggregation does not need a question lookup to
// resolve the owning group. Correctness is computed once at submission
// time and never recomputed.
type Answer struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	SubmissionID string    `bson:"submission_id" json:"submission_id"`
	QuestionID   string    `bson:"question_id" json:"question_id"`
	GroupID      string    `bson:"group_id" json:"group_id"`
	ChosenOption *string   `bson:"chosen_option,omitempty" json:"chosen_option,omitempty"` // nil when unanswered
	IsCorrect    bool      `bson:"is_correct" json:"is_correct"`
	CreatedAt    time.Time `bson:"created_at" json:"created_at"`
}
