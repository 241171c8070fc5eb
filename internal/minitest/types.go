package minitest

import "prep-service/internal/models"

// QuestionView is a question stripped for the pre-test payload: the correct
// option and explanation are withheld until submission.
type QuestionView struct {
	ID       string          `json:"id"`
	Position int             `json:"position"`
	Index    int             `json:"index"`
	Content  string          `json:"content"`
	Options  []models.Option `json:"options"`
	Tags     []string        `json:"tags"`
}

// GroupView is one passage/audio cluster in display order.
type GroupView struct {
	ID        string         `json:"id"`
	Index     int            `json:"index"`
	Position  int            `json:"position"`
	AudioURL  string         `json:"audioUrl,omitempty"`
	ImageURL  string         `json:"imageUrl,omitempty"`
	Passage   string         `json:"passage,omitempty"`
	Questions []QuestionView `json:"questions"`
}

// MiniTest is the assembled tag-targeted practice set.
type MiniTest struct {
	TotalQuestions int         `json:"totalQuestions"`
	QuestionGroups []GroupView `json:"questionGroups"`
}
