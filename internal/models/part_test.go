package models

import (
	"testing"
)

func TestClassifyPartName(t *testing.T) {
	testCases := []struct {
		name     string
		expected string
	}{
		{"Part 1", ExamTypeListening},
		{"Part 2", ExamTypeListening},
		{"Part 3", ExamTypeListening},
		{"Part 4", ExamTypeListening},
		{"Part 5", ExamTypeReading},
		{"Part 6", ExamTypeReading},
		{"Part 7", ExamTypeReading},
		{"Reading Comprehension", ExamTypeReading},
		{"Section 2 - Conversations", ExamTypeListening},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyPartName(tc.name)
			if got != tc.expected {
				t.Errorf("ClassifyPartName(%q) = %q, want %q", tc.name, got, tc.expected)
			}
		})
	}
}

func TestPartExamType(t *testing.T) {
	p := &Part{ID: "p3", Name: "Part 3"}
	if !p.IsListening() {
		t.Error("Expected Part 3 to be listening")
	}

	p = &Part{ID: "p7", Name: "Part 7"}
	if p.IsListening() {
		t.Error("Expected Part 7 to be reading")
	}
	if p.ExamType() != ExamTypeReading {
		t.Errorf("Expected reading, got %s", p.ExamType())
	}
}

func TestSubmissionIsFullTest(t *testing.T) {
	score := 785
	full := &Submission{TotalScore: &score}
	if !full.IsFullTest() {
		t.Error("Expected submission with a total score to be a full test")
	}

	practice := &Submission{}
	if practice.IsFullTest() {
		t.Error("Expected submission without a total score to be a practice run")
	}
}
