package models

import "strings"

const (
	ExamTypeListening = "listening"
	ExamTypeReading   = "reading"
)

type Part struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	Name     string `bson:"name" json:"name"`
	Position int    `bson:"position" json:"position"`
}

// ClassifyPartName maps an exam-section name to listening or reading.
// Sections named with any of the digits 1-4 ("Part 1".."Part 4") are
// listening by convention; everything else is reading.
func ClassifyPartName(name string) string {
	if strings.ContainsAny(name, "1234") {
		return ExamTypeListening
	}
	return ExamTypeReading
}

func (p *Part) ExamType() string {
	return ClassifyPartName(p.Name)
}

func (p *Part) IsListening() bool {
	return p.ExamType() == ExamTypeListening
}
