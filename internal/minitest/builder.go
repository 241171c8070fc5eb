package minitest

import (
	"sort"

	"prep-service/internal/models"
)

// Build repackages selected questions into display-ordered groups: groups are
// indexed 1-based in the order they are first encountered, questions sort by
// stored position within their group, and one running 1-based display index
// spans all questions in the response.
func Build(selected []models.Question, groups map[string]models.Group, tagNames map[string]string) MiniTest {
	views := make([]GroupView, 0)
	byGroup := make(map[string]int)

	for _, q := range selected {
		idx, ok := byGroup[q.GroupID]
		if !ok {
			g := groups[q.GroupID]
			views = append(views, GroupView{
				ID:       q.GroupID,
				Index:    len(views) + 1,
				Position: g.Position,
				AudioURL: g.AudioURL,
				ImageURL: g.ImageURL,
				Passage:  g.Passage,
			})
			idx = len(views) - 1
			byGroup[q.GroupID] = idx
		}
		views[idx].Questions = append(views[idx].Questions, questionView(q, tagNames))
	}

	display := 0
	for i := range views {
		sort.Slice(views[i].Questions, func(a, b int) bool {
			return views[i].Questions[a].Position < views[i].Questions[b].Position
		})
		for j := range views[i].Questions {
			display++
			views[i].Questions[j].Index = display
		}
	}

	return MiniTest{
		TotalQuestions: len(selected),
		QuestionGroups: views,
	}
}

func questionView(q models.Question, tagNames map[string]string) QuestionView {
	tags := make([]string, 0, len(q.TagIDs))
	for _, id := range q.TagIDs {
		if name, ok := tagNames[id]; ok {
			tags = append(tags, name)
		}
	}
	return QuestionView{
		ID:       q.ID,
		Position: q.Position,
		Content:  q.Content,
		Options:  q.Options,
		Tags:     tags,
	}
}
