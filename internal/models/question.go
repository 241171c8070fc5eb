package models

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

type Question struct {
	ID            string   `bson:"_id,omitempty" json:"id"`
	GroupID       string   `bson:"group_id" json:"group_id"`
	PartID        string   `bson:"part_id" json:"part_id"` // denormalized from the group for pool queries
	Position      int      `bson:"position" json:"position"`
	Content       string   `bson:"content" json:"content"`
	Options       []Option `bson:"options" json:"options"`
	CorrectOption string   `bson:"correct_option" json:"correct_option"`
	Explanation   string   `bson:"explanation" json:"explanation"`
	TagIDs        []string `bson:"tag_ids" json:"tag_ids"`
}

// HasTag reports whether the question carries the given knowledge tag.
func (q *Question) HasTag(tagID string) bool {
	for _, id := range q.TagIDs {
		if id == tagID {
			return true
		}
	}
	return false
}

type Group struct {
	ID       string `bson:"_id,omitempty" json:"id"`
	TestID   string `bson:"test_id" json:"test_id"`
	PartID   string `bson:"part_id" json:"part_id"`
	Position int    `bson:"position" json:"position"`
	Passage  string `bson:"passage" json:"passage"`
	AudioURL string `bson:"audio_url" json:"audio_url"`
	ImageURL string `bson:"image_url" json:"image_url"`
}

type Tag struct {
	ID   string `bson:"_id,omitempty" json:"id"`
	Name string `bson:"name" json:"name"` // globally unique
}
