package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// LearningPath is one generated recommendation. A learner keeps at most one
// row; saving a new path replaces the old one.
type LearningPath struct {
	ID              uuid.UUID      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LearnerID       string         `gorm:"column:learner_id;not null;index" json:"learner_id"`
	CourseSequence  datatypes.JSON `gorm:"type:jsonb;column:course_sequence" json:"course_sequence"`
	RelevanceScores datatypes.JSON `gorm:"type:jsonb;column:relevance_scores" json:"relevance_scores"`
	Reasoning       string         `gorm:"column:reasoning;type:text" json:"reasoning"`
	TotalCourses    int            `gorm:"column:total_courses;not null;default:0" json:"total_courses"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (LearningPath) TableName() string { return "learning_path" }

func (p LearningPath) Sequence() []string {
	return decodeStringList(p.CourseSequence)
}

// Scores decodes the relevance_scores column; malformed JSON yields an empty
// map.
func (p LearningPath) Scores() map[string]float64 {
	out := map[string]float64{}
	if len(p.RelevanceScores) == 0 {
		return out
	}
	if err := json.Unmarshal(p.RelevanceScores, &out); err != nil {
		return map[string]float64{}
	}
	return out
}

// ScoreMap encodes a score map for the relevance_scores column.
func ScoreMap(scores map[string]float64) datatypes.JSON {
	if scores == nil {
		scores = map[string]float64{}
	}
	b, err := json.Marshal(scores)
	if err != nil {
		return datatypes.JSON([]byte(`{}`))
	}
	return datatypes.JSON(b)
}
