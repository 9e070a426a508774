package domain

import (
	"time"

	"github.com/google/uuid"
)

// CourseInteraction is an append-only engagement record (viewed, enrolled,
// completed, ...). Interactions are stored for later analysis; path scoring
// never reads them.
type CourseInteraction struct {
	ID              uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	LearnerID       string    `gorm:"column:learner_id;not null;index" json:"learner_id"`
	CourseID        string    `gorm:"column:course_id;not null;index" json:"course_id"`
	InteractionType string    `gorm:"column:interaction_type;not null" json:"interaction_type"`
	Rating          *int      `gorm:"column:rating" json:"rating,omitempty"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
}

func (CourseInteraction) TableName() string { return "course_interaction" }
