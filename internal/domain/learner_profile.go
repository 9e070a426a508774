package domain

import (
	"time"

	"gorm.io/datatypes"
)

// LearnerProfile is the latest submitted profile for a learner, keyed by the
// caller-supplied learner id. Regenerating a path overwrites it.
type LearnerProfile struct {
	LearnerID        string         `gorm:"column:learner_id;primaryKey" json:"learner_id"`
	CareerGoal       string         `gorm:"column:career_goal;not null" json:"career_goal"`
	EducationLevel   string         `gorm:"column:education_level" json:"education_level"`
	DesiredSkills    datatypes.JSON `gorm:"type:jsonb;column:desired_skills" json:"desired_skills"`
	Interests        datatypes.JSON `gorm:"type:jsonb;column:interests" json:"interests"`
	ProficiencyLevel string         `gorm:"column:proficiency_level" json:"proficiency_level"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (LearnerProfile) TableName() string { return "learner_profile" }

func (p LearnerProfile) DesiredSkillList() []string {
	return decodeStringList(p.DesiredSkills)
}

func (p LearnerProfile) InterestList() []string {
	return decodeStringList(p.Interests)
}
