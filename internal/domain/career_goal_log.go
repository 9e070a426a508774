package domain

import "time"

// CareerGoalLog counts how often each exact goal string has been submitted.
// Suggestion lookups rank by frequency.
type CareerGoalLog struct {
	CareerGoal string `gorm:"column:career_goal;primaryKey" json:"career_goal"`
	Frequency  int64  `gorm:"column:frequency;not null;default:1" json:"frequency"`

	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (CareerGoalLog) TableName() string { return "career_goal_log" }
