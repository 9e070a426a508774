package testutil

import (
	"context"
	"testing"
	"time"

	"gorm.io/gorm"

	types "github.com/skillone/skillpath-backend/internal/domain"
)

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, id, title string, prereqs []string) *types.Course {
	tb.Helper()
	c := &types.Course{
		ID:             id,
		Title:          title,
		Description:    "desc for " + title,
		Tags:           types.StringList([]string{"general"}),
		Difficulty:     "Beginner",
		EducationLevel: "Undergraduate",
		Prerequisites:  types.StringList(prereqs),
		CreatedAt:      time.Now().UTC(),
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedLearnerProfile(tb testing.TB, ctx context.Context, tx *gorm.DB, learnerID, goal string) *types.LearnerProfile {
	tb.Helper()
	p := &types.LearnerProfile{
		LearnerID:        learnerID,
		CareerGoal:       goal,
		EducationLevel:   "Undergraduate",
		DesiredSkills:    types.StringList([]string{"go", "sql"}),
		Interests:        types.StringList([]string{}),
		ProficiencyLevel: "Beginner",
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed learner profile: %v", err)
	}
	return p
}
