package app

import (
	"gorm.io/gorm"

	"github.com/skillone/skillpath-backend/internal/data/repos"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type Repos struct {
	Course      repos.CourseRepo
	Profile     repos.LearnerProfileRepo
	Path        repos.LearningPathRepo
	Goal        repos.CareerGoalRepo
	Interaction repos.InteractionRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Course:      repos.NewCourseRepo(db, log),
		Profile:     repos.NewLearnerProfileRepo(db, log),
		Path:        repos.NewLearningPathRepo(db, log),
		Goal:        repos.NewCareerGoalRepo(db, log),
		Interaction: repos.NewInteractionRepo(db, log),
	}
}
