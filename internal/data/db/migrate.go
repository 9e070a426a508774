package db

import (
	"fmt"

	"gorm.io/gorm"

	types "github.com/skillone/skillpath-backend/internal/domain"
)

func AutoMigrateAll(db *gorm.DB) error {
	return db.AutoMigrate(
		// Catalog
		&types.Course{},

		// Learners + generated paths
		&types.LearnerProfile{},
		&types.LearningPath{},

		// Engagement + suggestion signals
		&types.CareerGoalLog{},
		&types.CourseInteraction{},
	)
}

func EnsureCatalogIndexes(db *gorm.DB) error {
	// Catalog order is created_at then id; reads always sort by both.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_course_created_at_id
		ON course (created_at, id);
	`).Error; err != nil {
		return fmt.Errorf("create idx_course_created_at_id: %w", err)
	}

	// Suggestion lookups do ILIKE '%q%'; a trigram index keeps them off a
	// sequential scan once the log grows.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pg_trgm;`).Error; err != nil {
		return fmt.Errorf("enable pg_trgm extension: %w", err)
	}
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_career_goal_log_goal_trgm
		ON career_goal_log
		USING GIN (career_goal gin_trgm_ops);
	`).Error; err != nil {
		return fmt.Errorf("create idx_career_goal_log_goal_trgm: %w", err)
	}

	// Newest-first path listing per learner.
	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_learning_path_learner_created
		ON learning_path (learner_id, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_learning_path_learner_created: %w", err)
	}

	if err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_course_interaction_learner_created
		ON course_interaction (learner_id, created_at DESC);
	`).Error; err != nil {
		return fmt.Errorf("create idx_course_interaction_learner_created: %w", err)
	}

	return nil
}

func (s *PostgresService) AutoMigrateAll() error {
	s.log.Info("Auto migrating postgres tables...")
	if err := AutoMigrateAll(s.db); err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	if err := EnsureCatalogIndexes(s.db); err != nil {
		s.log.Error("Catalog index migration failed", "error", err)
		return err
	}
	return nil
}
