package repos

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type LearnerProfileRepo interface {
	Upsert(ctx context.Context, tx *gorm.DB, row *types.LearnerProfile) error
	GetByLearnerID(ctx context.Context, tx *gorm.DB, learnerID string) (*types.LearnerProfile, error)
}

type learnerProfileRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearnerProfileRepo(db *gorm.DB, baseLog *logger.Logger) LearnerProfileRepo {
	return &learnerProfileRepo{db: db, log: baseLog.With("repo", "LearnerProfileRepo")}
}

func (r *learnerProfileRepo) Upsert(ctx context.Context, tx *gorm.DB, row *types.LearnerProfile) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.LearnerID == "" {
		return nil
	}
	row.UpdatedAt = time.Now().UTC()
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "learner_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"career_goal", "education_level", "desired_skills",
				"interests", "proficiency_level", "updated_at",
			}),
		}).
		Create(row).Error
}

func (r *learnerProfileRepo) GetByLearnerID(ctx context.Context, tx *gorm.DB, learnerID string) (*types.LearnerProfile, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if learnerID == "" {
		return nil, nil
	}
	var row types.LearnerProfile
	if err := t.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &row, nil
}
