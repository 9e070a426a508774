package repos

import (
	"context"

	"gorm.io/gorm"

	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type InteractionRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *types.CourseInteraction) error
	ListByLearnerID(ctx context.Context, tx *gorm.DB, learnerID string) ([]*types.CourseInteraction, error)
}

type interactionRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewInteractionRepo(db *gorm.DB, baseLog *logger.Logger) InteractionRepo {
	return &interactionRepo{db: db, log: baseLog.With("repo", "InteractionRepo")}
}

func (r *interactionRepo) Create(ctx context.Context, tx *gorm.DB, row *types.CourseInteraction) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *interactionRepo) ListByLearnerID(ctx context.Context, tx *gorm.DB, learnerID string) ([]*types.CourseInteraction, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.CourseInteraction
	if learnerID == "" {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("learner_id = ?", learnerID).
		Order("created_at DESC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}
