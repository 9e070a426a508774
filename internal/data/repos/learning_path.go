package repos

import (
	"context"

	"gorm.io/gorm"

	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type LearningPathRepo interface {
	ReplaceForLearner(ctx context.Context, tx *gorm.DB, row *types.LearningPath) error
	ListByLearnerID(ctx context.Context, tx *gorm.DB, learnerID string) ([]*types.LearningPath, error)
}

type learningPathRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewLearningPathRepo(db *gorm.DB, baseLog *logger.Logger) LearningPathRepo {
	return &learningPathRepo{db: db, log: baseLog.With("repo", "LearningPathRepo")}
}

// ReplaceForLearner drops any stored paths for the learner and inserts the new
// one, so a learner always reads back their latest generation.
func (r *learningPathRepo) ReplaceForLearner(ctx context.Context, tx *gorm.DB, row *types.LearningPath) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil || row.LearnerID == "" {
		return nil
	}
	return t.WithContext(ctx).Transaction(func(txn *gorm.DB) error {
		if err := txn.
			Where("learner_id = ?", row.LearnerID).
			Delete(&types.LearningPath{}).Error; err != nil {
			return err
		}
		return txn.Create(row).Error
	})
}

func (r *learningPathRepo) ListByLearnerID(ctx context.Context, tx *gorm.DB, learnerID string) ([]*types.LearningPath, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.LearningPath
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
