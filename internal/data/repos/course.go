package repos

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type CourseRepo interface {
	UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.Course) (int, error)
	List(ctx context.Context, tx *gorm.DB) ([]*types.Course, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*types.Course, error)
	Count(ctx context.Context, tx *gorm.DB) (int64, error)
	FullDeleteAll(ctx context.Context, tx *gorm.DB) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) UpsertMany(ctx context.Context, tx *gorm.DB, rows []*types.Course) (int, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return 0, nil
	}
	now := time.Now().UTC()
	for _, row := range rows {
		row.UpdatedAt = now
	}
	res := t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "description", "tags", "difficulty",
				"education_level", "prerequisites", "updated_at",
			}),
		}).
		Create(&rows)
	if res.Error != nil {
		return 0, res.Error
	}
	return int(res.RowsAffected), nil
}

// List returns the whole catalog in catalog order (created_at, then id), the
// order every scoring pass and graph build indexes courses by.
func (r *courseRepo) List(ctx context.Context, tx *gorm.DB) ([]*types.Course, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Course
	if err := t.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *courseRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []string) ([]*types.Course, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*types.Course
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).
		Where("id IN ?", ids).
		Order("created_at ASC, id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *courseRepo) Count(ctx context.Context, tx *gorm.DB) (int64, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var n int64
	if err := t.WithContext(ctx).Model(&types.Course{}).Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *courseRepo) FullDeleteAll(ctx context.Context, tx *gorm.DB) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Unscoped().Where("1 = 1").Delete(&types.Course{}).Error
}
