package repos

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/skillone/skillpath-backend/internal/domain"
	"github.com/skillone/skillpath-backend/internal/platform/logger"
)

type CareerGoalRepo interface {
	IncrementGoal(ctx context.Context, tx *gorm.DB, goal string) error
	SearchGoals(ctx context.Context, tx *gorm.DB, query string, limit int) ([]string, error)
}

type careerGoalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCareerGoalRepo(db *gorm.DB, baseLog *logger.Logger) CareerGoalRepo {
	return &careerGoalRepo{db: db, log: baseLog.With("repo", "CareerGoalRepo")}
}

// IncrementGoal bumps the submission count for the exact goal string, creating
// the row at frequency 1 the first time. Single atomic upsert, no read-first.
func (r *careerGoalRepo) IncrementGoal(ctx context.Context, tx *gorm.DB, goal string) error {
	t := tx
	if t == nil {
		t = r.db
	}
	goal = strings.TrimSpace(goal)
	if goal == "" {
		return nil
	}
	return t.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "career_goal"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"frequency":  gorm.Expr("career_goal_log.frequency + 1"),
				"updated_at": time.Now().UTC(),
			}),
		}).
		Create(&types.CareerGoalLog{CareerGoal: goal, Frequency: 1}).Error
}

// SearchGoals returns goals containing the query (case-insensitive), most
// frequent first; ties break alphabetically so results are stable.
func (r *careerGoalRepo) SearchGoals(ctx context.Context, tx *gorm.DB, query string, limit int) ([]string, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []string{}, nil
	}
	if limit <= 0 {
		limit = 10
	}
	var rows []*types.CareerGoalLog
	if err := t.WithContext(ctx).
		Where("career_goal ILIKE ?", "%"+query+"%").
		Order("frequency DESC, career_goal ASC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]string, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.CareerGoal)
	}
	return out, nil
}
