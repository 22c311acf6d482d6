package datasource

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"bankclients/internal/domain"
	"bankclients/internal/feature/user"
)

// DBSource 读取 users 表，按 id 升序
type DBSource struct{ db *gorm.DB }

func NewDBSource(db *gorm.DB) *DBSource { return &DBSource{db: db} }

func (s *DBSource) FetchUsers(ctx context.Context) ([]domain.User, error) {
	var rows []user.UserModel
	if err := s.db.WithContext(ctx).Order("id").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query users: %w", err)
	}
	out := make([]domain.User, 0, len(rows))
	for _, m := range rows {
		out = append(out, m.ToDomain())
	}
	return out, nil
}
