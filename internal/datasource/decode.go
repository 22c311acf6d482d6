package datasource

import (
	"encoding/json"
	"fmt"
	"io"

	"bankclients/internal/domain"
)

// decodeUsers 各数据源共用：顶层必须是 JSON 数组
func decodeUsers(r io.Reader) ([]domain.User, error) {
	var users []domain.User
	if err := json.NewDecoder(r).Decode(&users); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}
	return users, nil
}
