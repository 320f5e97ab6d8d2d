package mocks

import (
	"context"

	"github.com/moviekeeper/movie-collection-service/internal/domain"
)

type MockUserStatusRepo struct {
	domain.UserStatusRepository
	GetStatusOfUserFunc func(ctx context.Context, userID domain.UserID) (domain.Tier, error)
}

// GetStatusOfUser resolves every user to basic when no override is set,
// matching the repository's default for unknown users.
func (m *MockUserStatusRepo) GetStatusOfUser(ctx context.Context, userID domain.UserID) (domain.Tier, error) {
	if m.GetStatusOfUserFunc != nil {
		return m.GetStatusOfUserFunc(ctx, userID)
	}

	return domain.TierBasic, nil
}
