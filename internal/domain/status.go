package domain

import "context"

// UserStatusRepository resolves the subscription tier of a user. Users
// without a stored status are basic.
type UserStatusRepository interface {
	GetStatusOfUser(ctx context.Context, userID UserID) (Tier, error)
}
