package user

import (
	"context"

	"github.com/agromarket/agromarket-backend/internal/modules/auth"
)

type accountSource struct {
	repo Repository
}

// NewAccountSource adapts the user repository to the auth module's login
// lookup.
func NewAccountSource(repo Repository) auth.AccountSource {
	return &accountSource{repo: repo}
}

func (s *accountSource) AccountByEmail(ctx context.Context, email string) (auth.Account, error) {
	u, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return auth.Account{}, err
	}
	return auth.Account{
		ID:           u.ID.String(),
		Email:        u.Email,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
	}, nil
}
