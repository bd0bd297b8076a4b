package auth

import (
	"context"
	"errors"
	"time"

	"github.com/dgrijalva/jwt-go"
	"golang.org/x/crypto/bcrypt"
)

const tokenTTL = 24 * time.Hour

// Claims carried inside issued tokens.
type Claims struct {
	jwt.StandardClaims
	Email string `json:"email"`
	Role  string `json:"role"`
}

type service struct {
	accounts AccountSource
	secret   []byte
}

// NewService creates a new auth service signing tokens with the given secret.
func NewService(accounts AccountSource, secret []byte) Service {
	return &service{accounts: accounts, secret: secret}
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	account, err := s.accounts.AccountByEmail(ctx, email)
	if err != nil {
		return "", errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", errors.New("invalid credentials")
	}

	claims := &Claims{
		StandardClaims: jwt.StandardClaims{
			Subject:   account.ID,
			ExpiresAt: time.Now().Add(tokenTTL).Unix(),
		},
		Email: account.Email,
		Role:  account.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}
