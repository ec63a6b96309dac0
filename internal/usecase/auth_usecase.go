package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"autocare360/internal/domain/entities"
	"autocare360/internal/usecase/interfaces"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials deliberately covers both unknown email and wrong
// password so login failures do not leak which one it was.
var ErrInvalidCredentials = errors.New("invalid credentials")

// IAuthUseCase exposes bearer-token login. Token validation on requests lives
// in the HTTP middleware; this usecase only issues tokens.

type IAuthUseCase interface {
	Login(ctx context.Context, email, password string) (string, entities.User, error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenManager
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenManager) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens}
}

func (u *AuthUseCase) Login(ctx context.Context, email, password string) (string, entities.User, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" || password == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		return "", entities.User{}, err
	}
	if usr.ID == "" {
		return "", entities.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return "", entities.User{}, ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(usr)
	if err != nil {
		return "", entities.User{}, err
	}
	log.Printf("[auth][usecase] login success user_id=%s role=%s", usr.ID, usr.Role)
	return token, usr, nil
}
