package usecase

import (
	"context"
	"strings"

	"github.com/taskboard-dev/taskboard/internal/auth"
	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/repository"
)

type SignupUseCase struct {
	users repository.UserRepository
}

func NewSignupUseCase(users repository.UserRepository) *SignupUseCase {
	return &SignupUseCase{users: users}
}

func (uc *SignupUseCase) Execute(ctx context.Context, email string, password string, name string) (domain.User, error) {
	if email == "" || password == "" || name == "" {
		return domain.User{}, domain.NewValidationError("Email, password, and name are required")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	if err := domain.ValidateEmail(email); err != nil {
		return domain.User{}, err
	}

	if len(password) < 6 {
		return domain.User{}, domain.NewValidationError("Password must be at least 6 characters")
	}

	name = strings.TrimSpace(name)

	if name == "" {
		return domain.User{}, domain.NewValidationError("Name cannot be empty")
	}

	exists, err := uc.users.EmailExists(ctx, email)

	if err != nil {
		return domain.User{}, err
	}

	if exists {
		return domain.User{}, domain.NewValidationError("Email already exists")
	}

	passwordHash, err := auth.HashPassword(password)

	if err != nil {
		return domain.User{}, err
	}

	return uc.users.Create(ctx, repository.CreateUserRecord{
		Email:        email,
		Name:         &name,
		Role:         domain.RoleUser,
		PasswordHash: passwordHash,
	})
}

type LoginResult struct {
	User  domain.User
	Token string
}

type LoginUseCase struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
}

func NewLoginUseCase(users repository.UserRepository, tokens *auth.TokenManager) *LoginUseCase {
	return &LoginUseCase{users: users, tokens: tokens}
}

func (uc *LoginUseCase) Execute(ctx context.Context, email string, password string) (LoginResult, error) {
	if email == "" || password == "" {
		return LoginResult{}, domain.NewUnauthorizedError("Email and password are required")
	}

	email = strings.ToLower(strings.TrimSpace(email))

	credentials, err := uc.users.GetByEmail(ctx, email)

	if err != nil {
		// An unknown email and a wrong password are indistinguishable to
		// the caller.
		if domain.KindOf(err) == domain.KindNotFound {
			return LoginResult{}, domain.NewUnauthorizedError("Invalid email or password")
		}

		return LoginResult{}, err
	}

	if !auth.CheckPassword(password, credentials.PasswordHash) {
		return LoginResult{}, domain.NewUnauthorizedError("Invalid email or password")
	}

	token, err := uc.tokens.Generate(credentials.User.ID, credentials.User.Email)

	if err != nil {
		return LoginResult{}, err
	}

	return LoginResult{User: credentials.User, Token: token}, nil
}
