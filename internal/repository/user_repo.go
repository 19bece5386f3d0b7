package repository

import (
	"context"
	"errors"

	"github.com/taskboard-dev/taskboard/internal/domain"
	"github.com/taskboard-dev/taskboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type CreateUserRecord struct {
	Email        string
	Name         *string
	Role         string
	PasswordHash string
}

// UserCredentials pairs the domain user with its stored password hash for
// login verification. The hash stays inside the auth flow.
type UserCredentials struct {
	User         domain.User
	PasswordHash string
}

type UserRepository interface {
	Create(ctx context.Context, record CreateUserRecord) (domain.User, error)
	GetByID(ctx context.Context, id uint) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (UserCredentials, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type userRepository struct {
	db     *gorm.DB
	logger *zap.Logger
}

func NewUserRepository(db *gorm.DB, logger *zap.Logger) UserRepository {
	return &userRepository{db: db, logger: logger}
}

func (r *userRepository) Create(ctx context.Context, record CreateUserRecord) (domain.User, error) {
	user := models.User{
		Email:        record.Email,
		Name:         record.Name,
		Role:         record.Role,
		PasswordHash: record.PasswordHash,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		r.logger.Error("failed to create user", zap.Error(err), zap.String("email", record.Email))
		return domain.User{}, err
	}

	return userToDomain(user), nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (domain.User, error) {
	var user models.User

	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.User{}, domain.NewNotFoundError("User", id)
		}

		r.logger.Error("failed to fetch user", zap.Error(err), zap.Uint("user_id", id))
		return domain.User{}, err
	}

	return userToDomain(user), nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (UserCredentials, error) {
	var user models.User

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return UserCredentials{}, &domain.Error{Kind: domain.KindNotFound, Message: "User not found"}
		}

		r.logger.Error("failed to fetch user by email", zap.Error(err))
		return UserCredentials{}, err
	}

	return UserCredentials{User: userToDomain(user), PasswordHash: user.PasswordHash}, nil
}

func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64

	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", email).
		Count(&count).Error

	if err != nil {
		r.logger.Error("failed to check email existence", zap.Error(err))
		return false, err
	}

	return count > 0, nil
}
