package usecases

import (
	"errors"
	"notes-lab/auth"
	"notes-lab/entities"
	"notes-lab/repositories"

	"gorm.io/gorm"
)

type UserUseCase struct {
	UserRepo repositories.UserRepository
}

func NewUserUseCase(userRepo repositories.UserRepository) *UserUseCase {
	return &UserUseCase{UserRepo: userRepo}
}

// Register creates a user, storing only a bcrypt hash of the password.
// The username is checked for existence first rather than relying on a
// constraint violation from the insert.
func (uc *UserUseCase) Register(username, password string) (*entities.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}

	_, err := uc.UserRepo.GetByUsername(username)
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &entities.User{Username: username, PasswordHash: hash}
	if err := uc.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies a credential pair. Every failure maps to
// ErrInvalidCredentials so an unknown username is indistinguishable
// from a wrong password.
func (uc *UserUseCase) Authenticate(username, password string) (*entities.User, error) {
	user, err := uc.UserRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
