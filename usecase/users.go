package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

type UserService struct {
	UsersRepo *repository.UsersRepo
}

// Register creates a new account. Fails with ErrEmailExists when the email
// is already taken and a ValidationError when the password is too weak.
func (svc *UserService) Register(ctx context.Context, email, password string) (*model.User, error) {
	existing, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, model.ErrEmailExists
	}

	hashed, err := services.HashPassword(password)
	if err != nil {
		return nil, model.NewValidationError(err.Error())
	}

	user := &model.User{
		UserID:    uuid.New().String(),
		Email:     email,
		Password:  hashed,
		CreatedAt: time.Now(),
	}

	// The unique email index catches registrations racing past the pre-check.
	if err := svc.UsersRepo.AddUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and, when the account has two-factor enabled,
// the TOTP code. Lookup and password failures are indistinguishable to the
// caller.
func (svc *UserService) Login(ctx context.Context, email, password, twoFactorCode string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		utils.TrackLogin("failure")
		return nil, model.ErrInvalidCredentials
	}

	ok, err := services.VerifyPassword(user.Password, password)
	if err != nil || !ok {
		utils.TrackLogin("failure")
		return nil, model.ErrInvalidCredentials
	}

	if user.TwoFactorEnabled {
		if twoFactorCode == "" {
			return nil, model.ErrTwoFactorRequired
		}
		if !services.ValidateTwoFactorCode(twoFactorCode, user.TwoFactorSecret) {
			utils.TrackLogin("failure")
			return nil, model.ErrTwoFactorInvalid
		}
	}

	utils.TrackLogin("success")
	return user, nil
}

// GetProfile returns the account for userID without its password hash (the
// model never serializes it).
func (svc *UserService) GetProfile(ctx context.Context, userID string) (*model.User, error) {
	user, err := svc.UsersRepo.FindUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrUserNotFound
	}
	return user, nil
}
