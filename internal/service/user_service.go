// Package service implements the business rules on top of the repositories.
package service

import (
	"context"

	"plaza/internal/models"
	"plaza/internal/repository"
	"plaza/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo repository.UserRepository
}

type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	Description string
}

type EditDetailsInput struct {
	CallerID       uint
	UserID         uint
	NewDescription *string
	NewEmail       *string
}

func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Register creates a new account. The stored password is a bcrypt hash;
// the raw value never reaches the repository.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidatePassword(in.Password); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	// Friendly pre-checks; the unique indexes are the real guard under
	// concurrent registration.
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Username already in use")
	}
	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewConflictError("Email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Username:    in.Username,
		Email:       in.Email,
		Password:    string(hashed),
		Description: in.Description,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies the credentials and returns the account. The caller is
// responsible for issuing the token; no session state is kept here —
// identity is re-derived from the token on every request.
func (s *UserService) Login(ctx context.Context, username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, models.NewUnauthorizedError("Invalid credentials")
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

func (s *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, models.NewNotFoundError("User", username)
	}
	return user, nil
}

func (s *UserService) ListAll(ctx context.Context, limit, offset int) ([]models.User, error) {
	return s.userRepo.List(ctx, limit, offset)
}

// EditDetails updates only the provided fields (nil means leave unchanged)
// and returns a map of what actually changed.
func (s *UserService) EditDetails(ctx context.Context, in EditDetailsInput) (map[string]string, error) {
	if in.CallerID != in.UserID {
		return nil, models.NewForbiddenError("You can only edit your own details")
	}

	user, err := s.userRepo.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, err
	}

	changed := map[string]string{}

	if in.NewDescription != nil {
		user.Description = *in.NewDescription
		changed["newDescription"] = *in.NewDescription
	}

	if in.NewEmail != nil && *in.NewEmail != user.Email {
		if err := validation.ValidateEmail(*in.NewEmail); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		other, err := s.userRepo.GetByEmail(ctx, *in.NewEmail)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != in.UserID {
			return nil, models.NewConflictError("Email already in use")
		}
		user.Email = *in.NewEmail
		changed["newEmail"] = *in.NewEmail
	}

	if len(changed) == 0 {
		return changed, nil
	}

	if err := s.userRepo.UpdateDetails(ctx, user); err != nil {
		return nil, err
	}

	return changed, nil
}
