// Package identity owns user records and the current-session record.
package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/foodiesbnb/foodiesbnb-api/internal/httperr"
	"github.com/foodiesbnb/foodiesbnb-api/internal/models"
	"github.com/foodiesbnb/foodiesbnb-api/internal/validators"
)

const minPasswordLen = 6

type Repository interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	CreateUser(ctx context.Context, u *models.User) error
	MutateUser(ctx context.Context, id string, fn func(*models.User) error) (*models.User, error)

	Session(ctx context.Context) (*models.User, error)
	PutSession(ctx context.Context, u *models.User) error
	ClearSession(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type RegisterInput struct {
	FullName string
	Email    string
	Password string
	UserType models.UserType
}

// Register creates a user record. It does not establish a session; the
// caller logs in separately.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.User, error) {
	existing, err := s.repo.GetUserByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, httperr.ErrConflict("duplicate_email", "email is already registered")
	}

	if len(in.Password) < minPasswordLen {
		return nil, httperr.ErrValidation("weak_password", "password must be at least 6 characters")
	}
	if strings.TrimSpace(in.FullName) == "" {
		return nil, httperr.ErrValidation("missing_name", "full name is required")
	}
	if !validators.IsEmailShapeValid(in.Email) {
		return nil, httperr.ErrValidation("invalid_email", "email address is not valid")
	}
	if !in.UserType.Valid() {
		return nil, httperr.ErrValidation("invalid_user_type", "user type must be foodie or restaurant")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		ID:           uuid.NewString(),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		FullName:     strings.TrimSpace(in.FullName),
		UserType:     in.UserType,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, &user); err != nil {
		return nil, err
	}

	redacted := user.Redacted()
	return &redacted, nil
}

// Login verifies credentials and writes the redacted user as the current
// session.
func (s *Service) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrAuth("unknown_email", "email is not registered")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, httperr.ErrAuth("wrong_password", "password is incorrect")
	}

	if err := s.repo.PutSession(ctx, user); err != nil {
		return nil, err
	}

	redacted := user.Redacted()
	return &redacted, nil
}

// CurrentSession returns the redacted session user or nil. It never fails:
// an unreadable session reads as logged out.
func (s *Service) CurrentSession(ctx context.Context) *models.User {
	u, err := s.repo.Session(ctx)
	if err != nil {
		return nil
	}
	return u
}

// Logout clears the session record only; user records persist.
func (s *Service) Logout(ctx context.Context) error {
	return s.repo.ClearSession(ctx)
}

// UserByID returns the redacted user record.
func (s *Service) UserByID(ctx context.Context, id string) (*models.User, error) {
	user, err := s.repo.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, httperr.ErrNotFound("user_not_found", "user does not exist")
	}
	redacted := user.Redacted()
	return &redacted, nil
}

type ProfileUpdate struct {
	FullName       *string
	Phone          *string
	Bio            *string
	Preferences    []string
	RestaurantInfo *models.RestaurantInfo
}

// UpdateProfile merges the provided fields into the stored user and, when
// the user is the current session, refreshes the session copy too. The
// merge runs inside the repository's locked cycle so concurrent updates
// cannot overwrite each other's fields.
func (s *Service) UpdateProfile(ctx context.Context, userID string, upd ProfileUpdate) (*models.User, error) {
	user, err := s.repo.MutateUser(ctx, userID, func(u *models.User) error {
		if upd.FullName != nil {
			name := strings.TrimSpace(*upd.FullName)
			if name == "" {
				return httperr.ErrValidation("missing_name", "full name cannot be blank")
			}
			u.FullName = name
		}
		if upd.Phone != nil {
			u.Phone = *upd.Phone
		}
		if upd.Bio != nil {
			u.Bio = *upd.Bio
		}
		if upd.Preferences != nil {
			u.Preferences = upd.Preferences
		}
		if upd.RestaurantInfo != nil {
			u.RestaurantInfo = upd.RestaurantInfo
		}

		now := time.Now().UTC()
		u.UpdatedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}

	if sess, err := s.repo.Session(ctx); err == nil && sess != nil && sess.ID == userID {
		if err := s.repo.PutSession(ctx, user); err != nil {
			return nil, err
		}
	}

	redacted := user.Redacted()
	return &redacted, nil
}

func (s *Service) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	_, err := s.repo.MutateUser(ctx, userID, func(u *models.User) error {
		if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(currentPassword)); err != nil {
			return httperr.ErrAuth("wrong_current_password", "current password is incorrect")
		}
		if len(newPassword) < minPasswordLen {
			return httperr.ErrValidation("weak_password", "new password must be at least 6 characters")
		}

		hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		u.PasswordHash = string(hashed)
		now := time.Now().UTC()
		u.UpdatedAt = &now
		return nil
	})
	return err
}

// RegisteredUsers lists every user, redacted. Backs the dev endpoint.
func (s *Service) RegisteredUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.User, 0, len(users))
	for _, u := range users {
		out = append(out, u.Redacted())
	}
	return out, nil
}
