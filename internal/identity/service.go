package identity

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"stitchfield-backend/internal/domain"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

type Service struct {
	users UserRepo
	log   *zap.Logger
}

func NewService(users UserRepo, log *zap.Logger) *Service {
	return &Service{users: users, log: log}
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Service) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.Name = strings.TrimSpace(in.Name); in.Name == "" {
		return nil, domain.ErrValidation("Name is required")
	}
	if in.Email == "" {
		return nil, domain.ErrValidation("Email is required")
	}
	if len(in.Password) < 6 {
		return nil, domain.ErrValidation("Password must be at least 6 characters")
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrAlreadyExists("Email already registered")
	} else if domain.CodeOf(err) != domain.CodeNotFound {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u := &domain.User{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  string(hash),
		Role:      domain.RoleUser,
		IsActive:  true,
		CreatedAt: time.Now(),
	}
	if err := s.users.Insert(ctx, u); err != nil {
		return nil, err
	}
	s.log.Info("user registered", zap.String("user", u.ID.Hex()))
	return u, nil
}

// Authenticate verifies credentials. Unknown email and wrong password
// return the same error so the response does not leak which it was.
// Deactivated accounts cannot log in.
func (s *Service) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if domain.CodeOf(err) == domain.CodeNotFound {
			return nil, domain.ErrUnauthorized("Invalid email or password")
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) != nil {
		return nil, domain.ErrUnauthorized("Invalid email or password")
	}
	if !u.IsActive {
		return nil, domain.ErrAccessDenied()
	}
	return u, nil
}

func (s *Service) Profile(ctx context.Context, userID primitive.ObjectID) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

type ProfileUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// UpdateProfile applies only the fields that were supplied.
func (s *Service) UpdateProfile(ctx context.Context, userID primitive.ObjectID, in ProfileUpdate) (*domain.User, error) {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if in.Name != "" {
		u.Name = in.Name
	}
	if in.Email != "" {
		u.Email = strings.ToLower(strings.TrimSpace(in.Email))
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) ListUsers(ctx context.Context, f Filter, page, limit int) ([]domain.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.users.List(ctx, f, page, limit)
}

// SetUserActive flips the account flag admins use to disable users.
func (s *Service) SetUserActive(ctx context.Context, id primitive.ObjectID, active bool) (*domain.User, error) {
	if err := s.users.SetActive(ctx, id, active); err != nil {
		return nil, err
	}
	return s.users.FindByID(ctx, id)
}
