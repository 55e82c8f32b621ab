package services

import (
	"context"
	"strings"
	"time"
	"unicode"

	"github.com/shashiranjanraj/ridewithme/app/models"
	"github.com/shashiranjanraj/ridewithme/pkg/auth"
	"github.com/shashiranjanraj/ridewithme/pkg/fault"
)

// UserStore is the persistence surface AuthService depends on.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id string) (models.User, error)
	Insert(ctx context.Context, user *models.User) error
}

// AuthService implements registration, login and session introspection.
type AuthService struct {
	store UserStore
}

func NewAuthService(store UserStore) *AuthService {
	return &AuthService{store: store}
}

// RegisterInput is the validated registration payload.
type RegisterInput struct {
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	City           string `json:"city" validate:"required"`
	Password       string `json:"password" validate:"required"`
	AgreeTerms     bool   `json:"agreeTerms"`
	AgreeMarketing bool   `json:"agreeMarketing"`
}

// LoginInput is the validated login payload.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Session is what a successful register or login hands back.
type Session struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register creates an account and signs the user in. Emails are stored
// lowercased so lookups and the unique index agree on identity.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (Session, error) {
	if err := checkPasswordPolicy(in.Password); err != nil {
		return Session{}, err
	}
	if !in.AgreeTerms {
		return Session{}, fault.New(fault.ErrInvalidArgument, "You must accept the terms of service")
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return Session{}, fault.Wrap(fault.ErrInternal, err, "Failed to create account")
	}

	now := time.Now().UTC()
	user := models.User{
		FirstName:      strings.TrimSpace(in.FirstName),
		LastName:       strings.TrimSpace(in.LastName),
		Email:          strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:          strings.TrimSpace(in.Phone),
		City:           strings.TrimSpace(in.City),
		Password:       hash,
		AgreeTerms:     in.AgreeTerms,
		AgreeMarketing: in.AgreeMarketing,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.store.Insert(ctx, &user); err != nil {
		return Session{}, err
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return Session{}, fault.Wrap(fault.ErrInternal, err, "Failed to create session")
	}
	return Session{Token: token, User: user}, nil
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password both report the same message, so the endpoint does not leak
// which accounts exist.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (Session, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.store.FindByEmail(ctx, email)
	if fault.IsNotFound(err) {
		return Session{}, fault.New(fault.ErrUnauthorized, "Invalid email or password")
	}
	if err != nil {
		return Session{}, err
	}

	if !auth.CheckPassword(user.Password, in.Password) {
		return Session{}, fault.New(fault.ErrUnauthorized, "Invalid email or password")
	}

	token, err := auth.GenerateToken(user.ID.Hex(), user.Email)
	if err != nil {
		return Session{}, fault.Wrap(fault.ErrInternal, err, "Failed to create session")
	}
	return Session{Token: token, User: user}, nil
}

// Whoami resolves the authenticated user's profile from their token claims.
func (s *AuthService) Whoami(ctx context.Context, userID string) (models.User, error) {
	return s.store.FindByID(ctx, userID)
}

// checkPasswordPolicy requires at least 8 characters with an uppercase
// letter, a lowercase letter and a digit.
func checkPasswordPolicy(pw string) error {
	var upper, lower, digit bool
	for _, r := range pw {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		}
	}
	if len(pw) < 8 || !upper || !lower || !digit {
		return fault.New(fault.ErrInvalidArgument,
			"Password must be at least 8 characters and include an uppercase letter, a lowercase letter and a digit")
	}
	return nil
}
