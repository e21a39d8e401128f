package services

import (
	"errors"
	"strings"

	"energy-tracker/app/models"
	"energy-tracker/app/repo"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// Validation errors; their text is shown to the client as-is.
var (
	ErrEmptyUsername = errors.New("username cannot be empty")
	ErrBadEmail      = errors.New("please enter a valid email address")
	ErrShortPassword = errors.New("password must be at least 6 characters long")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func validateSignup(username, email, password string) error {
	if strings.TrimSpace(username) == "" {
		return ErrEmptyUsername
	}
	if email == "" || !strings.Contains(email, "@") {
		return ErrBadEmail
	}
	if len(password) < 6 {
		return ErrShortPassword
	}
	return nil
}

// Register creates an ordinary user account. Validation happens before any
// store access; the plaintext password exists only on this stack frame.
func (s *UserService) Register(username, email, password, location string) error {
	if err := validateSignup(username, email, password); err != nil {
		return err
	}
	if location == "" {
		location = "Not Provided"
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Location:     location,
		Role:         models.RoleUser,
	})
}

// CreateAdmin is used by the operator console; same validation and hashing
// contract as Register, different role.
func (s *UserService) CreateAdmin(username, email, password, location string) error {
	if err := validateSignup(username, email, password); err != nil {
		return err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.users.Create(&models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Location:     location,
		Role:         models.RoleAdmin,
	})
}

// EnsureAdmin seeds the well-known admin account once. Already-present means
// done, regardless of what the existing record looks like.
func (s *UserService) EnsureAdmin(username, email, password, location string) (created bool, err error) {
	count, err := s.users.CountByEmail(email)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	err = s.users.Create(&models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		Location:     location,
		Role:         models.RoleAdmin,
	})
	return err == nil, err
}

// ValidateCredentials returns the user for a matching email/password pair.
// Unknown email and wrong password collapse into the same error so a caller
// cannot probe which emails exist.
func (s *UserService) ValidateCredentials(email, password string) (*models.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	return u, nil
}
