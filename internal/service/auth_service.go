package service

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"fornsaga-backend/internal/apperrors"
	"fornsaga-backend/internal/model"
	"fornsaga-backend/internal/repository"
)

// AuthService interface
type AuthService interface {
	Register(user *model.User) error
	Login(email, password string) (*model.User, error)
	Profile(userID uint) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService initializes authentication service
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

func (s *authService) Register(user *model.User) error {
	if user.Password == "" {
		return apperrors.Validationf("password cannot be empty")
	}
	if user.Username == "" || user.Email == "" {
		return apperrors.Validationf("username and email are required")
	}

	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err == nil && existing != nil {
		return errors.New("email already in use")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	user.Password = string(hashed)

	if user.PreferredLanguage == "" {
		user.PreferredLanguage = "is"
	}
	return s.userRepo.CreateUser(user)
}

// Login authenticates by email and password.
func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return nil, errors.New("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, errors.New("invalid credentials")
	}

	// Remove password before returning user data
	user.Password = ""
	return user, nil
}

// Profile fetches the authenticated user's account data.
func (s *authService) Profile(userID uint) (*model.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}
