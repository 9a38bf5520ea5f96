package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/alfredhq/alfred/internal/model"
	"github.com/alfredhq/alfred/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
)

type AuthService struct {
	userRepo *repository.UserRepository
	secret   []byte
	expire   time.Duration
	now      func() time.Time
}

func NewAuthService(userRepo *repository.UserRepository, secret string, expireHours int) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		secret:   []byte(secret),
		expire:   time.Duration(expireHours) * time.Hour,
		now:      time.Now,
	}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	taken, err := s.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username: strings.TrimSpace(username),
		Email:    email,
		Password: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login returns a signed token and the user id. Unknown email and wrong
// password look the same to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return "", "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", "", ErrInvalidCredentials
	}

	token, err := s.generateToken(user.ID)
	return token, user.ID, err
}

func (s *AuthService) generateToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     s.now().Add(s.expire).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}
