package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/Angelina20062025/WebMusicShop/internal/entity"
	"github.com/Angelina20062025/WebMusicShop/internal/repository"
)

// ErrInvalidCredentials is the only error Login returns for a failed
// attempt. Whether the account exists or the password mismatched is never
// disclosed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

// JwtCustomClaims carries the profile fields admin middleware needs.
type JwtCustomClaims struct {
	Name  string      `json:"name"`
	Email string      `json:"email"`
	Role  entity.Role `json:"role"`
	jwt.RegisteredClaims
}

func NewAuthService(userRepo *repository.UserRepository, jwtSecret string) *AuthService {
	return &AuthService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  24 * time.Hour,
	}
}

// Login verifies the credentials and returns the profile plus a signed
// token for the admin panel.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, error) {
	if email == "" || password == "" {
		return nil, "", validation("email and password are required")
	}

	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			logger.Error().Err(err).Msg("Error looking up user")
		}
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	claims := &JwtCustomClaims{
		Name:  user.Username,
		Email: user.Email,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.tokenTTL)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing token")
		return nil, "", err
	}

	return user, token, nil
}
