package auth

import (
	"errors"
	"fmt"
	"time"

	"ems-backend/internal/database/models"
	apperrors "ems-backend/internal/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserStore is the subset of the user repository the auth service needs
type UserStore interface {
	GetByEmail(email string) (*models.User, error)
	GetActiveByID(id uuid.UUID) (*models.User, error)
}

// Claims are the JWT claims issued at login
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// AuthService issues and validates JWT tokens for the API
type AuthService struct {
	users     UserStore
	jwtSecret []byte
	expiry    time.Duration
}

// NewAuthService creates a new auth service
func NewAuthService(users UserStore, jwtSecret string, expiryHours int) *AuthService {
	if expiryHours <= 0 {
		expiryHours = 24
	}
	return &AuthService{
		users:     users,
		jwtSecret: []byte(jwtSecret),
		expiry:    time.Duration(expiryHours) * time.Hour,
	}
}

// Login verifies the credentials and returns a signed token with the user
func (s *AuthService) Login(email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, &apperrors.AuthenticationError{Message: "invalid email or password"}
		}
		return "", nil, fmt.Errorf("failed to load user: %w", err)
	}
	if user.Status != models.StatusActive {
		return "", nil, &apperrors.AuthenticationError{Message: "account is not active"}
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, &apperrors.AuthenticationError{Message: "invalid email or password"}
	}

	token, err := s.GenerateJWT(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// GenerateJWT creates a signed token for a user
func (s *AuthService) GenerateJWT(user *models.User) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: user.ID.String(),
		Email:  user.Email,
		Role:   string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ValidateJWT parses and validates a token, returning its claims
func (s *AuthService) ValidateJWT(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

// ResolveActor loads the active user behind validated claims
func (s *AuthService) ResolveActor(claims *Claims) (*models.User, error) {
	id, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid user id in token: %w", err)
	}
	user, err := s.users.GetActiveByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return user, nil
}
