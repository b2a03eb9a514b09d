package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/13132klain/ufa-backend/internal/models"
	"github.com/13132klain/ufa-backend/internal/repository"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

// AuthService signs dashboard users in against the seeded account list.
// Role is a display label carried into the token; nothing checks it.
type AuthService struct {
	users  repository.UserRepository
	secret string
}

func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: secret}
}

type Claims struct {
	UID  string `json:"uid"`
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		UID:  user.ID,
		Name: user.Name,
		Role: user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.secret))
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// SeedUsers builds the dashboard accounts. Passwords come from configuration
// so a deployment can rotate them without a rebuild.
func SeedUsers(adminPassword string) []models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal("failed to hash seed password:", err)
	}
	return []models.User{
		{ID: "usr-admin", Name: "UFA Administrator", Email: "admin@ufa.org", PasswordHash: string(hash), Role: "admin"},
		{ID: "usr-comms", Name: "Communications Desk", Email: "comms@ufa.org", PasswordHash: string(hash), Role: "editor"},
	}
}
