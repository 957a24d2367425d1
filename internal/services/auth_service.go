package services

import (
	"errors"
	"fmt"

	"pcbang_backend/internal/models"
	"pcbang_backend/pkg/utils"

	"golang.org/x/crypto/bcrypt"
)

// --- Custom Service Errors for Auth ---
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenGeneration    = errors.New("failed to generate token")
)

// AuthResponse DTO
type AuthResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// --- AuthService Interface ---
type AuthService interface {
	Login(creds models.Credentials) (*AuthResponse, error)
}

// --- authService Implementation ---
// There is a single administrator account configured via the environment; the
// password is hashed at startup and only the hash is kept in memory.
type authService struct {
	adminUsername     string
	adminPasswordHash []byte
}

// NewAuthService creates a new instance of AuthService from the configured
// admin credentials.
func NewAuthService(adminUsername, adminPassword string) (AuthService, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash admin password: %w", err)
	}
	return &authService{
		adminUsername:     adminUsername,
		adminPasswordHash: hash,
	}, nil
}

func (s *authService) Login(creds models.Credentials) (*AuthResponse, error) {
	if creds.Username != s.adminUsername {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.adminPasswordHash, []byte(creds.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateAccessToken(creds.Username, "Admin")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenGeneration, err)
	}
	return &AuthResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   int64(utils.AccessTokenTTL.Seconds()),
	}, nil
}
