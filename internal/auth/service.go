package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/royalhouse/fellowship-backend/config"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

type Service interface {
	Login(req *LoginRequest) (*LoginResponse, error)
	Refresh(refreshToken string) (*LoginResponse, error)
	GetUserByID(id uint) (User, error)
}

type service struct {
	repo Repository
	cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &service{repo: repo, cfg: cfg}
}

// Login verifies credentials and issues an access + refresh token pair.
func (s *service) Login(req *LoginRequest) (*LoginResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.repo.FindByEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueTokens(*user)
}

// Refresh exchanges a valid refresh token for a fresh pair.
func (s *service) Refresh(refreshToken string) (*LoginResponse, error) {
	token, err := jwt.Parse(refreshToken, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWTRefreshSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	userIDFloat, ok := claims["user_id"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}

	user, err := s.repo.FindByID(uint(userIDFloat))
	if err != nil {
		return nil, ErrInvalidToken
	}

	return s.issueTokens(user)
}

func (s *service) GetUserByID(id uint) (User, error) {
	return s.repo.FindByID(id)
}

func (s *service) issueTokens(user User) (*LoginResponse, error) {
	accessTTL := time.Duration(s.cfg.JWTAccessTTLHours) * time.Hour
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	refreshTTL := time.Duration(s.cfg.JWTRefreshTTLHours) * time.Hour
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}

	access, err := s.signToken(user, accessTTL, s.cfg.JWTAccessSecret)
	if err != nil {
		return nil, err
	}
	refresh, err := s.signToken(user, refreshTTL, s.cfg.JWTRefreshSecret)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		User:         user,
	}, nil
}

func (s *service) signToken(user User, ttl time.Duration, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": user.ID,
		"role":    user.Role,
		"exp":     time.Now().Add(ttl).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
