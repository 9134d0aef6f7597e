package services

import (
	"fmt"
	"log"
	"time"

	"dashboard_api/internal/apperrors"
	"dashboard_api/internal/models"
	"dashboard_api/internal/redis"
	"dashboard_api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = 24 * time.Hour

type Claims struct {
	UserID uint `json:"user_id"`
	jwt.RegisteredClaims
}

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthService interface {
	Register(input RegisterInput) (*models.User, error)
	Login(input LoginInput) (*models.User, string, error)
	Logout(tokenString string) error
	ParseToken(tokenString string) (*Claims, error)
}

type authService struct {
	userRepo  repository.UserRepository
	cache     *redis.Client
	jwtSecret string
}

func NewAuthService(userRepo repository.UserRepository, cache *redis.Client, jwtSecret string) AuthService {
	return &authService{userRepo: userRepo, cache: cache, jwtSecret: jwtSecret}
}

func (s *authService) Register(input RegisterInput) (*models.User, error) {
	existing, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Validationf("user with email %s already exists", input.Email)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Role:         string(models.RoleUser),
		IsActive:     true,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) Login(input LoginInput) (*models.User, string, error) {
	user, err := s.userRepo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if user == nil || !user.IsActive {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return nil, "", fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	claims := Claims{
		UserID: user.ID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ID:        uuid.New().String(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return nil, "", err
	}

	return user, signed, nil
}

// Logout denies the token id for the remainder of its lifetime.
func (s *authService) Logout(tokenString string) error {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return err
	}

	if s.cache == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.DenyToken(claims.ID, ttl); err != nil {
		log.Printf("Warning: failed to deny token: %v", err)
		return err
	}
	return nil
}

func (s *authService) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("%w: invalid token", apperrors.ErrUnauthorized)
	}

	if s.cache != nil {
		denied, err := s.cache.IsTokenDenied(claims.ID)
		if err != nil {
			log.Printf("Warning: token denylist check failed: %v", err)
		} else if denied {
			return nil, fmt.Errorf("%w: token revoked", apperrors.ErrUnauthorized)
		}
	}

	return claims, nil
}
