package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/lumina-safety/safety_signal_system/internal/auth"
	"github.com/lumina-safety/safety_signal_system/internal/models"
)

//go:generate mockgen -source=user.go -destination=mocks/user_mock.go -package=mocks

// ErrEmailTaken возвращается при попытке регистрации с занятым email
var ErrEmailTaken = errors.New("email already registered")

// ErrInvalidCredentials возвращается при неверной паре email/пароль
var ErrInvalidCredentials = errors.New("invalid email or password")

// UserRepository определяет контракт для работы с хранилищем пользователей
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

// UserService определяет контракт регистрации и аутентификации
type UserService interface {
	Register(ctx context.Context, email, password, name, role string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type userService struct {
	repo   UserRepository
	tokens *auth.JWTService
	logger *logrus.Logger
}

func NewUserService(repo UserRepository, tokens *auth.JWTService, logger *logrus.Logger) UserService {
	return &userService{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Register создает пользователя и выдает токен доступа
func (s *userService) Register(ctx context.Context, email, password, name, role string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Register",
	})
	log.Info("Attempting to register a new user")

	existing, err := s.repo.GetByEmail(ctx, email)
	if err == nil && existing != nil {
		log.Warn("Registration attempted with an already registered email")
		return nil, "", ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.WithError(err).Error("Failed to hash password")
		return nil, "", fmt.Errorf("service: could not hash password: %w", err)
	}

	if role == "" {
		role = models.RoleUser
	}

	user := &models.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		log.WithError(err).Error("Failed to create user in repository")
		return nil, "", fmt.Errorf("service: could not create user: %w", err)
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Role)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return nil, "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User registered successfully")
	return user, token, nil
}

// Login проверяет учетные данные и выдает токен доступа
func (s *userService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "user",
		"method":  "Login",
	})
	log.Info("Attempting user login")

	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil || user == nil {
		log.Warn("Login attempted with unknown email")
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		log.Warn("Login attempted with wrong password")
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID.String(), user.Role)
	if err != nil {
		log.WithError(err).Error("Failed to issue access token")
		return nil, "", fmt.Errorf("service: could not issue token: %w", err)
	}

	log.WithField("user_id", user.ID).Info("User logged in successfully")
	return user, token, nil
}

// GetUser возвращает пользователя по идентификатору
func (s *userService) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("service: could not get user: %w", err)
	}
	return user, nil
}
