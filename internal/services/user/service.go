package user

import (
	"errors"
	"fmt"
	"strings"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var ErrEmailTaken = errors.New("user with this email already exists")

// RegisterInput is the registration payload.
type RegisterInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type Service interface {
	Register(input RegisterInput) (*models.User, *models.Account, error)
	GetByID(id uint) (*models.User, error)
}

type service struct {
	userRepo    repositories.UserRepository
	accountRepo repositories.AccountRepository
}

func NewService(userRepo repositories.UserRepository, accountRepo repositories.AccountRepository) Service {
	return &service{
		userRepo:    userRepo,
		accountRepo: accountRepo,
	}
}

// Register creates the user and opens their default checking account.
func (s *service) Register(input RegisterInput) (*models.User, *models.Account, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))
	if err := validation.Email(email); err != nil {
		return nil, nil, err
	}
	if err := validation.Password(input.Password); err != nil {
		return nil, nil, err
	}

	if existing, _ := s.userRepo.GetByEmail(email); existing != nil {
		return nil, nil, ErrEmailTaken
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, errors.New("failed to hash password")
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		Name:     input.Name,
		Status:   "active",
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, nil, err
	}

	account := &models.Account{
		UserID:        user.ID,
		AccountNumber: newAccountNumber(),
		AccountType:   "checking",
		Currency:      "USD",
		Status:        models.AccountStatusActive,
	}
	if err := s.accountRepo.Create(account); err != nil {
		return nil, nil, fmt.Errorf("failed to open default account: %w", err)
	}

	return user, account, nil
}

func (s *service) GetByID(id uint) (*models.User, error) {
	return s.userRepo.GetByID(id)
}

func newAccountNumber() string {
	return "ACCT-" + strings.ToUpper(uuid.NewString()[:8])
}
