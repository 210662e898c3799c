package category

import (
	"errors"

	"fintrack/internal/models"
	"fintrack/internal/repositories"
	"fintrack/internal/validation"
)

var ErrInvalidInput = errors.New("name and valid type are required")

type Service interface {
	Create(userID uint, name, categoryType string) (*models.Category, error)
	List(userID uint) ([]models.Category, error)
	Rename(id, userID uint, name string) (*models.Category, error)
	Delete(id, userID uint) error
}

type service struct {
	repo repositories.CategoryRepository
}

func NewService(repo repositories.CategoryRepository) Service {
	return &service{repo: repo}
}

func (s *service) Create(userID uint, name, categoryType string) (*models.Category, error) {
	if name == "" || !validation.TransactionType(categoryType) {
		return nil, ErrInvalidInput
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
	}
	if err := s.repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) List(userID uint) ([]models.Category, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Rename(id, userID uint, name string) (*models.Category, error) {
	if name == "" {
		return nil, ErrInvalidInput
	}

	category, err := s.repo.GetOwned(id, userID)
	if err != nil {
		return nil, err
	}

	category.Name = name
	if err := s.repo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *service) Delete(id, userID uint) error {
	return s.repo.Delete(id, userID)
}
