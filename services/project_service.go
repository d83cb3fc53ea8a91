package services

import (
	"errors"

	"github.com/shottrack/models"
	"github.com/shottrack/repositories"
	"gorm.io/gorm"
)

// ErrProjectNotFound is returned when an operation targets a project ID that
// does not exist.
var ErrProjectNotFound = errors.New("project not found")

// ProjectService sits between the API layer and the project repository.
type ProjectService struct {
	repo *repositories.ProjectRepository
}

// NewProjectService creates a new project service instance
func NewProjectService() *ProjectService {
	return &ProjectService{
		repo: repositories.NewProjectRepository(),
	}
}

// ListProjects returns every project in store-native order.
func (s *ProjectService) ListProjects() ([]models.Project, error) {
	return s.repo.FindAll()
}

// CreateProject persists a new project and returns it with its assigned ID.
func (s *ProjectService) CreateProject(project models.Project) (models.Project, error) {
	return s.repo.Create(project)
}

// UpdateProject replaces every field of the project with the given ID.
func (s *ProjectService) UpdateProject(id uint, fields models.Project) (models.Project, error) {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Project{}, ErrProjectNotFound
		}
		return models.Project{}, err
	}

	fields.ID = id
	return s.repo.Update(fields)
}

// DeleteProject removes the project with the given ID.
func (s *ProjectService) DeleteProject(id uint) error {
	if _, err := s.repo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return err
	}
	return s.repo.Delete(id)
}
