package repositories

import (
	"github.com/shottrack/database"
	"github.com/shottrack/models"
)

// ProjectRepository handles database operations for projects
type ProjectRepository struct{}

// NewProjectRepository creates a new project repository instance
func NewProjectRepository() *ProjectRepository {
	return &ProjectRepository{}
}

// FindAll retrieves all projects in store-native order
func (r *ProjectRepository) FindAll() ([]models.Project, error) {
	projects := make([]models.Project, 0)
	result := database.DB.Find(&projects)
	return projects, result.Error
}

// FindByID retrieves a project by its ID
func (r *ProjectRepository) FindByID(id uint) (models.Project, error) {
	var project models.Project
	result := database.DB.First(&project, id)
	return project, result.Error
}

// Create inserts a new project into the database and assigns its ID
func (r *ProjectRepository) Create(project models.Project) (models.Project, error) {
	result := database.DB.Create(&project)
	return project, result.Error
}

// Update overwrites every column of an existing project
func (r *ProjectRepository) Update(project models.Project) (models.Project, error) {
	result := database.DB.Save(&project)
	return project, result.Error
}

// Delete removes a project from the database
func (r *ProjectRepository) Delete(id uint) error {
	return database.DB.Delete(&models.Project{}, id).Error
}
