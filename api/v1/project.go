package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shottrack/dto"
	"github.com/shottrack/models"
	"github.com/shottrack/services"
)

// ProjectService is the seam between the controller and the persistence
// layer; tests substitute a stub implementation.
type ProjectService interface {
	ListProjects() ([]models.Project, error)
	CreateProject(project models.Project) (models.Project, error)
	UpdateProject(id uint, fields models.Project) (models.Project, error)
	DeleteProject(id uint) error
}

// ProjectController handles project CRUD endpoints.
type ProjectController struct {
	projectService ProjectService
}

// NewProjectController creates a new project controller
func NewProjectController(projectService ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// ListProjects returns every project record in store-native order.
func (ctrl *ProjectController) ListProjects(c *gin.Context) {
	projects, err := ctrl.projectService.ListProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to retrieve projects: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, projects)
}

// CreateProject persists a new project and returns it with its assigned ID.
func (ctrl *ProjectController) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := ctrl.projectService.CreateProject(req.ToModel())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to create project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, project)
}

// UpdateProject performs a full-field replace of the project with the given
// ID.
func (ctrl *ProjectController) UpdateProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"detail": "Invalid request data: " + err.Error(),
		})
		return
	}

	project, err := ctrl.projectService.UpdateProject(id, req.ToModel())
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			projectNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to update project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, project)
}

// DeleteProject removes the project with the given ID.
func (ctrl *ProjectController) DeleteProject(c *gin.Context) {
	id, ok := projectID(c)
	if !ok {
		return
	}

	if err := ctrl.projectService.DeleteProject(id); err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			projectNotFound(c)
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to delete project: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Project deleted",
	})
}

// projectID parses the path parameter. A non-numeric id cannot name any
// existing project, so it is reported as not found.
func projectID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		projectNotFound(c)
		return 0, false
	}
	return uint(id), true
}

func projectNotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"detail": "Project not found",
	})
}
