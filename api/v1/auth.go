package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shottrack/dto"
	"github.com/shottrack/services"
)

// AuthController handles the login endpoint.
type AuthController struct {
	authService *services.AuthService
}

// NewAuthController creates a new auth controller
func NewAuthController(authService *services.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles the form-encoded username/password exchange for a bearer
// token.
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		loginFailed(c)
		return
	}

	user, err := ctrl.authService.Authenticate(req.Username, req.Password)
	if err != nil {
		loginFailed(c)
		return
	}

	token, _, err := ctrl.authService.GenerateToken(user.Username)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"detail": "Failed to issue token",
		})
		return
	}

	c.JSON(http.StatusOK, dto.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}

func loginFailed(c *gin.Context) {
	c.Header("WWW-Authenticate", "Bearer")
	c.JSON(http.StatusUnauthorized, gin.H{
		"detail": "Incorrect username or password",
	})
}
