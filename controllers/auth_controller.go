package controllers

import (
	"github.com/gin-gonic/gin"

	"jpep-http-service/internal/error/code"
	"jpep-http-service/internal/error/response"
	"jpep-http-service/middleware"
	"jpep-http-service/services"
	"jpep-http-service/services/container"
)

// InterfaceAuthController defines the auth endpoints
type InterfaceAuthController interface {
	Login()
	GetCurrentUser()
}

// AuthController handles login and the authenticated profile
type AuthController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewAuthController creates a new auth controller
func NewAuthController(ctx *gin.Context, container *container.ServiceContainer) *AuthController {
	return &AuthController{
		Ctx:       ctx,
		Container: container,
	}
}

// LoginRequest is the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"citizen@example.com"`
	Password string `json:"password" binding:"required" example:"secret123"`
}

// Login authenticates a user and issues a token
// @Summary      Log in
// @Description  Verifies credentials and returns a bearer token with the user profile
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Param        request body LoginRequest true "Email and password"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /auth/login [post]
func (c *AuthController) Login() {
	var req LoginRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.Authenticate(req.Email, req.Password)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	jwtService := c.Container.GetService("jwt").(services.InterfaceJWTService)
	token, err := jwtService.GenerateToken(user)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"token": token,
		"user":  user,
	})
}

// GetCurrentUser returns the authenticated caller's profile
// @Summary      Get current user
// @Tags         Auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /users/me [get]
func (c *AuthController) GetCurrentUser() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	userService := c.Container.GetService("user").(services.InterfaceUserService)
	user, err := userService.GetUserByID(userID)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"user": user})
}

// HandleAuthFunc returns a Gin handler dispatching to the named method
func HandleAuthFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewAuthController(ctx, container)

		switch method {
		case "login":
			controller.Login()
		case "getCurrentUser":
			controller.GetCurrentUser()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
