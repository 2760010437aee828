package controller

import (
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"errors"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model SignupRequest
type SignupRequest struct {
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	FullName        string `json:"fullName" binding:"required,min=2"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Register a new account
// @Description Creates a user and returns a token bound to the new identity
// @Tags auth
// @Accept json
// @Produce json
// @Param body body SignupRequest true "signup payload"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response "validation error"
// @Failure 409 {object} util.Response "email already registered"
// @Router /api/auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if req.Password != req.ConfirmPassword {
		util.BadRequest(ctx, "Passwords do not match")
		return
	}

	user, token, err := c.AuthService.Signup(req.Email, req.FullName, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrValidation):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrEmailRegistered):
			util.Conflict(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, "Account created successfully", gin.H{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary Authenticate and obtain a token
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "login payload"
// @Success 200 {object} util.Response
// @Failure 401 {object} util.Response "invalid credentials"
// @Router /api/auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			// Deliberately generic: never reveals whether the email exists.
			util.Error(ctx, 401, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.SuccessWithMessage(ctx, "Login successful", gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// @Summary Current user profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/auth/me [get]
func (c *AuthController) Me(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
