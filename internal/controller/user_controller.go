package controller

import (
	"elearn_backend/internal/service"
	"elearn_backend/internal/util"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxAvatarSize = 5 << 20 // 5 MiB

var allowedAvatarExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UploadAvatar godoc
// @Summary Upload the current user's avatar
// @Tags user
// @Accept mpfd
// @Produce json
// @Security ApiKeyAuth
// @Param file formData file true "avatar image"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /api/user/avatar/upload [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	user := util.CurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "Missing avatar file")
		return
	}
	if fileHeader.Size > maxAvatarSize {
		util.BadRequest(ctx, "Avatar file too large")
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedAvatarExts[ext] {
		util.BadRequest(ctx, "Unsupported avatar file type")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), user.ID, fileHeader.Filename, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"avatar": url})
}
