package controller

import (
	"errors"

	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// GetProfile godoc
// @Summary Get my profile
// @Tags users
// @Produce  json
// @Success 200 {object} util.Response{data=service.UserProfile}
// @Failure 401 {object} util.Response "Unauthorized"
// @Security BearerAuth
// @Router /api/profile [get]
func (c *UserController) GetProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	profile, err := c.UserService.GetProfile(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, profile)
}

// UpdateProfileRequest carries the editable profile fields
// swagger:model UpdateProfileRequest
type UpdateProfileRequest struct {
	Username string `json:"username" binding:"required,min=3,max=30"`
}

// UpdateProfile godoc
// @Summary Rename my account
// @Tags users
// @Accept  json
// @Produce  json
// @Param   body body UpdateProfileRequest true "New username"
// @Success 200 {object} util.Response{data=service.UserProfile}
// @Failure 400 {object} util.Response "Invalid payload"
// @Failure 409 {object} util.Response "Username already taken"
// @Security BearerAuth
// @Router /api/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.UserService.UpdateUsername(claims.UserID, req.Username)
	if err != nil {
		if errors.Is(err, util.ErrUsernameTaken) {
			util.Error(ctx, 409, "Username already taken")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, profile)
}

// UploadAvatar godoc
// @Summary Upload my avatar
// @Description Accepts a PNG or JPEG image as multipart form field "avatar"
// @Tags users
// @Accept  multipart/form-data
// @Produce  json
// @Param   avatar formData file true "Avatar image"
// @Success 200 {object} util.Response{data=service.UserProfile}
// @Failure 400 {object} util.Response "Bad file"
// @Security BearerAuth
// @Router /api/profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, err := ctx.FormFile("avatar")
	if err != nil {
		util.BadRequest(ctx, "avatar file is required")
		return
	}

	profile, err := c.UserService.UploadAvatar(ctx.Request.Context(), claims.UserID, file)
	if err != nil {
		if errors.Is(err, util.ErrInvalidAvatar) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, profile)
}
