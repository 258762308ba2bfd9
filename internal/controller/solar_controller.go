package controller

import (
	"encoding/json"
	"errors"

	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SolarController struct {
	SolarService *service.SolarService
}

func NewSolarController(solarService *service.SolarService) *SolarController {
	return &SolarController{SolarService: solarService}
}

// SaveSystemRequest wraps the builder canvas layout
// swagger:model SaveSystemRequest
type SaveSystemRequest struct {
	System json.RawMessage `json:"system" binding:"required"`
}

// SaveSystem godoc
// @Summary Save my solar system
// @Description Replaces the user's saved builder layout
// @Tags solar-builder
// @Accept  json
// @Produce  json
// @Param   body body SaveSystemRequest true "Placed bodies"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "Layout is not a JSON array"
// @Security BearerAuth
// @Router /api/solar-builder/save [post]
func (c *SolarController) SaveSystem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SaveSystemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.SolarService.SaveSystem(claims.UserID, req.System); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, gin.H{"ok": true})
}

// LoadSystem godoc
// @Summary Load my saved solar system
// @Tags solar-builder
// @Produce  json
// @Success 200 {object} util.Response{data=object}
// @Failure 404 {object} util.Response "Nothing saved yet"
// @Security BearerAuth
// @Router /api/solar-builder/load [get]
func (c *SolarController) LoadSystem(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	layout, err := c.SolarService.LoadSystem(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrNoSavedSystem) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"system": layout})
}
