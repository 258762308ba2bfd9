package controller

import (
	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type SpaceDataController struct {
	SpaceDataService *service.SpaceDataService
}

func NewSpaceDataController(spaceDataService *service.SpaceDataService) *SpaceDataController {
	return &SpaceDataController{SpaceDataService: spaceDataService}
}

// GetPictureOfTheDay godoc
// @Summary Astronomy picture of the day
// @Description Live API first, then cache, then static fallback
// @Tags space-data
// @Produce  json
// @Success 200 {object} util.Response{data=service.PictureOfTheDay}
// @Router /api/space/apod [get]
func (c *SpaceDataController) GetPictureOfTheDay(ctx *gin.Context) {
	pod, err := c.SpaceDataService.GetPictureOfTheDay(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, pod)
}

// GetNearEarthObjects godoc
// @Summary Today's near-Earth objects
// @Tags space-data
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.NearEarthObject}
// @Router /api/space/neo [get]
func (c *SpaceDataController) GetNearEarthObjects(ctx *gin.Context) {
	objects, err := c.SpaceDataService.GetNearEarthObjects(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, objects)
}

// GetRoverPhotos godoc
// @Summary Recent Mars rover photos
// @Tags space-data
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.RoverPhoto}
// @Router /api/space/rover-photos [get]
func (c *SpaceDataController) GetRoverPhotos(ctx *gin.Context) {
	photos, err := c.SpaceDataService.GetRoverPhotos(ctx.Request.Context())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, photos)
}
