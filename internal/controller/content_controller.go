package controller

import (
	"errors"

	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// GetPlanets godoc
// @Summary List the planets
// @Description Returns the planet encyclopedia used by the explorer and the solar builder palette
// @Tags content
// @Produce  json
// @Success 200 {object} util.Response{data=[]model.Planet}
// @Router /api/planets [get]
func (c *ContentController) GetPlanets(ctx *gin.Context) {
	planets, err := c.ContentService.GetPlanets()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, planets)
}

// GetPlanet godoc
// @Summary One planet by name
// @Tags content
// @Produce  json
// @Param   name path string true "Planet name"
// @Success 200 {object} util.Response{data=model.Planet}
// @Failure 404 {object} util.Response "Unknown planet"
// @Router /api/planets/{name} [get]
func (c *ContentController) GetPlanet(ctx *gin.Context) {
	planet, err := c.ContentService.GetPlanet(ctx.Param("name"))
	if err != nil {
		if errors.Is(err, util.ErrPlanetNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, planet)
}

// GetDailyKnowledge godoc
// @Summary Today's knowledge page
// @Description Returns the rotating fact of the day and its generated question, answer withheld
// @Tags content
// @Produce  json
// @Success 200 {object} util.Response{data=service.DailyKnowledge}
// @Router /api/knowledge/daily [get]
func (c *ContentController) GetDailyKnowledge(ctx *gin.Context) {
	knowledge, err := c.ContentService.GetDailyKnowledge()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, knowledge)
}
