package controller

import (
	"space_academy_backend/internal/service"
	"space_academy_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	ChatService *service.ChatService
}

func NewChatController(chatService *service.ChatService) *ChatController {
	return &ChatController{ChatService: chatService}
}

// ChatRequest is one tutor question with optional prior turns
// swagger:model ChatRequest
type ChatRequest struct {
	Message string                `json:"message" binding:"required"`
	History []service.ChatMessage `json:"history"`
}

// Ask godoc
// @Summary Ask Cosmo the space tutor
// @Description Answers via the configured chat model, or from the canned knowledge base when none is configured
// @Tags chat
// @Accept  json
// @Produce  json
// @Param   body body ChatRequest true "Question"
// @Success 200 {object} util.Response{data=object} "Reply"
// @Failure 400 {object} util.Response "Invalid payload"
// @Router /api/chat [post]
func (c *ChatController) Ask(ctx *gin.Context) {
	var req ChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.ChatService.Ask(req.Message, req.History)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"reply": reply})
}
