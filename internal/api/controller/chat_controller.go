package controller

import (
	"github.com/gin-gonic/gin"

	"github.com/alfredhq/alfred/internal/api/response"
	"github.com/alfredhq/alfred/internal/assistant"
	"github.com/alfredhq/alfred/internal/service"
)

type ChatController struct {
	chat *service.ChatService
}

func NewChatController(chat *service.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

type ChatRequest struct {
	Message string `json:"message" binding:"required,max=2000"`
}

type ChatResponse struct {
	Reply         string            `json:"reply"`
	Action        *assistant.Action `json:"action,omitempty"`
	Dispatched    bool              `json:"dispatched"`
	Clarification string            `json:"clarification,omitempty"`
	Entity        any               `json:"entity,omitempty"`
}

// Send runs one assistant turn.
// @Summary Chat with Alfred
// @Tags Chat
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ChatRequest true "message"
// @Success 200 {object} response.Response{data=ChatResponse}
// @Router /chat [post]
func (ctrl *ChatController) Send(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}

	res, err := ctrl.chat.Send(c.Request.Context(), currentUser(c), req.Message)
	if err != nil {
		fail(c, err)
		return
	}

	response.Success(c, ChatResponse{
		Reply:         res.Reply,
		Action:        res.Action,
		Dispatched:    res.Outcome.Dispatched,
		Clarification: res.Outcome.Clarification,
		Entity:        res.Outcome.Entity,
	})
}

type MessagesQuery struct {
	Limit int `form:"limit,default=50" binding:"min=1,max=50"`
}

func (ctrl *ChatController) Messages(c *gin.Context) {
	var q MessagesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		badRequest(c, err)
		return
	}

	msgs, err := ctrl.chat.Messages(c.Request.Context(), currentUser(c), q.Limit)
	if err != nil {
		fail(c, err)
		return
	}
	response.Success(c, msgs)
}
