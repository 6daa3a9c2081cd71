package handlers

import (
	"net/http"

	"cleanly/middleware"
	"cleanly/services/chat"
	"cleanly/utils"

	"github.com/gin-gonic/gin"
)

// ChatHandler exposes the two-party chat endpoints.
type ChatHandler struct {
	Chat chat.ChatService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Chat: svc}
}

// Send handles POST /api/chat/send.
func (h *ChatHandler) Send(c *gin.Context) {
	var req struct {
		RecipientID string `json:"recipientId" binding:"required"`
		Text        string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	conv, err := h.Chat.SendMessage(c.GetString(middleware.CtxUserID), req.RecipientID, req.Text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, conv)
}

// List handles GET /api/chat, returning the caller's conversations.
func (h *ChatHandler) List(c *gin.Context) {
	views, err := h.Chat.Conversations(c.GetString(middleware.CtxUserID))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}
