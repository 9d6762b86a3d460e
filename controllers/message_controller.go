package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"jpep-http-service/internal/error/code"
	"jpep-http-service/internal/error/response"
	"jpep-http-service/middleware"
	"jpep-http-service/models"
	"jpep-http-service/services"
	"jpep-http-service/services/container"
)

// InterfaceMessageController defines the messaging endpoints
type InterfaceMessageController interface {
	GetMessages()
	SendMessage()
	GetMessage()
	ReplyMessage()
	DeleteMessage()
}

// MessageController handles messaging requests
type MessageController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewMessageController creates a new message controller
func NewMessageController(ctx *gin.Context, container *container.ServiceContainer) *MessageController {
	return &MessageController{
		Ctx:       ctx,
		Container: container,
	}
}

// SendMessageRequest is the payload for sending a message
type SendMessageRequest struct {
	RecipientID uint   `json:"recipient_id" binding:"required" example:"2"`
	Subject     string `json:"subject" binding:"required" example:"Road repairs on Spanish Town Road"`
	Content     string `json:"content" binding:"required" example:"When will the announced repairs begin?"`
}

// ReplyMessageRequest is the payload for replying to a message
type ReplyMessageRequest struct {
	Content string `json:"content" binding:"required" example:"Works are scheduled to start next month."`
}

// GetMessages lists messages, or the unread count, or bulk-marks as read
// @Summary      List messages
// @Description  Returns a page of inbox or sent messages; the count and markRead presence flags switch to unread-count and bulk-mark-as-read modes instead
// @Tags         Message
// @Accept       json
// @Produce      json
// @Param        type query string false "inbox (default) or sent"
// @Param        page query int false "Page number, first page is 1"
// @Param        limit query int false "Page size, default 10"
// @Param        count query bool false "Return the unread count instead (presence flag)"
// @Param        markRead query bool false "Mark all unread messages as read instead (presence flag)"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /messages [get]
func (c *MessageController) GetMessages() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)

	params := c.Ctx.Request.URL.Query()
	if params.Has("count") {
		count, err := messageService.GetUnreadMessageCount(userID)
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		response.Success(c.Ctx, gin.H{"count": count})
		return
	}
	if params.Has("markRead") {
		marked, err := messageService.MarkAllMessagesAsRead(userID)
		if err != nil {
			serviceError(c.Ctx, err)
			return
		}
		response.Success(c.Ctx, gin.H{"marked_as_read": marked})
		return
	}

	page, _ := strconv.Atoi(c.Ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.Ctx.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}

	var messages []models.Message
	var total int64
	var err error

	if c.Ctx.Query("type") == "sent" {
		messages, total, err = messageService.GetSentMessages(userID, page, limit)
	} else {
		messages, total, err = messageService.GetInboxMessages(userID, page, limit)
	}
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{
		"messages":   messages,
		"pagination": models.NewPaginationResult(total, page, limit),
	})
}

// SendMessage creates a new message
// @Summary      Send a message
// @Description  Sends a message to a representative or staff member
// @Tags         Message
// @Accept       json
// @Produce      json
// @Param        request body SendMessageRequest true "Recipient, subject and content are all required"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /messages [post]
func (c *MessageController) SendMessage() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	var req SendMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	message, err := messageService.SendMessage(userID, req.RecipientID, req.Subject, req.Content)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, gin.H{"message": message})
}

// GetMessage returns one message
// @Summary      Get message details
// @Description  Returns one message visible to the caller; retrieval by the recipient marks it read
// @Tags         Message
// @Accept       json
// @Produce      json
// @Param        id path int true "Message ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /messages/{id} [get]
func (c *MessageController) GetMessage() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid message ID")
		return
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	message, err := messageService.GetMessageByID(uint(idUint), userID)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Success(c.Ctx, gin.H{"message": message})
}

// ReplyMessage replies to an existing conversation
// @Summary      Reply to a message
// @Description  Sends a reply to the other party of an existing message; the subject gains a single Re: prefix
// @Tags         Message
// @Accept       json
// @Produce      json
// @Param        id path int true "Original message ID"
// @Param        request body ReplyMessageRequest true "Reply content"
// @Security     BearerAuth
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      403  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /messages/{id}/reply [post]
func (c *MessageController) ReplyMessage() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid message ID")
		return
	}

	var req ReplyMessageRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind, nil)
		return
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	reply, err := messageService.ReplyToMessage(uint(idUint), userID, req.Content)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}

	response.Created(c.Ctx, gin.H{"message": reply})
}

// DeleteMessage deletes a message the caller participates in
// @Summary      Delete a message
// @Description  Deletes a message when the caller is its sender or recipient; unauthorized or unknown IDs report not found
// @Tags         Message
// @Accept       json
// @Produce      json
// @Param        id path int true "Message ID"
// @Security     BearerAuth
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /messages/{id} [delete]
func (c *MessageController) DeleteMessage() {
	userID := middleware.CurrentUserID(c.Ctx)
	if userID == 0 {
		response.Unauthorized(c.Ctx)
		return
	}

	idUint, err := strconv.ParseUint(c.Ctx.Param("id"), 10, 32)
	if err != nil {
		response.ParamError(c.Ctx, "invalid message ID")
		return
	}

	messageService := c.Container.GetService("message").(services.InterfaceMessageService)
	deleted, err := messageService.DeleteMessage(uint(idUint), userID)
	if err != nil {
		serviceError(c.Ctx, err)
		return
	}
	if !deleted {
		response.Fail(c.Ctx, code.ErrMessageNotFound, nil)
		return
	}

	response.Success(c.Ctx, gin.H{"deleted": true})
}

// HandleMessageFunc returns a Gin handler dispatching to the named method
func HandleMessageFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewMessageController(ctx, container)

		switch method {
		case "getMessages":
			controller.GetMessages()
		case "sendMessage":
			controller.SendMessage()
		case "getMessage":
			controller.GetMessage()
		case "replyMessage":
			controller.ReplyMessage()
		case "deleteMessage":
			controller.DeleteMessage()
		default:
			response.ParamError(ctx, "invalid method")
		}
	}
}
