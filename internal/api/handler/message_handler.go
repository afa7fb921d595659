package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/priyatech/agency-api/internal/api/metrics"
	"github.com/priyatech/agency-api/internal/core/ports"
)

// MessageHandler handles HTTP requests for messaging.
type MessageHandler struct {
	service ports.MessageService
}

func NewMessageHandler(service ports.MessageService) *MessageHandler {
	return &MessageHandler{service: service}
}

// Send creates a new directed message.
//
// @Summary      Send a message
// @Tags         messages
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      sendMessageRequest  true  "Message details"
// @Success      201   {object}  messageResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/messages [post]
func (h *MessageHandler) Send(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	detail, err := h.service.Send(c.Request().Context(), caller, ports.SendMessageInput{
		ReceiverID: req.ReceiverID,
		ProjectID:  req.ProjectID,
		Body:       req.Body,
	})
	if err != nil {
		return err
	}
	metrics.MessagesSentTotal.Inc()

	return c.JSON(http.StatusCreated, toMessageResponse(detail))
}

// ListMine returns all messages the caller sent or received, newest first.
//
// @Summary      List my messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  messageResponse
// @Router       /v1/messages/mine [get]
func (h *MessageHandler) ListMine(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	details, err := h.service.ListMine(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMessageResponses(details))
}

// ListForProject returns a project's messages oldest first.
//
// @Summary      List project messages
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Project id"
// @Success      200  {array}  messageResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/messages/project/{id} [get]
func (h *MessageHandler) ListForProject(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	details, err := h.service.ListForProject(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMessageResponses(details))
}

// ListWithUser returns the conversation between the caller and another
// user, oldest first.
//
// @Summary      List conversation with a user
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path     string  true  "Other user id"
// @Success      200  {array}  messageResponse
// @Router       /v1/messages/user/{id} [get]
func (h *MessageHandler) ListWithUser(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	details, err := h.service.ListWithUser(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toMessageResponses(details))
}

// MarkRead flips a message's read flag. Only the receiver may call it.
//
// @Summary      Mark a message as read
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Message id"
// @Success      200  {object}  domain.Message
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/messages/{id}/read [patch]
func (h *MessageHandler) MarkRead(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	msg, err := h.service.MarkRead(c.Request().Context(), caller, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, msg)
}

// Delete removes a message. Admin or original sender only.
//
// @Summary      Delete a message
// @Tags         messages
// @Security     BearerAuth
// @Param        id  path  string  true  "Message id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/messages/{id} [delete]
func (h *MessageHandler) Delete(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), caller, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// UnreadCount returns the caller's unread message count.
//
// @Summary      Unread message count
// @Tags         messages
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  unreadCountResponse
// @Router       /v1/messages/unread-count [get]
func (h *MessageHandler) UnreadCount(c echo.Context) error {
	caller, err := ctxCaller(c)
	if err != nil {
		return err
	}

	n, err := h.service.UnreadCount(c.Request().Context(), caller)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, unreadCountResponse{Unread: n})
}
