package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spinwheel-backend/internal/common/errors"
	"spinwheel-backend/internal/common/middleware"
	"spinwheel-backend/internal/features/wheel/models/dto"
	"spinwheel-backend/internal/features/wheel/service"
)

type WheelHandler struct {
	service service.SpinService
}

func NewWheelHandler(service service.SpinService) *WheelHandler {
	return &WheelHandler{service: service}
}

func (h *WheelHandler) RegisterRoutes(router *gin.RouterGroup) {
	wheel := router.Group("/wheel")
	{
		wheel.POST("/draw", h.draw)
		wheel.POST("/confirm", h.confirm)
	}
}

func (h *WheelHandler) draw(c *gin.Context) {
	var input dto.DrawRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ContactID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing contactId"})
		return
	}

	index, err := h.service.Draw(c.Request.Context(), input.ContactID)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DrawResponse{Success: true, Index: index})
}

func (h *WheelHandler) confirm(c *gin.Context) {
	var input dto.ConfirmRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if input.ContactID == "" || input.Prize.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing contactId or prize"})
		return
	}

	if _, err := h.service.Confirm(c.Request.Context(), input.ContactID, input.Prize); err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ConfirmResponse{Success: true, Message: "notification sent"})
}

// respondError maps service failures onto the wire: game-rule outcomes come
// back as 200 with an error flag, validation as 400, everything else as a
// generic 500 through the shared error writer.
func (h *WheelHandler) respondError(c *gin.Context, err error) {
	if service.IsBusinessError(err) {
		c.JSON(http.StatusOK, dto.BusinessError{Error: true, Message: err.Error()})
		return
	}

	if appErr, ok := apperrors.AsAppError(err); ok {
		middleware.SendError(c, appErr)
		return
	}

	middleware.SendError(c, apperrors.Wrap(err, apperrors.ErrCodeInternal, "Unexpected error"))
}
