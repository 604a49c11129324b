package handler

import (
	"strconv"

	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc *service.NotificationService
}

func NewNotificationHandler(svc *service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	list, appErr := h.svc.List(middleware.UserID(c), page, size)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(list, "ok"))
}

// UnreadCount 未读数，带缓存
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	n, appErr := h.svc.UnreadCount(c.Request.Context(), middleware.UserID(c))
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(gin.H{"unread": n}, "ok"))
}

// MarkAllRead 全部标记为已读
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	n, appErr := h.svc.ResetUnread(c.Request.Context(), middleware.UserID(c))
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(gin.H{"marked": n}, "ok"))
}
