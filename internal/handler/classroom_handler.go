package handler

import (
	"Hive_Community/internal/access"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type ClassroomHandler struct {
	svc *service.ClassroomService
}

type CreateClassroomReq struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func NewClassroomHandler(svc *service.ClassroomService) *ClassroomHandler {
	return &ClassroomHandler{svc: svc}
}

// Create 管理员以上可开教室
func (h *ClassroomHandler) Create(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelAdmin) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "admin only")))
		return
	}

	var req CreateClassroomReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid params")))
		return
	}

	room, appErr := h.svc.Create(ac.CommunityID, req.Name, req.Description)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(room, "classroom created"))
}

// List 教室列表对成员开放；公开社区对所有访客开放
func (h *ClassroomHandler) List(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if ac.Private && !ac.Level.AtLeast(access.LevelMember) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "members only")))
		return
	}
	list, appErr := h.svc.List(ac.CommunityID)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(list, "ok"))
}
