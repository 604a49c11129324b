package handler

import (
	"strconv"

	"Hive_Community/internal/access"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type MembershipHandler struct {
	svc *service.MembershipService
}

func NewMembershipHandler(svc *service.MembershipService) *MembershipHandler {
	return &MembershipHandler{svc: svc}
}

// Pending lists the open join requests. Admin and above.
func (h *MembershipHandler) Pending(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelAdmin) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "admin only")))
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))
	list, appErr := h.svc.Pending(ac.CommunityID, page, size)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(list, "ok"))
}

func (h *MembershipHandler) Approve(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelAdmin) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "admin only")))
		return
	}
	target, ok := paramUserID(c)
	if !ok {
		return
	}
	if appErr := h.svc.Approve(c.Request.Context(), middleware.Community(c), target); appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(nil, "approved"))
}

func (h *MembershipHandler) Decline(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelAdmin) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "admin only")))
		return
	}
	target, ok := paramUserID(c)
	if !ok {
		return
	}
	if appErr := h.svc.Decline(middleware.Community(c), target); appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(nil, "declined"))
}

func (h *MembershipHandler) Ban(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelAdmin) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "admin only")))
		return
	}
	target, ok := paramUserID(c)
	if !ok {
		return
	}
	if appErr := h.svc.Ban(middleware.Community(c), target); appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(nil, "banned"))
}

func paramUserID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("userId"), 10, 64)
	if err != nil || id == 0 {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid user id")))
		return 0, false
	}
	return id, true
}
