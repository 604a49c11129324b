package handler

import (
	"strconv"

	"Hive_Community/internal/access"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/model"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type CommunityHandler struct {
	svc *service.CommunityService
}

type CreateCommunityReq struct {
	Slug        string `json:"slug" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Private     bool   `json:"private"`
	PriceCents  int64  `json:"price_cents"`
}

func NewCommunityHandler(svc *service.CommunityService) *CommunityHandler {
	return &CommunityHandler{svc: svc}
}

func (h *CommunityHandler) Create(c *gin.Context) {
	var req CreateCommunityReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid params")))
		return
	}

	community, appErr := h.svc.Create(middleware.UserID(c), req.Slug, req.Name, req.Description, req.Private, req.PriceCents)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(community, "community created"))
}

func (h *CommunityHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	list, appErr := h.svc.List(page, size)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(list, "ok"))
}

// Detail exposes the community card. Anonymous visitors see public and
// private communities alike; the member-only surfaces are gated separately.
func (h *CommunityHandler) Detail(c *gin.Context) {
	ac := middleware.MustAccess(c)
	community := middleware.Community(c)
	respond(c, pkg.OK(gin.H{
		"community": community,
		"level":     ac.Level.String(),
	}, "ok"))
}

func (h *CommunityHandler) Join(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if ac.UserID == 0 {
		respond(c, pkg.Fail(pkg.E(pkg.CodeUnauthorized, "login required")))
		return
	}
	if ac.Level == access.LevelBanned {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "banned from this community")))
		return
	}

	community := middleware.Community(c)
	status, appErr := h.svc.Join(c.Request.Context(), ac.UserID, community)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}

	// 只升不降：owner/admin 的冗余 join 不能把级别改写成 member
	if status == model.MemberStatusActive {
		if !ac.Level.AtLeast(access.LevelMember) {
			ac.SetLevel(access.LevelMember)
		}
		respond(c, pkg.OK(gin.H{"status": "active"}, "joined"))
		return
	}
	if !ac.Level.AtLeast(access.LevelPending) {
		ac.SetLevel(access.LevelPending)
	}
	respond(c, pkg.OK(gin.H{"status": "pending"}, "join request submitted"))
}

func (h *CommunityHandler) Leave(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if ac.UserID == 0 {
		respond(c, pkg.Fail(pkg.E(pkg.CodeUnauthorized, "login required")))
		return
	}

	if appErr := h.svc.Leave(ac.UserID, middleware.Community(c)); appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	ac.SetLevel(access.LevelNotMember)
	respond(c, pkg.OK(nil, "left"))
}

// Deactivate 仅 owner 可用
func (h *CommunityHandler) Deactivate(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelOwner) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "owner only")))
		return
	}
	if appErr := h.svc.Deactivate(ac.CommunityID); appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(nil, "community deactivated"))
}
