package handler

import (
	"Hive_Community/internal/access"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type GalleryHandler struct {
	svc *service.GalleryService
}

type AddMediaReq struct {
	Platform string `json:"platform" binding:"required"`
	URL      string `json:"url" binding:"required,url"`
}

func NewGalleryHandler(svc *service.GalleryService) *GalleryHandler {
	return &GalleryHandler{svc: svc}
}

// Add 管理员以上可向媒体墙添加链接
func (h *GalleryHandler) Add(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelAdmin) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "admin only")))
		return
	}

	var req AddMediaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid params")))
		return
	}

	media, appErr := h.svc.Add(ac.CommunityID, ac.UserID, req.Platform, req.URL)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(media, "media added"))
}

func (h *GalleryHandler) List(c *gin.Context) {
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
