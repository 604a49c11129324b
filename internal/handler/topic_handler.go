package handler

import (
	"Hive_Community/internal/access"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	svc *service.TopicService
}

type CreateTopicReq struct {
	Name        string `json:"name" binding:"required"`
	WritePolicy int    `json:"write_policy"`
}

func NewTopicHandler(svc *service.TopicService) *TopicHandler {
	return &TopicHandler{svc: svc}
}

// Create 管理员以上可建话题
func (h *TopicHandler) Create(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelAdmin) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "admin only")))
		return
	}

	var req CreateTopicReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid params")))
		return
	}

	topic, appErr := h.svc.Create(ac.CommunityID, req.Name, req.WritePolicy)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(topic, "topic created"))
}

// List is readable by anyone who can see the community feed: everyone on a
// public community, members and above on a private one.
func (h *TopicHandler) List(c *gin.Context) {
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
