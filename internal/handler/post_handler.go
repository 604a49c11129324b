package handler

import (
	"strconv"

	"Hive_Community/internal/access"
	"Hive_Community/internal/middleware"
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	svc *service.PostService
}

type CreatePostReq struct {
	TopicID uint64 `json:"topic_id"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

func NewPostHandler(svc *service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// Create 成员以上可发帖；admin-only 话题在 service 层再查
func (h *PostHandler) Create(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelMember) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "members only")))
		return
	}

	var req CreatePostReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid params")))
		return
	}

	post, appErr := h.svc.Create(ac.UserID, ac.CommunityID, req.TopicID, req.Title, req.Content,
		ac.Level.AtLeast(access.LevelAdmin))
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(post, "post created"))
}

// List serves the feed. cursor=0 (or absent) means the first page; the
// response carries next_cursor=0 when the feed is exhausted. A legacy page
// query falls back to offset pagination.
func (h *PostHandler) List(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if ac.Private && !ac.Level.AtLeast(access.LevelMember) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "members only")))
		return
	}

	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	if size <= 0 || size > 50 {
		size = 20
	}

	if pageStr := c.Query("page"); pageStr != "" {
		page, _ := strconv.Atoi(pageStr)
		list, appErr := h.svc.List(ac.CommunityID, page, size)
		if appErr != nil {
			respond(c, pkg.Fail(appErr))
			return
		}
		respond(c, pkg.OK(list, "ok"))
		return
	}

	cursor, _ := strconv.ParseUint(c.DefaultQuery("cursor", "0"), 10, 64)
	list, next, appErr := h.svc.ListCursor(ac.CommunityID, cursor, size)
	if appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(gin.H{"posts": list, "next_cursor": next}, "ok"))
}

func (h *PostHandler) Delete(c *gin.Context) {
	ac := middleware.MustAccess(c)
	if !ac.Level.AtLeast(access.LevelMember) {
		respond(c, pkg.Fail(pkg.E(pkg.CodeForbidden, "members only")))
		return
	}
	postID, err := strconv.ParseUint(c.Param("postId"), 10, 64)
	if err != nil || postID == 0 {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid post id")))
		return
	}
	if appErr := h.svc.Delete(ac.UserID, ac.CommunityID, postID, ac.Level.AtLeast(access.LevelAdmin)); appErr != nil {
		respond(c, pkg.Fail(appErr))
		return
	}
	respond(c, pkg.OK(nil, "post deleted"))
}
