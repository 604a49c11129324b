package handler

import (
	"Hive_Community/internal/pkg"
	"Hive_Community/internal/service"

	"github.com/gin-gonic/gin"
)

type EmailHandler struct {
	svc *service.EmailService
}

type SendCodeReq struct {
	Email string `json:"email" binding:"required,email"`
}

func NewEmailHandler(svc *service.EmailService) *EmailHandler {
	return &EmailHandler{svc: svc}
}

// SendCode 发送验证码，scope 为 register 或 reset
func (h *EmailHandler) SendCode(c *gin.Context) {
	scope := c.Param("scope")
	if scope != service.EmailScopeRegister && scope != service.EmailScopeReset {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid scope")))
		return
	}

	var req SendCodeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		respond(c, pkg.Fail(pkg.E(pkg.CodeInvalidParams, "invalid params")))
		return
	}

	if err := h.svc.SendCode(scope, req.Email); err != nil {
		respond(c, pkg.Fail(pkg.Wrap(pkg.CodeInternal, "send code failed", err)))
		return
	}
	respond(c, pkg.OK(nil, "code sent"))
}
