package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ji-nious/mosi-project-sub001/internal/adapter/http/middleware"
	"github.com/ji-nious/mosi-project-sub001/internal/security"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type MemberHandler struct {
	members *usecase.MemberService
	tokens  *security.TokenIssuer
}

func NewMemberHandler(members *usecase.MemberService, tokens *security.TokenIssuer) *MemberHandler {
	return &MemberHandler{members: members, tokens: tokens}
}

type loginReq struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login exchanges credentials for a bearer token.
func (h *MemberHandler) Login(c *gin.Context) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	m, err := h.members.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	signed, err := h.tokens.Issue(m.ID, string(m.Role), time.Now())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "server_error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": signed,
		"token_type":   "Bearer",
		"expires_in":   int(h.tokens.TTL().Seconds()),
	})
}

// MemberInfo reports the logged-in member's identity. Routes reach it
// through RequireLogin, so a missing session means the handler was
// wired without the middleware.
func (h *MemberHandler) MemberInfo(c *gin.Context) {
	sess, ok := middleware.CurrentSession(c)
	if !ok {
		writeError(c, usecase.ErrUnauthenticated)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	info, err := h.members.Info(ctx, sess.MemberID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
