package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ji-nious/mosi-project-sub001/internal/adapter/http/middleware"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type BoardHandler struct {
	board *usecase.BoardService
}

func NewBoardHandler(board *usecase.BoardService) *BoardHandler {
	return &BoardHandler{board: board}
}

func (h *BoardHandler) GetPost(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	p, err := h.board.Post(ctx, postID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"postId":      p.ID,
		"authorId":    p.AuthorID,
		"title":       p.Title,
		"content":     p.Content,
		"likeCount":   p.LikeCount,
		"reportCount": p.ReportCount,
		"createdAt":   p.CreatedAt,
	})
}

func (h *BoardHandler) ToggleLike(c *gin.Context) {
	h.toggle(c, h.board.ToggleLike)
}

func (h *BoardHandler) ToggleReport(c *gin.Context) {
	h.toggle(c, h.board.ToggleReport)
}

func (h *BoardHandler) toggle(c *gin.Context, fn func(context.Context, int64, int64) (usecase.ToggleResult, error)) {
	sess, _ := middleware.CurrentSession(c)

	postID, err := strconv.ParseInt(c.Param("postId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	res, err := fn(ctx, postID, sess.MemberID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
