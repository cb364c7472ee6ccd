package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ji-nious/mosi-project-sub001/internal/adapter/http/middleware"
	domain "github.com/ji-nious/mosi-project-sub001/internal/entity"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type ReviewHandler struct {
	reviews *usecase.ReviewService
}

func NewReviewHandler(reviews *usecase.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// AddForm authorizes the review-write page for an order item.
func (h *ReviewHandler) AddForm(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	itemID, err := strconv.ParseInt(c.Param("orderItemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.reviews.AddForm(ctx, sess.MemberID, itemID); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderItemId": itemID})
}

type reviewSubmitReq struct {
	Rating  int    `json:"rating" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *ReviewHandler) Submit(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	itemID, err := strconv.ParseInt(c.Param("orderItemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	var req reviewSubmitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	rv := &domain.Review{
		OrderItemID: itemID,
		Rating:      req.Rating,
		Content:     req.Content,
	}
	if err := h.reviews.Submit(ctx, sess.MemberID, rv); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rv)
}

// EditForm loads the member's own review for editing.
func (h *ReviewHandler) EditForm(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	rv, err := h.reviews.EditForm(ctx, sess.MemberID, reviewID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

type reviewEditReq struct {
	Rating  int    `json:"rating" binding:"required"`
	Content string `json:"content" binding:"required"`
}

func (h *ReviewHandler) Edit(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	reviewID, err := strconv.ParseInt(c.Param("reviewId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	var req reviewEditReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	rv, err := h.reviews.Edit(ctx, sess.MemberID, reviewID, req.Rating, req.Content)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, rv)
}

// SellerList is restricted to members holding the seller role.
func (h *ReviewHandler) SellerList(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	list, err := h.reviews.SellerList(ctx, sess.MemberID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}

func (h *ReviewHandler) BuyerList(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	list, err := h.reviews.BuyerList(ctx, sess.MemberID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"reviews": list})
}
