package http

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ji-nious/mosi-project-sub001/internal/adapter/http/middleware"
	"github.com/ji-nious/mosi-project-sub001/internal/usecase"
)

type OrderHandler struct {
	place  *usecase.PlaceOrder
	cancel *usecase.CancelOrder
	query  *usecase.OrderQuery
}

func NewOrderHandler(place *usecase.PlaceOrder, cancel *usecase.CancelOrder, query *usecase.OrderQuery) *OrderHandler {
	return &OrderHandler{place: place, cancel: cancel, query: query}
}

type placeOrderReq struct {
	CartItemIDs    []int64 `json:"cartItemIds" binding:"required"`
	Amount         int64   `json:"amount" binding:"required,gt=0"`
	PaymentMethod  string  `json:"paymentMethod" binding:"required"`
	SpecialRequest string  `json:"specialRequest"`
}

type placeOrderResp struct {
	OrderID   int64  `json:"orderId"`
	OrderCode string `json:"orderCode"`
	Status    string `json:"status"`
}

// PlaceOrder translates the request into the use case input.
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	var req placeOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	idemKey := c.GetHeader("X-Idempotency-Key") // prevent duplicated requests

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	out, err := h.place.Execute(ctx, usecase.PlaceOrderInput{
		BuyerID:        sess.MemberID,
		CartItemIDs:    req.CartItemIDs,
		Amount:         req.Amount,
		PaymentMethod:  req.PaymentMethod,
		SpecialRequest: req.SpecialRequest,
		IdempotencyKey: idemKey,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, placeOrderResp{
		OrderID:   out.OrderID,
		OrderCode: out.OrderCode,
		Status:    string(out.Status),
	})
}

// OrderForm builds the confirmation view for ?cartItemIds=1,2,3.
func (h *OrderHandler) OrderForm(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	ids, err := parseIDList(c.Query("cartItemIds"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	view, err := h.query.Form(ctx, sess.MemberID, ids)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) GetOrderByID(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	view, err := h.query.Detail(ctx, sess.MemberID, id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	sort := usecase.OrderSort(c.DefaultQuery("sort", string(usecase.OrderSortDateDesc)))

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	page, err := h.query.ListMine(ctx, sess.MemberID, sort, limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// OrderStatus reports the live status for an order code, cache first.
func (h *OrderHandler) OrderStatus(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	s, err := h.query.Status(ctx, sess.MemberID, c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orderCode": c.Param("code"), "status": s})
}

// OrderComplete renders the post-payment confirmation by order code.
func (h *OrderHandler) OrderComplete(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	view, err := h.query.CompleteByCode(ctx, sess.MemberID, c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *OrderHandler) CancelOrder(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.cancel.Execute(ctx, sess.MemberID, id); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "CANCELLED"})
}

func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	sess, _ := middleware.CurrentSession(c)

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad_request"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
	defer cancel()

	if err := h.query.Remove(ctx, sess.MemberID, id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseIDList(raw string) ([]int64, error) {
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	out := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			return nil, err
		}
		out = append(out, id)
	}
	return out, nil
}
