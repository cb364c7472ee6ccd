package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ji-nious/mosi-project-sub001/internal/adapter/http/middleware"
	"github.com/ji-nious/mosi-project-sub001/internal/logging"
)

type Handlers struct {
	Member *MemberHandler
	Order  *OrderHandler
	Review *ReviewHandler
	Board  *BoardHandler
}

func NewRouter(h Handlers, authz *middleware.Authz, httpLog *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())
	r.Use(middleware.Logging(httpLog))

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/v1/login", h.Member.Login)

	// legacy path kept for the storefront's session probe
	r.GET("/api/order/member-info", authz.RequireLogin(), h.Member.MemberInfo)

	v1 := r.Group("/v1", authz.RequireLogin())
	{
		v1.GET("/orders/form", h.Order.OrderForm)
		v1.POST("/orders", h.Order.PlaceOrder)
		v1.GET("/orders", h.Order.ListOrders)
		v1.GET("/orders/:id", h.Order.GetOrderByID)
		v1.POST("/orders/:id/cancel", h.Order.CancelOrder)
		v1.DELETE("/orders/:id", h.Order.DeleteOrder)
		v1.GET("/orders/complete/:code", h.Order.OrderComplete)
		v1.GET("/orders/status/:code", h.Order.OrderStatus)

		v1.GET("/board/:postId", h.Board.GetPost)
		v1.POST("/board/:postId/like", h.Board.ToggleLike)
		v1.POST("/board/:postId/report", h.Board.ToggleReport)
	}

	review := r.Group("/review", authz.RequireLogin())
	{
		review.GET("/add/:orderItemId", h.Review.AddForm)
		review.POST("/add/:orderItemId", h.Review.Submit)
		review.GET("/edit/:reviewId", h.Review.EditForm)
		review.POST("/edit/:reviewId", h.Review.Edit)
		review.GET("/seller/list", h.Review.SellerList)
		review.GET("/buyer/list", h.Review.BuyerList)
	}

	return r
}
