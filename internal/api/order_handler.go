package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/auth"
	"stitchfield-backend/internal/domain"
	"stitchfield-backend/internal/order"
)

const (
	orderPageSize      = 10
	adminOrderPageSize = 20
)

type OrderHandler struct {
	orders *order.Service
	log    *zap.Logger
}

func NewOrderHandler(svc *order.Service, log *zap.Logger) *OrderHandler {
	return &OrderHandler{orders: svc, log: log}
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	var in order.CreateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	o, err := h.orders.Create(c.Request.Context(), userID, in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	page, limit := pageParams(c, orderPageSize)
	orders, total, err := h.orders.ListMine(c.Request.Context(), userID, page, limit)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

func (h *OrderHandler) Get(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid order id")
		return
	}
	o, err := h.orders.Get(c.Request.Context(), orderID, userID, auth.CurrentRole(c))
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid order id")
		return
	}
	var in struct {
		OrderStatus    domain.OrderStatus `json:"orderStatus" binding:"required"`
		TrackingNumber string             `json:"trackingNumber"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	o, err := h.orders.UpdateStatus(c.Request.Context(), orderID, in.OrderStatus, in.TrackingNumber)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) Cancel(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	orderID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid order id")
		return
	}
	o, err := h.orders.Cancel(c.Request.Context(), orderID, userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Order cancelled successfully",
		"order":   o,
	})
}

func (h *OrderHandler) ListAll(c *gin.Context) {
	page, limit := pageParams(c, adminOrderPageSize)
	status := domain.OrderStatus(c.Query("status"))
	orders, total, err := h.orders.ListAll(c.Request.Context(), status, page, limit)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"orders":      orders,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}
