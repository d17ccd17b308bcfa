package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/admin"
	"stitchfield-backend/internal/identity"
)

const adminUserPageSize = 20

type AdminHandler struct {
	stats *admin.Service
	users *identity.Service
	log   *zap.Logger
}

func NewAdminHandler(stats *admin.Service, users *identity.Service, log *zap.Logger) *AdminHandler {
	return &AdminHandler{stats: stats, users: users, log: log}
}

func (h *AdminHandler) Stats(c *gin.Context) {
	stats, err := h.stats.Dashboard(c.Request.Context())
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	f := identity.Filter{Search: c.Query("search")}
	if v := c.Query("isActive"); v != "" {
		active := v == "true"
		f.IsActive = &active
	}
	page, limit := pageParams(c, adminUserPageSize)
	users, total, err := h.users.ListUsers(c.Request.Context(), f, page, limit)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"users":       users,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

func (h *AdminHandler) SetUserStatus(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid user id")
		return
	}
	var in struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil || in.IsActive == nil {
		badRequest(c, "Invalid input")
		return
	}
	user, err := h.users.SetUserActive(c.Request.Context(), id, *in.IsActive)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
