package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/catalog"
	"stitchfield-backend/internal/domain"
)

const productPageSize = 12

type ProductHandler struct {
	catalog *catalog.Service
	log     *zap.Logger
}

func NewProductHandler(svc *catalog.Service, log *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: svc, log: log}
}

func (h *ProductHandler) List(c *gin.Context) {
	f := catalog.Filter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Sort:     c.Query("sort"),
	}
	if v := c.Query("isActive"); v != "" {
		active := v == "true"
		f.IsActive = &active
	}
	if v := c.Query("featured"); v != "" {
		featured := v == "true"
		f.Featured = &featured
	}
	if v, err := strconv.ParseFloat(c.Query("minPrice"), 64); err == nil {
		f.MinPrice = &v
	}
	if v, err := strconv.ParseFloat(c.Query("maxPrice"), 64); err == nil {
		f.MaxPrice = &v
	}

	page, limit := pageParams(c, productPageSize)
	products, total, err := h.catalog.List(c.Request.Context(), f, page, limit)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"products":    products,
		"totalPages":  totalPages(total, limit),
		"currentPage": page,
		"total":       total,
	})
}

func (h *ProductHandler) Get(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return
	}
	p, err := h.catalog.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *ProductHandler) Create(c *gin.Context) {
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	p.ID = primitive.NilObjectID
	p.IsActive = true
	created, err := h.catalog.Create(c.Request.Context(), &p)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *ProductHandler) Update(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return
	}
	var p domain.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	p.ID = id
	updated, err := h.catalog.Update(c.Request.Context(), &p)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete deactivates rather than removing; order items keep pointing at
// a real document.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return
	}
	if err := h.catalog.Deactivate(c.Request.Context(), id); err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deactivated"})
}
