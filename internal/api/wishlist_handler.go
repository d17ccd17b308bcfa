package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/auth"
	"stitchfield-backend/internal/wishlist"
)

type WishlistHandler struct {
	wishlists *wishlist.Service
	log       *zap.Logger
}

func NewWishlistHandler(svc *wishlist.Service, log *zap.Logger) *WishlistHandler {
	return &WishlistHandler{wishlists: svc, log: log}
}

func (h *WishlistHandler) ids(c *gin.Context) (userID, productID primitive.ObjectID, ok bool) {
	userID, ok = auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	var err error
	productID, err = primitive.ObjectIDFromHex(c.Param("productId"))
	if err != nil {
		badRequest(c, "Invalid product id")
		return userID, productID, false
	}
	return userID, productID, true
}

func (h *WishlistHandler) Get(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	w, err := h.wishlists.Get(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, w)
}

func (h *WishlistHandler) Add(c *gin.Context) {
	userID, productID, ok := h.ids(c)
	if !ok {
		return
	}
	w, err := h.wishlists.Add(c.Request.Context(), userID, productID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product added to wishlist", "wishlist": w})
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	userID, productID, ok := h.ids(c)
	if !ok {
		return
	}
	w, err := h.wishlists.Remove(c.Request.Context(), userID, productID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product removed from wishlist", "wishlist": w})
}

func (h *WishlistHandler) Clear(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	w, err := h.wishlists.Clear(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Wishlist cleared successfully", "wishlist": w})
}

func (h *WishlistHandler) Check(c *gin.Context) {
	userID, productID, ok := h.ids(c)
	if !ok {
		return
	}
	in, err := h.wishlists.Contains(c.Request.Context(), userID, productID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"inWishlist": in})
}
