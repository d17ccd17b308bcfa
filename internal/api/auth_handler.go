package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stitchfield-backend/internal/auth"
	"stitchfield-backend/internal/identity"
)

type AuthHandler struct {
	users  *identity.Service
	tokens *auth.Manager
	log    *zap.Logger
}

func NewAuthHandler(users *identity.Service, tokens *auth.Manager, log *zap.Logger) *AuthHandler {
	return &AuthHandler{users: users, tokens: tokens, log: log}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var in identity.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	user, err := h.users.Register(c.Request.Context(), in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	token, err := h.tokens.Sign(user)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	user, err := h.users.Authenticate(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	token, err := h.tokens.Sign(user)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	user, err := h.users.Profile(c.Request.Context(), userID)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := auth.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid token"})
		return
	}
	var in identity.ProfileUpdate
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid input")
		return
	}
	user, err := h.users.UpdateProfile(c.Request.Context(), userID, in)
	if err != nil {
		fail(c, h.log, err)
		return
	}
	c.JSON(http.StatusOK, user)
}
