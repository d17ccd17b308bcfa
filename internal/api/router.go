// Package api wires the gin router: public catalog and auth routes,
// JWT-protected storefront routes, and admin-only management routes.
package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"stitchfield-backend/internal/admin"
	"stitchfield-backend/internal/auth"
	"stitchfield-backend/internal/catalog"
	"stitchfield-backend/internal/identity"
	"stitchfield-backend/internal/logger"
	"stitchfield-backend/internal/order"
	"stitchfield-backend/internal/wishlist"
)

type Deps struct {
	Tokens      *auth.Manager
	Catalog     *catalog.Service
	Orders      *order.Service
	Users       *identity.Service
	Wishlists   *wishlist.Service
	Stats       *admin.Service
	Log         *zap.Logger
	CORSOrigins []string
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(logger.Recovery(d.Log))
	r.Use(logger.GinMiddleware(d.Log))
	r.Use(cors.New(cors.Config{
		AllowOrigins:     d.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	authH := NewAuthHandler(d.Users, d.Tokens, d.Log)
	productH := NewProductHandler(d.Catalog, d.Log)
	orderH := NewOrderHandler(d.Orders, d.Log)
	wishlistH := NewWishlistHandler(d.Wishlists, d.Log)
	adminH := NewAdminHandler(d.Stats, d.Users, d.Log)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/auth/register", authH.Register)
		apiGroup.POST("/auth/login", authH.Login)

		apiGroup.GET("/products", productH.List)
		apiGroup.GET("/products/:id", productH.Get)
	}

	authed := apiGroup.Group("", d.Tokens.Middleware())
	{
		authed.GET("/auth/profile", authH.Profile)
		authed.PUT("/auth/profile", authH.UpdateProfile)

		authed.POST("/orders", orderH.Create)
		authed.GET("/orders/my-orders", orderH.ListMine)
		authed.GET("/orders/:id", orderH.Get)
		authed.PUT("/orders/:id/cancel", orderH.Cancel)

		authed.GET("/wishlist", wishlistH.Get)
		authed.POST("/wishlist/add/:productId", wishlistH.Add)
		authed.DELETE("/wishlist/remove/:productId", wishlistH.Remove)
		authed.DELETE("/wishlist/clear", wishlistH.Clear)
		authed.GET("/wishlist/check/:productId", wishlistH.Check)
	}

	adminGroup := authed.Group("", auth.RequireAdmin())
	{
		adminGroup.POST("/products", productH.Create)
		adminGroup.PUT("/products/:id", productH.Update)
		adminGroup.DELETE("/products/:id", productH.Delete)

		adminGroup.GET("/orders", orderH.ListAll)
		adminGroup.PUT("/orders/:id/status", orderH.UpdateStatus)

		adminGroup.GET("/admin/stats", adminH.Stats)
		adminGroup.GET("/admin/users", adminH.ListUsers)
		adminGroup.PUT("/admin/users/:id/status", adminH.SetUserStatus)
	}

	return r
}
