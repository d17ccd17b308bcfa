package main

import (
	"context"
	"log"
	"time"

	"go.uber.org/zap"

	"stitchfield-backend/internal/admin"
	"stitchfield-backend/internal/api"
	"stitchfield-backend/internal/auth"
	"stitchfield-backend/internal/catalog"
	"stitchfield-backend/internal/config"
	"stitchfield-backend/internal/identity"
	"stitchfield-backend/internal/inventory"
	"stitchfield-backend/internal/logger"
	"stitchfield-backend/internal/order"
	"stitchfield-backend/internal/store"
	"stitchfield-backend/internal/wishlist"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, db, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		zlog.Fatal("mongo connection failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background()) //nolint:errcheck
	if err := store.EnsureIndexes(ctx, db); err != nil {
		zlog.Fatal("index creation failed", zap.Error(err))
	}
	zlog.Info("connected to mongo", zap.String("db", cfg.MongoDB))

	products := catalog.NewMongoRepo(db)
	orders := order.NewMongoRepo(db)
	users := identity.NewMongoRepo(db)
	wishlists := wishlist.NewMongoRepo(db)

	adjuster := inventory.NewAdjuster(products, zlog)
	tokens := auth.NewManager(cfg.JWTSecret, cfg.JWTExpiry)

	router := api.NewRouter(api.Deps{
		Tokens:      tokens,
		Catalog:     catalog.NewService(products, zlog),
		Orders:      order.NewService(orders, products, adjuster, zlog),
		Users:       identity.NewService(users, zlog),
		Wishlists:   wishlist.NewService(wishlists, products),
		Stats:       admin.NewService(admin.NewMongoRepo(db)),
		Log:         zlog,
		CORSOrigins: cfg.CORSOrigins,
	})

	zlog.Info("listening", zap.String("port", cfg.Port))
	if err := router.Run(":" + cfg.Port); err != nil {
		zlog.Fatal("server stopped", zap.Error(err))
	}
}
