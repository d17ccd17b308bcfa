package order

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stitchfield-backend/internal/domain"
)

type OrderRepo interface {
	Insert(ctx context.Context, o *domain.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	ListByUser(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]domain.Order, int64, error)
	List(ctx context.Context, status domain.OrderStatus, page, limit int) ([]domain.Order, int64, error)
}

// ProductReader resolves products at order-creation time; the catalog
// repo satisfies it.
type ProductReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
}
