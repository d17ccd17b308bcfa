package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stitchfield-backend/internal/domain"
)

// Filter narrows a product listing. Zero values mean "no constraint".
type Filter struct {
	Category string
	Search   string
	IsActive *bool
	Featured *bool
	MinPrice *float64
	MaxPrice *float64
	Sort     string // "price", "-price", anything else = newest first
}

type ProductRepo interface {
	Insert(ctx context.Context, p *domain.Product) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	List(ctx context.Context, f Filter, page, limit int) ([]domain.Product, int64, error)
}
