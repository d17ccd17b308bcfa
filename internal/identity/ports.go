package identity

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stitchfield-backend/internal/domain"
)

// Filter narrows the admin user listing.
type Filter struct {
	Search   string
	IsActive *bool
}

type UserRepo interface {
	Insert(ctx context.Context, u *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	Update(ctx context.Context, u *domain.User) error
	SetActive(ctx context.Context, id primitive.ObjectID, active bool) error
	List(ctx context.Context, f Filter, page, limit int) ([]domain.User, int64, error)
}
