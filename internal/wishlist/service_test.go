package wishlist

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"stitchfield-backend/internal/domain"
)

type fakeWishlists struct {
	byUser map[primitive.ObjectID]*domain.Wishlist
}

func (f *fakeWishlists) FindByUser(_ context.Context, userID primitive.ObjectID) (*domain.Wishlist, error) {
	w, ok := f.byUser[userID]
	if !ok {
		return nil, domain.ErrNotFound("Wishlist")
	}
	return w, nil
}

func (f *fakeWishlists) Save(_ context.Context, w *domain.Wishlist) error {
	f.byUser[w.UserID] = w
	return nil
}

type fakeProducts struct {
	known map[primitive.ObjectID]bool
}

func (f *fakeProducts) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	if !f.known[id] {
		return nil, domain.ErrProductNotFound(id.Hex())
	}
	return &domain.Product{ID: id}, nil
}

func setup(productIDs ...primitive.ObjectID) *Service {
	known := map[primitive.ObjectID]bool{}
	for _, id := range productIDs {
		known[id] = true
	}
	return NewService(
		&fakeWishlists{byUser: map[primitive.ObjectID]*domain.Wishlist{}},
		&fakeProducts{known: known},
	)
}

func TestGetReturnsEmptyWishlist(t *testing.T) {
	svc := setup()
	w, err := svc.Get(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Empty(t, w.Products)
}

func TestAddAndContains(t *testing.T) {
	productID := primitive.NewObjectID()
	svc := setup(productID)
	userID := primitive.NewObjectID()
	ctx := context.Background()

	w, err := svc.Add(ctx, userID, productID)
	require.NoError(t, err)
	require.Len(t, w.Products, 1)
	assert.Equal(t, productID, w.Products[0].ProductID)

	in, err := svc.Contains(ctx, userID, productID)
	require.NoError(t, err)
	assert.True(t, in)
}

func TestAddDuplicate(t *testing.T) {
	productID := primitive.NewObjectID()
	svc := setup(productID)
	userID := primitive.NewObjectID()
	ctx := context.Background()

	_, err := svc.Add(ctx, userID, productID)
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, productID)
	assert.Equal(t, domain.CodeAlreadyExists, domain.CodeOf(err))
}

func TestAddUnknownProduct(t *testing.T) {
	svc := setup()
	_, err := svc.Add(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestRemove(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	svc := setup(a, b)
	userID := primitive.NewObjectID()
	ctx := context.Background()

	_, err := svc.Add(ctx, userID, a)
	require.NoError(t, err)
	_, err = svc.Add(ctx, userID, b)
	require.NoError(t, err)

	w, err := svc.Remove(ctx, userID, a)
	require.NoError(t, err)
	require.Len(t, w.Products, 1)
	assert.Equal(t, b, w.Products[0].ProductID)
}

func TestRemoveWithoutWishlist(t *testing.T) {
	svc := setup()
	_, err := svc.Remove(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestClear(t *testing.T) {
	productID := primitive.NewObjectID()
	svc := setup(productID)
	userID := primitive.NewObjectID()
	ctx := context.Background()

	_, err := svc.Add(ctx, userID, productID)
	require.NoError(t, err)

	w, err := svc.Clear(ctx, userID)
	require.NoError(t, err)
	assert.Empty(t, w.Products)
}
