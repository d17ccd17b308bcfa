package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/domain"
)

type fakeRepo struct {
	products  map[primitive.ObjectID]*domain.Product
	lastPage  int
	lastLimit int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: map[primitive.ObjectID]*domain.Product{}}
}

func (f *fakeRepo) Insert(_ context.Context, p *domain.Product) error {
	p.ID = primitive.NewObjectID()
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id primitive.ObjectID) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound(id.Hex())
	}
	return p, nil
}

func (f *fakeRepo) Update(_ context.Context, p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) SetActive(_ context.Context, id primitive.ObjectID, active bool) error {
	p, ok := f.products[id]
	if !ok {
		return domain.ErrProductNotFound(id.Hex())
	}
	p.IsActive = active
	return nil
}

func (f *fakeRepo) List(_ context.Context, _ Filter, page, limit int) ([]domain.Product, int64, error) {
	f.lastPage, f.lastLimit = page, limit
	return nil, 0, nil
}

func validProduct() *domain.Product {
	return &domain.Product{
		Name:        "Classic Denim Jacket",
		Description: "Classic denim jacket for layering.",
		Price:       1299,
		Category:    domain.CategoryMen,
		Sizes:       []domain.SizeStock{{Size: "M", Stock: 20}},
		IsActive:    true,
	}
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), zap.NewNop())
	ctx := context.Background()

	cases := []struct {
		name   string
		mutate func(*domain.Product)
	}{
		{"empty name", func(p *domain.Product) { p.Name = "  " }},
		{"empty description", func(p *domain.Product) { p.Description = "" }},
		{"negative price", func(p *domain.Product) { p.Price = -1 }},
		{"bad category", func(p *domain.Product) { p.Category = "gadgets" }},
		{"negative stock", func(p *domain.Product) { p.Sizes[0].Stock = -1 }},
		{"blank size label", func(p *domain.Product) { p.Sizes[0].Size = "" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProduct()
			tc.mutate(p)
			_, err := svc.Create(ctx, p)
			require.Error(t, err)
			assert.Equal(t, domain.CodeValidation, domain.CodeOf(err))
		})
	}
}

func TestCreateProductAssignsID(t *testing.T) {
	svc := NewService(newFakeRepo(), zap.NewNop())
	p, err := svc.Create(context.Background(), validProduct())
	require.NoError(t, err)
	assert.False(t, p.ID.IsZero())
}

func TestDeactivateUnknownProduct(t *testing.T) {
	svc := NewService(newFakeRepo(), zap.NewNop())
	err := svc.Deactivate(context.Background(), primitive.NewObjectID())
	require.Error(t, err)
	assert.Equal(t, domain.CodeNotFound, domain.CodeOf(err))
}

func TestListClampsPagination(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, zap.NewNop())
	ctx := context.Background()

	_, _, err := svc.List(ctx, Filter{}, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.lastPage)
	assert.Equal(t, defaultLimit, repo.lastLimit)

	_, _, err = svc.List(ctx, Filter{}, 3, 5000)
	require.NoError(t, err)
	assert.Equal(t, 3, repo.lastPage)
	assert.Equal(t, maxLimit, repo.lastLimit)
}
