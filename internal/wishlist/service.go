// Package wishlist keeps one wishlist document per user.
package wishlist

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"stitchfield-backend/internal/domain"
)

type WishlistRepo interface {
	FindByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Wishlist, error)
	Save(ctx context.Context, w *domain.Wishlist) error
}

// ProductReader checks product existence before an add; the catalog
// repo satisfies it.
type ProductReader interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Product, error)
}

type Service struct {
	wishlists WishlistRepo
	products  ProductReader
}

func NewService(wishlists WishlistRepo, products ProductReader) *Service {
	return &Service{wishlists: wishlists, products: products}
}

// Get returns the user's wishlist, or an empty one if none exists yet.
func (s *Service) Get(ctx context.Context, userID primitive.ObjectID) (*domain.Wishlist, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if domain.CodeOf(err) == domain.CodeNotFound {
		return &domain.Wishlist{UserID: userID, Products: []domain.WishlistEntry{}}, nil
	}
	return w, err
}

func (s *Service) Add(ctx context.Context, userID, productID primitive.ObjectID) (*domain.Wishlist, error) {
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}
	w, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if w.Contains(productID) {
		return nil, domain.ErrAlreadyExists("Product already in wishlist")
	}
	w.Products = append(w.Products, domain.WishlistEntry{
		ProductID: productID,
		AddedAt:   time.Now(),
	})
	if err := s.wishlists.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Remove(ctx context.Context, userID, productID primitive.ObjectID) (*domain.Wishlist, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	kept := w.Products[:0]
	for _, e := range w.Products {
		if e.ProductID != productID {
			kept = append(kept, e)
		}
	}
	w.Products = kept
	if err := s.wishlists.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Clear(ctx context.Context, userID primitive.ObjectID) (*domain.Wishlist, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	w.Products = []domain.WishlistEntry{}
	if err := s.wishlists.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Contains(ctx context.Context, userID, productID primitive.ObjectID) (bool, error) {
	w, err := s.wishlists.FindByUser(ctx, userID)
	if domain.CodeOf(err) == domain.CodeNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return w.Contains(productID), nil
}
