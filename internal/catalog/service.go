package catalog

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/domain"
)

const (
	defaultLimit = 12
	maxLimit     = 100
)

type Service struct {
	repo ProductRepo
	log  *zap.Logger
}

func NewService(repo ProductRepo, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

func (s *Service) List(ctx context.Context, f Filter, page, limit int) ([]domain.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.repo.List(ctx, f, page, limit)
}

func (s *Service) Get(ctx context.Context, id primitive.ObjectID) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

// Create validates and stores a new product. Admin-only at the API layer.
func (s *Service) Create(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if err := s.repo.Insert(ctx, p); err != nil {
		return nil, err
	}
	s.log.Info("product created",
		zap.String("id", p.ID.Hex()), zap.String("name", p.Name))
	return p, nil
}

func (s *Service) Update(ctx context.Context, p *domain.Product) (*domain.Product, error) {
	if err := validateProduct(p); err != nil {
		return nil, err
	}
	if _, err := s.repo.FindByID(ctx, p.ID); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Deactivate soft-deletes a product; orders referencing it keep their
// price snapshots so nothing breaks downstream.
func (s *Service) Deactivate(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	return s.repo.SetActive(ctx, id, false)
}

func validateProduct(p *domain.Product) error {
	if strings.TrimSpace(p.Name) == "" {
		return domain.ErrValidation("Product name is required")
	}
	if strings.TrimSpace(p.Description) == "" {
		return domain.ErrValidation("Product description is required")
	}
	if p.Price < 0 {
		return domain.ErrValidation("Price cannot be negative")
	}
	if p.OriginalPrice < 0 {
		return domain.ErrValidation("Original price cannot be negative")
	}
	if !p.Category.Valid() {
		return domain.ErrValidation("Invalid product category: " + string(p.Category))
	}
	for _, sz := range p.Sizes {
		if sz.Size == "" {
			return domain.ErrValidation("Size label is required")
		}
		if sz.Stock < 0 {
			return domain.ErrValidation("Stock cannot be negative")
		}
	}
	return nil
}
