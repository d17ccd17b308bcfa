// Package admin serves the dashboard: document counts, revenue over
// non-cancelled orders and a few recent records.
package admin

import (
	"context"

	"stitchfield-backend/internal/domain"
)

const (
	recentOrderCount = 5
	topProductCount  = 5
)

type StatsRepo interface {
	CountUsers(ctx context.Context) (int64, error)
	CountProducts(ctx context.Context) (int64, error)
	CountOrders(ctx context.Context) (int64, error)
	Revenue(ctx context.Context) (float64, error)
	RecentOrders(ctx context.Context, limit int) ([]domain.Order, error)
	NewestActiveProducts(ctx context.Context, limit int) ([]domain.Product, error)
}

type Stats struct {
	TotalUsers    int64            `json:"totalUsers"`
	TotalProducts int64            `json:"totalProducts"`
	TotalOrders   int64            `json:"totalOrders"`
	TotalRevenue  float64          `json:"totalRevenue"`
	RecentOrders  []domain.Order   `json:"recentOrders"`
	TopProducts   []domain.Product `json:"topProducts"`
}

type Service struct {
	repo StatsRepo
}

func NewService(repo StatsRepo) *Service {
	return &Service{repo: repo}
}

func (s *Service) Dashboard(ctx context.Context) (*Stats, error) {
	users, err := s.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	products, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := s.repo.CountOrders(ctx)
	if err != nil {
		return nil, err
	}
	revenue, err := s.repo.Revenue(ctx)
	if err != nil {
		return nil, err
	}
	recent, err := s.repo.RecentOrders(ctx, recentOrderCount)
	if err != nil {
		return nil, err
	}
	top, err := s.repo.NewestActiveProducts(ctx, topProductCount)
	if err != nil {
		return nil, err
	}
	return &Stats{
		TotalUsers:    users,
		TotalProducts: products,
		TotalOrders:   orders,
		TotalRevenue:  revenue,
		RecentOrders:  recent,
		TopProducts:   top,
	}, nil
}
