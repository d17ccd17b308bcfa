// Package order implements the order lifecycle: creation with stock
// reservation, ownership-checked reads, admin status updates and
// cancellation with stock restoration.
package order

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/domain"
	"stitchfield-backend/internal/inventory"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type ItemInput struct {
	Product  primitive.ObjectID `json:"product" binding:"required"`
	Quantity int                `json:"quantity" binding:"required,min=1"`
	Size     string             `json:"size"`
	Color    string             `json:"color"`
}

type CreateInput struct {
	Items           []ItemInput            `json:"items" binding:"required"`
	ShippingAddress domain.ShippingAddress `json:"shippingAddress" binding:"required"`
	PaymentMethod   domain.PaymentMethod   `json:"paymentMethod" binding:"required"`
}

func (in *CreateInput) validate() error {
	if len(in.Items) == 0 {
		return domain.ErrValidation("Order must contain at least one item")
	}
	for _, it := range in.Items {
		if it.Quantity < 1 {
			return domain.ErrValidation("Quantity must be at least 1")
		}
	}
	if !in.PaymentMethod.Valid() {
		return domain.ErrValidation("Invalid payment method: " + string(in.PaymentMethod))
	}
	a := &in.ShippingAddress
	for _, field := range []struct{ name, value string }{
		{"name", a.Name}, {"phone", a.Phone}, {"street", a.Street},
		{"city", a.City}, {"state", a.State}, {"zipCode", a.ZipCode},
	} {
		if strings.TrimSpace(field.value) == "" {
			return domain.ErrValidation("Shipping address " + field.name + " is required")
		}
	}
	if a.Country == "" {
		a.Country = domain.DefaultCountry
	}
	return nil
}

type Service struct {
	orders   OrderRepo
	products ProductReader
	inv      *inventory.Adjuster
	log      *zap.Logger
}

func NewService(orders OrderRepo, products ProductReader, inv *inventory.Adjuster, log *zap.Logger) *Service {
	return &Service{orders: orders, products: products, inv: inv, log: log}
}

// Create places an order. Every product is resolved first, then stock is
// reserved line by line; the unit price captured into each order item is
// the catalog price at this moment and is never recomputed. totalAmount
// excludes shipping.
func (s *Service) Create(ctx context.Context, userID primitive.ObjectID, in CreateInput) (*domain.Order, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	items := make([]domain.OrderItem, 0, len(in.Items))
	lines := make([]inventory.Line, 0, len(in.Items))
	var totalAmount float64
	for _, it := range in.Items {
		p, err := s.products.FindByID(ctx, it.Product)
		if err != nil {
			return nil, err
		}
		items = append(items, domain.OrderItem{
			ProductID: p.ID,
			Quantity:  it.Quantity,
			Size:      it.Size,
			Color:     it.Color,
			Price:     p.Price,
		})
		lines = append(lines, inventory.Line{
			ProductID:   p.ID,
			ProductName: p.Name,
			Size:        it.Size,
			Quantity:    it.Quantity,
		})
		totalAmount += p.Price * float64(it.Quantity)
	}

	if err := s.inv.Reserve(ctx, lines); err != nil {
		return nil, err
	}

	now := time.Now()
	o := &domain.Order{
		UserID:          userID,
		Items:           items,
		ShippingAddress: in.ShippingAddress,
		PaymentMethod:   in.PaymentMethod,
		PaymentStatus:   domain.PaymentPending,
		OrderStatus:     domain.OrderPending,
		TotalAmount:     totalAmount,
		ShippingCost:    domain.ShippingCost(totalAmount),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.orders.Insert(ctx, o); err != nil {
		s.inv.Release(ctx, lines)
		return nil, err
	}

	s.log.Info("order placed",
		zap.String("order", o.ID.Hex()),
		zap.String("user", userID.Hex()),
		zap.Float64("total", totalAmount),
	)
	return o, nil
}

// Get returns the order when the requester owns it or is an admin.
func (s *Service) Get(ctx context.Context, orderID, requesterID primitive.ObjectID, role domain.Role) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != requesterID && role != domain.RoleAdmin {
		return nil, domain.ErrAccessDenied()
	}
	return o, nil
}

// UpdateStatus sets the order status. Any target status is accepted;
// there is deliberately no transition-graph validation, only a warning
// when the change jumps the normal fulfilment sequence.
func (s *Service) UpdateStatus(ctx context.Context, orderID primitive.ObjectID, status domain.OrderStatus, trackingNumber string) (*domain.Order, error) {
	if !status.Valid() {
		return nil, domain.ErrValidation("Invalid order status: " + string(status))
	}
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if domain.SkipsSequence(o.OrderStatus, status) {
		s.log.Warn("order status change skips fulfilment sequence",
			zap.String("order", o.ID.Hex()),
			zap.String("from", string(o.OrderStatus)),
			zap.String("to", string(status)),
		)
	}
	o.OrderStatus = status
	if trackingNumber != "" {
		o.TrackingNumber = trackingNumber
	}
	if status == domain.OrderDelivered {
		now := time.Now()
		o.DeliveredAt = &now
	}
	o.UpdatedAt = time.Now()
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

// Cancel cancels the requester's own order and restores stock for every
// line item. Shipped and delivered orders cannot be cancelled.
func (s *Service) Cancel(ctx context.Context, orderID, requesterID primitive.ObjectID) (*domain.Order, error) {
	o, err := s.orders.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if o.UserID != requesterID {
		return nil, domain.ErrAccessDenied()
	}
	if !o.OrderStatus.Cancellable() {
		return nil, domain.ErrInvalidTransition("Order cannot be cancelled")
	}

	s.inv.Release(ctx, inventory.LinesFromOrder(o))
	o.OrderStatus = domain.OrderCancelled
	o.UpdatedAt = time.Now()
	if err := s.orders.Update(ctx, o); err != nil {
		return nil, err
	}

	s.log.Info("order cancelled",
		zap.String("order", o.ID.Hex()), zap.String("user", requesterID.Hex()))
	return o, nil
}

func (s *Service) ListMine(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]domain.Order, int64, error) {
	page, limit = clamp(page, limit)
	return s.orders.ListByUser(ctx, userID, page, limit)
}

// ListAll is the admin listing; status empty means all orders.
func (s *Service) ListAll(ctx context.Context, status domain.OrderStatus, page, limit int) ([]domain.Order, int64, error) {
	if status != "" && !status.Valid() {
		return nil, 0, domain.ErrValidation("Invalid order status: " + string(status))
	}
	page, limit = clamp(page, limit)
	return s.orders.List(ctx, status, page, limit)
}

func clamp(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
