// Package inventory adjusts per-size stock counts when orders are
// placed or cancelled. Each line item is a separate write against its
// product document; there is no multi-document transaction.
package inventory

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"stitchfield-backend/internal/domain"
)

// ProductStore is the persistence surface the adjuster needs. The
// decrement must be conditional: it applies only when the size entry
// exists with stock >= qty, so stock can never go negative even under
// concurrent reservations.
type ProductStore interface {
	DecrementSizeStock(ctx context.Context, productID primitive.ObjectID, size string, qty int) (bool, error)
	IncrementSizeStock(ctx context.Context, productID primitive.ObjectID, size string, qty int) error
}

// Line is one (product, size, quantity) to reserve or release. The
// product name only feeds error messages.
type Line struct {
	ProductID   primitive.ObjectID
	ProductName string
	Size        string
	Quantity    int
}

type Adjuster struct {
	products ProductStore
	log      *zap.Logger
}

func NewAdjuster(products ProductStore, log *zap.Logger) *Adjuster {
	return &Adjuster{products: products, log: log}
}

// Reserve decrements stock for every line, one write per line. If any
// line cannot be reserved the lines already decremented are released
// before returning, so a failed reservation does not strand stock. The
// compensation is best effort: a release that itself fails is logged
// and the stock stays decremented.
func (a *Adjuster) Reserve(ctx context.Context, lines []Line) error {
	for i, ln := range lines {
		ok, err := a.products.DecrementSizeStock(ctx, ln.ProductID, ln.Size, ln.Quantity)
		if err != nil {
			a.Release(ctx, lines[:i])
			return err
		}
		if !ok {
			a.Release(ctx, lines[:i])
			return domain.ErrInsufficientStock(ln.ProductName, ln.Size)
		}
	}
	return nil
}

// Release increments stock for every line. It has no precondition: a
// missing size entry is a no-op, and a storage error on one line does
// not stop the rest.
func (a *Adjuster) Release(ctx context.Context, lines []Line) {
	for _, ln := range lines {
		if err := a.products.IncrementSizeStock(ctx, ln.ProductID, ln.Size, ln.Quantity); err != nil {
			a.log.Warn("stock release failed",
				zap.String("product", ln.ProductID.Hex()),
				zap.String("size", ln.Size),
				zap.Int("quantity", ln.Quantity),
				zap.Error(err),
			)
		}
	}
}

// LinesFromOrder maps an order's items to adjustment lines, used when
// cancelling restores stock.
func LinesFromOrder(o *domain.Order) []Line {
	lines := make([]Line, 0, len(o.Items))
	for _, it := range o.Items {
		lines = append(lines, Line{
			ProductID: it.ProductID,
			Size:      it.Size,
			Quantity:  it.Quantity,
		})
	}
	return lines
}
