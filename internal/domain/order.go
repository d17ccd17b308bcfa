package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PaymentMethod string

const (
	PaymentCard       PaymentMethod = "card"
	PaymentUPI        PaymentMethod = "upi"
	PaymentNetBanking PaymentMethod = "netbanking"
	PaymentCOD        PaymentMethod = "cod"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentUPI, PaymentNetBanking, PaymentCOD:
		return true
	}
	return false
}

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderConfirmed  OrderStatus = "confirmed"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

// Cancellable reports whether an order in this status may still be
// cancelled. Shipped and delivered orders cannot; neither can an order
// that is already cancelled.
func (s OrderStatus) Cancellable() bool {
	switch s {
	case OrderPending, OrderConfirmed, OrderProcessing:
		return true
	}
	return false
}

func (s OrderStatus) Terminal() bool {
	return s == OrderDelivered || s == OrderCancelled
}

var statusRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderConfirmed:  1,
	OrderProcessing: 2,
	OrderShipped:    3,
	OrderDelivered:  4,
}

// SkipsSequence reports whether moving from one status to another jumps
// over or rewinds the normal fulfilment sequence. Cancellation is not
// part of the sequence and never counts as a skip.
func SkipsSequence(from, to OrderStatus) bool {
	a, okA := statusRank[from]
	b, okB := statusRank[to]
	if !okA || !okB || from == to {
		return false
	}
	return b-a != 1
}

// OrderItem snapshots a line item at order time. Price is the catalog
// price when the order was created and is never recomputed.
type OrderItem struct {
	ProductID primitive.ObjectID `bson:"product" json:"product"`
	Quantity  int                `bson:"quantity" json:"quantity"`
	Size      string             `bson:"size,omitempty" json:"size,omitempty"`
	Color     string             `bson:"color,omitempty" json:"color,omitempty"`
	Price     float64            `bson:"price" json:"price"`
}

type ShippingAddress struct {
	Name    string `bson:"name" json:"name" binding:"required"`
	Phone   string `bson:"phone" json:"phone" binding:"required"`
	Street  string `bson:"street" json:"street" binding:"required"`
	City    string `bson:"city" json:"city" binding:"required"`
	State   string `bson:"state" json:"state" binding:"required"`
	ZipCode string `bson:"zipCode" json:"zipCode" binding:"required"`
	Country string `bson:"country" json:"country"`
}

const DefaultCountry = "India"

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user" json:"user"`
	Items           []OrderItem        `bson:"items" json:"items"`
	ShippingAddress ShippingAddress    `bson:"shippingAddress" json:"shippingAddress"`
	PaymentMethod   PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	PaymentStatus   PaymentStatus      `bson:"paymentStatus" json:"paymentStatus"`
	OrderStatus     OrderStatus        `bson:"orderStatus" json:"orderStatus"`
	TotalAmount     float64            `bson:"totalAmount" json:"totalAmount"`
	ShippingCost    float64            `bson:"shippingCost" json:"shippingCost"`
	TrackingNumber  string             `bson:"trackingNumber,omitempty" json:"trackingNumber,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt" json:"updatedAt"`
	DeliveredAt     *time.Time         `bson:"deliveredAt,omitempty" json:"deliveredAt,omitempty"`
}

// Free shipping strictly above the threshold, flat fee otherwise. The
// cart display uses the same numbers; keep them in sync.
const (
	FreeShippingThreshold = 999
	FlatShippingFee       = 99
)

func ShippingCost(totalAmount float64) float64 {
	if totalAmount > FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}
