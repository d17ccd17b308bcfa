package cart

// Request shapes matching the server's order-creation endpoint.

type OrderItemRequest struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
	Size     string `json:"size,omitempty"`
	Color    string `json:"color,omitempty"`
}

type ShippingAddress struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country,omitempty"`
}

type OrderRequest struct {
	Items           []OrderItemRequest `json:"items"`
	ShippingAddress ShippingAddress    `json:"shippingAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
}

// CheckoutRequest converts the cart's current lines into the order
// request body. The server re-resolves prices from the catalog, so only
// identity and quantity travel.
func (s *Store) CheckoutRequest(addr ShippingAddress, paymentMethod string) OrderRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]OrderItemRequest, 0, len(s.items))
	for _, it := range s.items {
		items = append(items, OrderItemRequest{
			Product:  it.Product.ID,
			Quantity: it.Quantity,
			Size:     it.Size,
			Color:    it.Color,
		})
	}
	return OrderRequest{
		Items:           items,
		ShippingAddress: addr,
		PaymentMethod:   paymentMethod,
	}
}
