package models

// OrderRequest is the purchase form payload as submitted to POST /orders.
// Field names match the storefront wire format. Address2 is the only
// optional field.
type OrderRequest struct {
	FirstName  string  `json:"firstName"`
	SecondName string  `json:"secondName"`
	Phone      string  `json:"phone"`
	Email      string  `json:"email"`
	City       string  `json:"city"`
	Town       string  `json:"town"`
	Address1   string  `json:"address1"`
	Address2   string  `json:"address2,omitempty"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

// Total computes the order total. The form and the intake service both use
// this to keep the displayed total and the emailed total consistent.
func (r OrderRequest) Total() float64 {
	return r.Price * float64(r.Quantity)
}

// OrderResponse confirms an accepted order. The order ID is a unix-millis
// timestamp; it is never stored and only appears in the notification emails.
type OrderResponse struct {
	Success bool  `json:"success"`
	OrderID int64 `json:"orderId"`
}
