package http

import "time"

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// AddCartLine is the request body for adding a product to the cart.
type AddCartLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// ChangeOrderStatus is the request body for the privileged status change.
type ChangeOrderStatus struct {
	Status string `json:"status"`
}

// CheckoutResponse describes the order produced by a checkout.
type CheckoutResponse struct {
	OrderID    string `json:"orderId"`
	HumanID    string `json:"humanId"`
	Status     string `json:"status"`
	TotalPrice string `json:"totalPrice"`
}

// OrderLine is one line of an order with its snapshotted unit price.
type OrderLine struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice string `json:"unitPrice"`
}

// Order is the full representation of a single order.
type Order struct {
	OrderID    string      `json:"orderId"`
	HumanID    string      `json:"humanId"`
	UserID     string      `json:"userId"`
	Status     string      `json:"status"`
	TotalPrice string      `json:"totalPrice"`
	CreatedAt  time.Time   `json:"createdAt"`
	UpdatedAt  time.Time   `json:"updatedAt"`
	Lines      []OrderLine `json:"lines"`
}

// OrderSummary is one row of a user's order history.
type OrderSummary struct {
	HumanID    string    `json:"humanId"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"totalPrice"`
	ItemCount  int       `json:"itemCount"`
	CreatedAt  time.Time `json:"createdAt"`
}

// OrderStatistics summarizes one user's orders.
type OrderStatistics struct {
	TotalOrders       int            `json:"totalOrders"`
	OrdersByStatus    map[string]int `json:"ordersByStatus"`
	TotalSpent        string         `json:"totalSpent"`
	AverageOrderValue string         `json:"averageOrderValue"`
}

// AdminStatistics summarizes the whole store's orders.
type AdminStatistics struct {
	TotalOrders    int            `json:"totalOrders"`
	OrdersByStatus map[string]int `json:"ordersByStatus"`
	OrdersToday    int            `json:"ordersToday"`
	Revenue        string         `json:"revenue"`
}
