package model

import "time"

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusRegistered OrderStatus = "Registered"
	OrderStatusFinished   OrderStatus = "Finished"
	OrderStatusCanceled   OrderStatus = "Canceled"
)

// OrderStatuses returns every status an order can take, initial state first.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderStatusRegistered, OrderStatusFinished, OrderStatusCanceled}
}

// Terminal reports whether no transition is defined out of the status.
func (s OrderStatus) Terminal() bool {
	return s == OrderStatusFinished || s == OrderStatusCanceled
}

// Order represents a customer order row.
type Order struct {
	ID           int64       `json:"id" db:"id"`
	CustomerID   int64       `json:"customer_id" db:"customer_id"`
	OrderDate    time.Time   `json:"order_date" db:"order_date"`
	DeliveryDate time.Time   `json:"delivery_date" db:"delivery_date"`
	Status       OrderStatus `json:"status" db:"status"`
	Discount     float64     `json:"discount" db:"discount"`
	Shipping     float64     `json:"shipping" db:"shipping"`
	Observation  *string     `json:"observation,omitempty" db:"observation"`
}

// OrderItem is one line of an order. UnitPrice is always resolved from the
// catalogue at submission time, never taken from the client.
type OrderItem struct {
	ID        int64    `json:"id,omitempty" db:"id"`
	OrderID   int64    `json:"order_id,omitempty" db:"order_id"`
	ProductID int64    `json:"product_id" db:"product_id"`
	PackingID *int64   `json:"packing_id" db:"packing_id"`
	Amount    float64  `json:"amount" db:"amount"`
	UnitPrice float64  `json:"unit_price" db:"unit_price"`
	Product   *Product `json:"product,omitempty" db:"-"`
	Packing   *Packing `json:"packing,omitempty" db:"-"`
}

// FullOrder is the read/write shape of an order: the row plus its items and,
// on read paths, the customer record.
type FullOrder struct {
	Order
	Items    []OrderItem `json:"items"`
	Customer *Customer   `json:"customer,omitempty"`
}

// OrderItemPayload is a client-supplied line item. Pointer fields distinguish
// an absent value from an explicit zero.
type OrderItemPayload struct {
	ProductID *int64   `json:"product_id"`
	PackingID *int64   `json:"packing_id"`
	Amount    *float64 `json:"amount"`
	UnitPrice *float64 `json:"unit_price"`
}

// OrderPayload is the client-supplied order body. Only the fields declared
// here survive decoding; anything else the client sends is dropped.
type OrderPayload struct {
	CustomerID   *int64             `json:"customer_id"`
	OrderDate    *time.Time         `json:"order_date"`
	DeliveryDate *time.Time         `json:"delivery_date"`
	Status       *OrderStatus       `json:"status"`
	Discount     *float64           `json:"discount"`
	Shipping     *float64           `json:"shipping"`
	Observation  *string            `json:"observation"`
	Items        []OrderItemPayload `json:"items"`
}
