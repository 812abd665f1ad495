// Package http provides the inbound HTTP adapter. It translates JSON
// requests into commands and queries, resolves the calling actor from
// identity headers, and maps the application's typed errors onto HTTP
// status codes.
package http

import "time"

// ErrorResponse is the JSON body returned for every failed request.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	PickupStreet  string    `json:"pickup_street"`
	PickupCity    string    `json:"pickup_city"`
	DropoffStreet string    `json:"dropoff_street"`
	DropoffCity   string    `json:"dropoff_city"`
	ContactName   string    `json:"contact_name"`
	ContactPhone  string    `json:"contact_phone"`
	Pieces        int       `json:"pieces"`
	WeightKg      float64   `json:"weight_kg"`
	WindowFrom    time.Time `json:"window_from"`
	WindowTo      time.Time `json:"window_to"`
}

// CreateOrderResponse confirms a created order with its assigned
// identifiers.
type CreateOrderResponse struct {
	ID         int64  `json:"id"`
	TrackingID string `json:"tracking_id"`
}

// AdvanceOrderRequest is the body of POST /api/v1/orders/:id/advance.
type AdvanceOrderRequest struct {
	Target string `json:"target"`
}

// AvailableOrder is one entry in the claimable pool listing.
type AvailableOrder struct {
	ID           int64     `json:"id"`
	TrackingID   string    `json:"tracking_id"`
	PickupStreet string    `json:"pickup_street"`
	PickupCity   string    `json:"pickup_city"`
	Pieces       int       `json:"pieces"`
	WeightKg     float64   `json:"weight_kg"`
	WindowFrom   time.Time `json:"window_from"`
	WindowTo     time.Time `json:"window_to"`
	CreatedAt    time.Time `json:"created_at"`
}

// ActiveOrder is one entry in a courier's job list.
type ActiveOrder struct {
	ID            int64     `json:"id"`
	TrackingID    string    `json:"tracking_id"`
	Status        string    `json:"status"`
	PickupStreet  string    `json:"pickup_street"`
	PickupCity    string    `json:"pickup_city"`
	DropoffStreet string    `json:"dropoff_street"`
	DropoffCity   string    `json:"dropoff_city"`
	ContactName   string    `json:"contact_name"`
	ContactPhone  string    `json:"contact_phone"`
	Pieces        int       `json:"pieces"`
	WeightKg      float64   `json:"weight_kg"`
	WindowFrom    time.Time `json:"window_from"`
	WindowTo      time.Time `json:"window_to"`
}

// CustomerOrder is one entry in a customer's order page.
type CustomerOrder struct {
	ID            int64     `json:"id"`
	TrackingID    string    `json:"tracking_id"`
	Status        string    `json:"status"`
	PickupStreet  string    `json:"pickup_street"`
	PickupCity    string    `json:"pickup_city"`
	DropoffStreet string    `json:"dropoff_street"`
	DropoffCity   string    `json:"dropoff_city"`
	Pieces        int       `json:"pieces"`
	WeightKg      float64   `json:"weight_kg"`
	WindowFrom    time.Time `json:"window_from"`
	WindowTo      time.Time `json:"window_to"`
	CreatedAt     time.Time `json:"created_at"`
}

// AdminOrder is one entry in the admin range listing.
type AdminOrder struct {
	ID         int64     `json:"id"`
	TrackingID string    `json:"tracking_id"`
	CustomerID int64     `json:"customer_id"`
	CourierID  *int64    `json:"courier_id,omitempty"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// HistoryEntry is one ledger entry in an order's recorded lifecycle.
// ChangedBy is zero for entries backfilled by the reconciliation sweep.
type HistoryEntry struct {
	Status     string    `json:"status"`
	ChangedBy  int64     `json:"changed_by"`
	RecordedAt time.Time `json:"recorded_at"`
}
