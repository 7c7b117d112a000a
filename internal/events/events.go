// Package events routes the closed set of marketplace domain events to
// their side effects: store mutations, notification records, transactional
// email and live push to subscribers.
package events

import (
	"github.com/shopspring/decimal"
)

// Name identifies a domain event. The vocabulary is closed; anything else
// is ignored by the dispatcher.
type Name string

const (
	EventNewListingCreated      Name = "new_listing_created"
	EventSellerAccountApproved  Name = "seller_account_approved"
	EventProductMarkedLive      Name = "product_marked_live"
	EventOrderPlaced            Name = "order_placed"
	EventReturnRequestInitiated Name = "return_request_initiated"
	EventOrderConfirmed         Name = "order_confirmed"
	EventReturnAccepted         Name = "return_accepted"
	EventStatusUpdated          Name = "status_updated"
)

var validNames = []Name{
	EventNewListingCreated,
	EventSellerAccountApproved,
	EventProductMarkedLive,
	EventOrderPlaced,
	EventReturnRequestInitiated,
	EventOrderConfirmed,
	EventReturnAccepted,
	EventStatusUpdated,
}

// IsValid checks whether the name belongs to the closed vocabulary.
func (n Name) IsValid() bool {
	for _, candidate := range validNames {
		if candidate == n {
			return true
		}
	}
	return false
}

// Event is the tagged union of domain event payloads. Each variant carries
// its own strongly typed fields, replacing the stringly keyed maps the
// HTTP boundary still accepts.
type Event interface {
	EventName() Name
}

// NewListingCreated fires when a seller creates a listing.
type NewListingCreated struct {
	ProductID string
	SellerID  string
}

func (NewListingCreated) EventName() Name { return EventNewListingCreated }

// SellerAccountApproved fires when an admin approves a pending seller.
type SellerAccountApproved struct {
	UserID   string
	UserName string
	UserRole string
}

func (SellerAccountApproved) EventName() Name { return EventSellerAccountApproved }

// ProductMarkedLive fires when a listing passes review.
type ProductMarkedLive struct {
	ProductID string
	SellerID  string
}

func (ProductMarkedLive) EventName() Name { return EventProductMarkedLive }

// OrderPlaced fires when a buyer places an order.
type OrderPlaced struct {
	OrderID   string
	ProductID string
	BuyerID   string
	SellerID  string
}

func (OrderPlaced) EventName() Name { return EventOrderPlaced }

// ReturnRequestInitiated fires when a buyer opens a return.
type ReturnRequestInitiated struct {
	ReturnID string
	OrderID  string
	BuyerID  string
	Reason   string
}

func (ReturnRequestInitiated) EventName() Name { return EventReturnRequestInitiated }

// OrderConfirmed fires when a seller confirms an order; carries the email
// payload fields directly because the confirmation flow originates outside
// the store.
type OrderConfirmed struct {
	OrderID     string
	BuyerEmail  string
	ProductName string
	SellerName  string
	Amount      decimal.Decimal
}

func (OrderConfirmed) EventName() Name { return EventOrderConfirmed }

// ReturnAccepted fires when a seller accepts a return request.
type ReturnAccepted struct {
	ReturnID    string
	OrderID     string
	BuyerEmail  string
	BuyerName   string
	ProductName string
}

func (ReturnAccepted) EventName() Name { return EventReturnAccepted }

// StatusUpdated is the catch-all lifecycle event. EventType
// "user_registered" carries the user fields; any other value carries a
// generic entity status transition.
type StatusUpdated struct {
	EventType string
	UserID    string
	UserName  string
	UserEmail string
	UserRole  string

	EntityType string
	EntityID   string
	OldStatus  string
	NewStatus  string
}

func (StatusUpdated) EventName() Name { return EventStatusUpdated }

// ParseEvent decodes an untyped payload into its event variant. Returns
// false for names outside the vocabulary.
func ParseEvent(name string, data map[string]any) (Event, bool) {
	switch Name(name) {
	case EventNewListingCreated:
		return NewListingCreated{
			ProductID: stringField(data, "productId"),
			SellerID:  stringField(data, "sellerId"),
		}, true
	case EventSellerAccountApproved:
		return SellerAccountApproved{
			UserID:   stringField(data, "userId"),
			UserName: stringField(data, "userName"),
			UserRole: stringField(data, "userType"),
		}, true
	case EventProductMarkedLive:
		return ProductMarkedLive{
			ProductID: stringField(data, "productId"),
			SellerID:  stringField(data, "sellerId"),
		}, true
	case EventOrderPlaced:
		return OrderPlaced{
			OrderID:   stringField(data, "orderId"),
			ProductID: stringField(data, "productId"),
			BuyerID:   stringField(data, "buyerId"),
			SellerID:  stringField(data, "sellerId"),
		}, true
	case EventReturnRequestInitiated:
		return ReturnRequestInitiated{
			ReturnID: stringField(data, "returnId"),
			OrderID:  stringField(data, "orderId"),
			BuyerID:  stringField(data, "buyerId"),
			Reason:   stringField(data, "reason"),
		}, true
	case EventOrderConfirmed:
		return OrderConfirmed{
			OrderID:     stringField(data, "orderId"),
			BuyerEmail:  stringField(data, "buyerEmail"),
			ProductName: stringField(data, "productName"),
			SellerName:  stringField(data, "sellerName"),
			Amount:      decimalField(data, "amount"),
		}, true
	case EventReturnAccepted:
		return ReturnAccepted{
			ReturnID:    stringField(data, "returnId"),
			OrderID:     stringField(data, "orderId"),
			BuyerEmail:  stringField(data, "buyerEmail"),
			BuyerName:   stringField(data, "buyerName"),
			ProductName: stringField(data, "productName"),
		}, true
	case EventStatusUpdated:
		return StatusUpdated{
			EventType:  stringField(data, "eventType"),
			UserID:     stringField(data, "userId"),
			UserName:   stringField(data, "userName"),
			UserEmail:  stringField(data, "userEmail"),
			UserRole:   stringField(data, "userType"),
			EntityType: stringField(data, "type"),
			EntityID:   stringField(data, "id"),
			OldStatus:  stringField(data, "oldStatus"),
			NewStatus:  stringField(data, "newStatus"),
		}, true
	}
	return nil, false
}

func stringField(data map[string]any, key string) string {
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}

func decimalField(data map[string]any, key string) decimal.Decimal {
	switch value := data[key].(type) {
	case float64:
		return decimal.NewFromFloat(value)
	case int:
		return decimal.NewFromInt(int64(value))
	case int64:
		return decimal.NewFromInt(value)
	case string:
		if parsed, err := decimal.NewFromString(value); err == nil {
			return parsed
		}
	case decimal.Decimal:
		return value
	}
	return decimal.Zero
}
