package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trendiesmaroc/admin-backend/pkg/enums"
)

// seed loads the demo catalog. Called once from New with the lock not yet
// needed (no concurrent access before the constructor returns).
func (s *Store) seed() {
	pro := enums.BadgeLevelPro
	elite := enums.BadgeLevelElite
	date := func(value string) time.Time {
		t, _ := time.Parse(time.RFC3339, value)
		return t
	}

	s.users = []User{
		{ID: "1", Name: "John Seller", Email: "hello@benjamin.dev", Role: enums.UserRoleSeller, Status: enums.UserStatusApproved, BadgeLevel: &pro, JoinedAt: date("2024-10-02T09:00:00Z")},
		{ID: "2", Name: "Jane Buyer", Email: "hello@benjamin.dev", Role: enums.UserRoleBuyer, Status: enums.UserStatusActive, JoinedAt: date("2024-10-15T14:30:00Z")},
		{ID: "3", Name: "Mike Admin", Email: "hello@benjamin.dev", Role: enums.UserRoleAdmin, Status: enums.UserStatusActive, JoinedAt: date("2024-09-01T08:00:00Z")},
		{ID: "4", Name: "Sarah Elite", Email: "hello@benjamin.dev", Role: enums.UserRoleSeller, Status: enums.UserStatusApproved, BadgeLevel: &elite, JoinedAt: date("2024-11-05T11:20:00Z")},
		{ID: "5", Name: "Tom Pending", Email: "hello@benjamin.dev", Role: enums.UserRoleSeller, Status: enums.UserStatusPending, JoinedAt: date("2024-12-18T16:45:00Z")},
	}

	s.products = []Product{
		{ID: "prod-1", Name: "Vintage Leather Jacket", SellerID: "1", Category: "Clothing", Status: enums.ProductStatusLive, Price: decimal.RequireFromString("299.99"), CreatedAt: date("2024-12-01T00:00:00Z"), UpdatedAt: date("2024-12-01T00:00:00Z")},
		{ID: "prod-2", Name: "Designer Sneakers", SellerID: "4", Category: "Footwear", Status: enums.ProductStatusPending, Price: decimal.RequireFromString("199.99"), CreatedAt: date("2024-12-15T00:00:00Z"), UpdatedAt: date("2024-12-15T00:00:00Z")},
		{ID: "prod-3", Name: "Silk Scarf", SellerID: "1", Category: "Accessories", Status: enums.ProductStatusSold, Price: decimal.RequireFromString("89.99"), CreatedAt: date("2024-11-20T00:00:00Z"), UpdatedAt: date("2024-12-10T00:00:00Z")},
	}

	s.orders = []Order{
		{ID: "order-2", OrderNumber: "10042", ProductID: "prod-1", Item: "Vintage Leather Jacket", BuyerID: "2", SellerID: "1", Status: enums.OrderStatusPending, PayoutStatus: enums.PayoutStatusPending, Amount: decimal.RequireFromString("299.99"), Currency: "MAD", CreatedAt: date("2024-12-20T00:00:00Z")},
		{ID: "order-1", OrderNumber: "10017", ProductID: "prod-3", Item: "Silk Scarf", BuyerID: "2", SellerID: "1", Status: enums.OrderStatusDelivered, PayoutStatus: enums.PayoutStatusPaid, Amount: decimal.RequireFromString("89.99"), Currency: "MAD", CreatedAt: date("2024-12-10T00:00:00Z")},
	}

	s.returns = []ReturnRequest{
		{ID: "return-1", OrderID: "order-1", Reason: "Item not as described", Status: enums.ReturnStatusPending, CreatedAt: date("2024-12-21T00:00:00Z")},
	}

	s.templates = []EmailTemplate{
		{
			ID:      "seller-approval",
			Name:    "Seller Account Approved",
			Subject: "Welcome to Trendies! Your seller account has been approved",
			HTMLContent: `<h1>Congratulations, {{sellerName}}!</h1>
<p>Your seller account has been approved. You can now start listing your items.</p>
<p>Your current badge level: {{badgeLevel}}</p>
<a href="{{dashboardUrl}}">Go to Dashboard</a>`,
			Variables: []string{"sellerName", "badgeLevel", "dashboardUrl"},
		},
		{
			ID:      "order-confirmation",
			Name:    "Order Confirmation",
			Subject: "Order Confirmed - {{productName}}",
			HTMLContent: `<h1>Order Confirmed!</h1>
<p>Hi {{buyerName}},</p>
<p>Your order for <strong>{{productName}}</strong> has been confirmed.</p>
<p>Order ID: {{orderId}}</p>
<p>Amount: ${{amount}}</p>
<p>Seller: {{sellerName}}</p>`,
			Variables: []string{"buyerName", "productName", "orderId", "amount", "sellerName"},
		},
		{
			ID:      "return-accepted",
			Name:    "Return Request Accepted",
			Subject: "Return Request Approved - {{productName}}",
			HTMLContent: `<h1>Return Request Approved</h1>
<p>Hi {{buyerName}},</p>
<p>Your return request for <strong>{{productName}}</strong> has been approved.</p>
<p>Return ID: {{returnId}}</p>
<p>Please ship the item back to the seller within 7 days.</p>`,
			Variables: []string{"buyerName", "productName", "returnId"},
		},
	}

	s.notifs = []Notification{
		{ID: "notif-1", Type: enums.NotificationTypeSuccess, Title: "New Order Received", Message: "Jane Buyer placed an order for Vintage Leather Jacket", UserID: "1", IsRead: false, CreatedAt: date("2024-12-20T10:30:00Z"), Metadata: map[string]any{"orderId": "order-2", "productId": "prod-1"}},
		{ID: "notif-2", Type: enums.NotificationTypeInfo, Title: "Product Status Updated", Message: `Your product "Designer Sneakers" is now live`, UserID: "4", IsRead: false, CreatedAt: date("2024-12-19T15:45:00Z"), Metadata: map[string]any{"productId": "prod-2"}},
		{ID: "notif-3", Type: enums.NotificationTypeWarning, Title: "Return Request", Message: "A return request has been initiated for Silk Scarf", UserID: "1", IsRead: true, CreatedAt: date("2024-12-21T09:15:00Z"), Metadata: map[string]any{"returnId": "return-1", "orderId": "order-1"}},
	}
}
