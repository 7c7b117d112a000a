package store

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/trendiesmaroc/admin-backend/pkg/enums"
)

// User is a marketplace account. Accounts are created at seed time or by
// the simulated registration flow and are never deleted.
type User struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Email      string            `json:"email"`
	Role       enums.UserRole    `json:"role"`
	Status     enums.UserStatus  `json:"status"`
	BadgeLevel *enums.BadgeLevel `json:"badgeLevel,omitempty"`
	JoinedAt   time.Time         `json:"joinedAt"`
}

// Product is a seller listing.
type Product struct {
	ID        string              `json:"id"`
	Name      string              `json:"name"`
	SellerID  string              `json:"sellerId"`
	Category  string              `json:"category"`
	Status    enums.ProductStatus `json:"status"`
	Price     decimal.Decimal     `json:"price"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
}

// Order references a buyer and a seller by id. Payout bookkeeping is
// tracked independently of the order status.
type Order struct {
	ID           string             `json:"id"`
	OrderNumber  string             `json:"orderNumber"`
	ProductID    string             `json:"productId"`
	Item         string             `json:"item"`
	BuyerID      string             `json:"buyerId"`
	SellerID     string             `json:"sellerId"`
	Status       enums.OrderStatus  `json:"status"`
	PayoutStatus enums.PayoutStatus `json:"payoutStatus"`
	Amount       decimal.Decimal    `json:"amount"`
	Currency     string             `json:"currency"`
	CreatedAt    time.Time          `json:"createdAt"`
}

// ReturnRequest is a buyer-initiated return against an order.
type ReturnRequest struct {
	ID        string             `json:"id"`
	OrderID   string             `json:"orderId"`
	Reason    string             `json:"reason"`
	Status    enums.ReturnStatus `json:"status"`
	CreatedAt time.Time          `json:"createdAt"`
}

// Notification is an append-only inbox record. Only IsRead ever changes
// after creation, and only from false to true.
type Notification struct {
	ID        string                 `json:"id"`
	Type      enums.NotificationType `json:"type"`
	Title     string                 `json:"title"`
	Message   string                 `json:"message"`
	UserID    string                 `json:"userId,omitempty"`
	IsRead    bool                   `json:"isRead"`
	CreatedAt time.Time              `json:"createdAt"`
	Metadata  map[string]any         `json:"metadata,omitempty"`
}

// EmailTemplate is a static catalog entry. Subject and HTMLContent carry
// {{var}} placeholders substituted at send time.
type EmailTemplate struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Subject     string   `json:"subject"`
	HTMLContent string   `json:"htmlContent"`
	Variables   []string `json:"variables"`
}
