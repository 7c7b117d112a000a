package simulator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/trendiesmaroc/admin-backend/internal/events"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/enums"
)

// generateRegistration fabricates a fresh pending user and announces the
// registration through the dispatcher.
func (s *Simulator) generateRegistration(ctx context.Context) {
	role := enums.UserRoleBuyer
	if s.intn(2) == 0 {
		role = enums.UserRoleSeller
	}
	suffix := s.intn(9000) + 1000
	user := store.User{
		ID:       "user-" + uuid.NewString(),
		Name:     fmt.Sprintf("new_user_%d", suffix),
		Email:    fmt.Sprintf("user%d@example.com", suffix),
		Role:     role,
		Status:   enums.UserStatusPending,
		JoinedAt: time.Now(),
	}
	s.store.AddUser(user)

	s.disp.DispatchEvent(ctx, events.StatusUpdated{
		EventType: "user_registered",
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRole:  string(user.Role),
	})
}

// generateOrder places a synthetic order between a random buyer and a
// random listed product, then confirms it so the buyer gets a
// confirmation email.
func (s *Simulator) generateOrder(ctx context.Context) {
	buyer, ok := s.store.RandomUser()
	if !ok {
		return
	}
	product, ok := s.store.RandomProduct()
	if !ok {
		return
	}

	status := enums.OrderStatusShipped
	if s.intn(10) < 3 {
		status = enums.OrderStatusOnHold
	}
	order := store.Order{
		ID:           "order-" + uuid.NewString(),
		OrderNumber:  fmt.Sprintf("ORD-%d", s.intn(90000)+10000),
		ProductID:    product.ID,
		Item:         product.Name,
		BuyerID:      buyer.ID,
		SellerID:     product.SellerID,
		Status:       status,
		PayoutStatus: enums.PayoutStatusProcessing,
		Amount:       decimal.NewFromInt(int64(s.intn(10000) + 1000)),
		Currency:     "MAD",
		CreatedAt:    time.Now(),
	}
	s.store.AddOrder(order)

	s.disp.DispatchEvent(ctx, events.OrderPlaced{
		OrderID:   order.ID,
		ProductID: product.ID,
		BuyerID:   buyer.ID,
		SellerID:  product.SellerID,
	})

	sellerName := "Trendies Seller"
	if seller, ok := s.store.UserByID(product.SellerID); ok {
		sellerName = seller.Name
	}
	s.disp.DispatchEvent(ctx, events.OrderConfirmed{
		OrderID:     order.ID,
		BuyerEmail:  buyer.Email,
		ProductName: product.Name,
		SellerName:  sellerName,
		Amount:      order.Amount,
	})
}

// generateApproval promotes a random pending user; with nobody waiting it
// posts a maintenance note so the inbox still moves.
func (s *Simulator) generateApproval(ctx context.Context) {
	pending := s.store.UsersWithStatus(enums.UserStatusPending)
	if len(pending) == 0 {
		s.fallbackNotification(ctx, "System Update", "Platform maintenance completed successfully")
		return
	}

	user := pending[s.intn(len(pending))]
	s.disp.DispatchEvent(ctx, events.SellerAccountApproved{
		UserID:   user.ID,
		UserName: user.Name,
		UserRole: string(user.Role),
	})
}

// generateReturn opens a return against a random shipped order and
// immediately accepts it, mirroring the happy-path return flow.
func (s *Simulator) generateReturn(ctx context.Context) {
	shipped := s.store.OrdersWithStatus(enums.OrderStatusShipped)
	if len(shipped) == 0 {
		s.fallbackNotification(ctx, "System Check", "All orders are processing normally")
		return
	}

	order := shipped[s.intn(len(shipped))]
	returnID := "return-" + uuid.NewString()
	reasons := []string{
		"Item not as described",
		"Wrong size",
		"Changed my mind",
		"Arrived damaged",
	}

	s.disp.DispatchEvent(ctx, events.ReturnRequestInitiated{
		ReturnID: returnID,
		OrderID:  order.ID,
		BuyerID:  order.BuyerID,
		Reason:   reasons[s.intn(len(reasons))],
	})

	buyer, ok := s.store.UserByID(order.BuyerID)
	if !ok {
		return
	}
	s.disp.DispatchEvent(ctx, events.ReturnAccepted{
		ReturnID:    returnID,
		OrderID:     order.ID,
		BuyerEmail:  buyer.Email,
		BuyerName:   buyer.Name,
		ProductName: order.Item,
	})
}

func (s *Simulator) fallbackNotification(ctx context.Context, title, message string) {
	_, err := s.notifs.Add(ctx, store.NewNotification{
		Type:    enums.NotificationTypeInfo,
		Title:   title,
		Message: message,
	})
	if err != nil {
		s.logg.Warn(ctx, "fallback notification rejected")
	}
}

// intn draws from the shared rng under the simulator lock; rand.Rand is
// not safe for concurrent use.
func (s *Simulator) intn(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}
