package events

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trendiesmaroc/admin-backend/internal/notifications"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/enums"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
	"github.com/trendiesmaroc/admin-backend/pkg/metrics"
)

// EmailSender is the outbound email surface the dispatcher needs.
// Satisfied by [email.Gateway].
type EmailSender interface {
	SendSellerApproval(ctx context.Context, sellerID string) bool
	SendOrderConfirmation(ctx context.Context, orderID, buyerEmail, productName, sellerName string, amount decimal.Decimal) bool
	SendReturnAccepted(ctx context.Context, buyerEmail, productName, returnID string) bool
}

// Params configure the dispatcher.
type Params struct {
	Store         *store.Store
	Notifications notifications.Service
	Gateway       EmailSender
	Logger        *logger.Logger
	Metrics       *metrics.EventMetrics
}

// Dispatcher maps domain events to handlers. It is stateless routing:
// handlers mutate the store, append notifications and call the email
// gateway, and none of their failures reach the caller. Entities missing
// from the store make a handler skip its side effects silently.
type Dispatcher struct {
	store   *store.Store
	notifs  notifications.Service
	gateway EmailSender
	logg    *logger.Logger
	metrics *metrics.EventMetrics
}

// NewDispatcher wires the dispatcher dependencies.
func NewDispatcher(params Params) (*Dispatcher, error) {
	if params.Store == nil {
		return nil, fmt.Errorf("store required")
	}
	if params.Notifications == nil {
		return nil, fmt.Errorf("notifications service required")
	}
	if params.Gateway == nil {
		return nil, fmt.Errorf("email gateway required")
	}
	if params.Logger == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &Dispatcher{
		store:   params.Store,
		notifs:  params.Notifications,
		gateway: params.Gateway,
		logg:    params.Logger,
		metrics: params.Metrics,
	}, nil
}

// Dispatch decodes an untyped payload and routes it. Unknown event names
// are a no-op. Fire and forget: the caller never sees handler outcomes.
func (d *Dispatcher) Dispatch(ctx context.Context, name string, data map[string]any) {
	event, ok := ParseEvent(name, data)
	if !ok {
		d.logg.Info(d.logg.WithEvent(ctx, name), "ignoring unknown event")
		return
	}
	d.DispatchEvent(ctx, event)
}

// DispatchEvent routes a typed event to its handler. Panics inside a
// handler are recovered and logged so one bad payload cannot take the
// process down.
func (d *Dispatcher) DispatchEvent(ctx context.Context, event Event) {
	name := event.EventName()
	logCtx := d.logg.WithEvent(ctx, string(name))
	d.logg.Info(logCtx, "processing event")
	if d.metrics != nil {
		d.metrics.IncDispatched(string(name))
	}

	start := time.Now()
	defer func() {
		if rec := recover(); rec != nil {
			d.logg.Error(logCtx, "event handler panicked", fmt.Errorf("panic: %v", rec))
		}
		if d.metrics != nil {
			d.metrics.ObserveHandlerDuration(string(name), time.Since(start))
		}
	}()

	switch e := event.(type) {
	case NewListingCreated:
		d.handleNewListingCreated(logCtx, e)
	case SellerAccountApproved:
		d.handleSellerAccountApproved(logCtx, e)
	case ProductMarkedLive:
		d.handleProductMarkedLive(logCtx, e)
	case OrderPlaced:
		d.handleOrderPlaced(logCtx, e)
	case ReturnRequestInitiated:
		d.handleReturnRequestInitiated(logCtx, e)
	case OrderConfirmed:
		d.handleOrderConfirmed(logCtx, e)
	case ReturnAccepted:
		d.handleReturnAccepted(logCtx, e)
	case StatusUpdated:
		d.handleStatusUpdated(logCtx, e)
	}
}

func (d *Dispatcher) notify(ctx context.Context, input store.NewNotification) {
	if _, err := d.notifs.Add(ctx, input); err != nil {
		d.logg.Error(ctx, "failed to append notification", err)
	}
}

func (d *Dispatcher) handleNewListingCreated(ctx context.Context, e NewListingCreated) {
	product, ok := d.store.ProductByID(e.ProductID)
	if !ok {
		d.logg.Info(ctx, "product not found, skipping")
		return
	}
	seller, ok := d.store.UserByID(e.SellerID)
	if !ok {
		d.logg.Info(ctx, "seller not found, skipping")
		return
	}

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeInfo,
		Title:    "New Listing Created",
		Message:  fmt.Sprintf("%s created a new listing: %s", seller.Name, product.Name),
		UserID:   e.SellerID,
		Metadata: map[string]any{"productId": e.ProductID, "sellerId": e.SellerID},
	})

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeInfo,
		Title:    "New Listing Pending Review",
		Message:  fmt.Sprintf("%s by %s is pending review", product.Name, seller.Name),
		Metadata: map[string]any{"productId": e.ProductID, "sellerId": e.SellerID},
	})
}

func (d *Dispatcher) handleSellerAccountApproved(ctx context.Context, e SellerAccountApproved) {
	seller, ok := d.store.UserByID(e.UserID)
	if !ok {
		d.logg.Info(ctx, "seller not found, skipping")
		return
	}

	d.store.UpdateUserStatus(seller.ID, enums.UserStatusActive)

	if !d.gateway.SendSellerApproval(ctx, seller.ID) {
		d.logg.Warn(d.logg.WithUserID(ctx, seller.ID), "seller approval email not delivered")
	}

	name := e.UserName
	if name == "" {
		name = seller.Name
	}
	role := e.UserRole
	if role == "" {
		role = string(seller.Role)
	}

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeSuccess,
		Title:    "Account Approved!",
		Message:  fmt.Sprintf("%s (%s) account has been approved and is now active", name, role),
		UserID:   seller.ID,
		Metadata: map[string]any{"userId": seller.ID, "userType": role},
	})
}

func (d *Dispatcher) handleProductMarkedLive(ctx context.Context, e ProductMarkedLive) {
	product, ok := d.store.ProductByID(e.ProductID)
	if !ok {
		d.logg.Info(ctx, "product not found, skipping")
		return
	}

	d.store.UpdateProductStatus(product.ID, enums.ProductStatusLive)

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeSuccess,
		Title:    "Product is Live!",
		Message:  fmt.Sprintf("The product %q is now live and visible to buyers", product.Name),
		UserID:   e.SellerID,
		Metadata: map[string]any{"productId": e.ProductID, "sellerId": e.SellerID},
	})
}

func (d *Dispatcher) handleOrderPlaced(ctx context.Context, e OrderPlaced) {
	product, ok := d.store.ProductByID(e.ProductID)
	if !ok {
		d.logg.Info(ctx, "product not found, skipping")
		return
	}
	buyer, ok := d.store.UserByID(e.BuyerID)
	if !ok {
		d.logg.Info(ctx, "buyer not found, skipping")
		return
	}

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeSuccess,
		Title:    "New Order Received",
		Message:  fmt.Sprintf("%s placed an order for %s", buyer.Name, product.Name),
		UserID:   e.SellerID,
		Metadata: map[string]any{"orderId": e.OrderID, "productId": product.ID},
	})

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeInfo,
		Title:    "Order Placed",
		Message:  fmt.Sprintf("The order for %s has been placed successfully", product.Name),
		UserID:   e.BuyerID,
		Metadata: map[string]any{"orderId": e.OrderID, "productId": product.ID},
	})
}

func (d *Dispatcher) handleReturnRequestInitiated(ctx context.Context, e ReturnRequestInitiated) {
	order, ok := d.store.OrderByID(e.OrderID)
	if !ok {
		d.logg.Info(ctx, "order not found, skipping")
		return
	}
	product, ok := d.store.ProductByID(order.ProductID)
	if !ok {
		d.logg.Info(ctx, "product not found, skipping")
		return
	}

	if _, exists := d.store.ReturnByID(e.ReturnID); !exists && e.ReturnID != "" {
		reason := e.Reason
		if reason == "" {
			reason = "Item not as described"
		}
		d.store.AddReturnRequest(store.ReturnRequest{
			ID:        e.ReturnID,
			OrderID:   order.ID,
			Reason:    reason,
			Status:    enums.ReturnStatusPending,
			CreatedAt: time.Now().UTC(),
		})
	}

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeWarning,
		Title:    "Return Request",
		Message:  fmt.Sprintf("A return request has been initiated for %s", product.Name),
		UserID:   order.SellerID,
		Metadata: map[string]any{"returnId": e.ReturnID, "orderId": e.OrderID},
	})

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeInfo,
		Title:    "Return Request Submitted",
		Message:  fmt.Sprintf("The return request for %s has been submitted", product.Name),
		UserID:   e.BuyerID,
		Metadata: map[string]any{"returnId": e.ReturnID, "orderId": e.OrderID},
	})
}

func (d *Dispatcher) handleOrderConfirmed(ctx context.Context, e OrderConfirmed) {
	if !d.gateway.SendOrderConfirmation(ctx, e.OrderID, e.BuyerEmail, e.ProductName, e.SellerName, e.Amount) {
		d.logg.Warn(ctx, "order confirmation email not delivered")
	}

	order, ok := d.store.OrderByID(e.OrderID)
	if !ok {
		d.logg.Info(ctx, "order not found, skipping notification")
		return
	}

	d.store.UpdateOrderStatus(order.ID, enums.OrderStatusConfirmed)

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeSuccess,
		Title:    "Order Confirmed",
		Message:  fmt.Sprintf("Order confirmation email sent for %s", e.ProductName),
		UserID:   order.BuyerID,
		Metadata: map[string]any{"orderId": e.OrderID, "productName": e.ProductName},
	})
}

func (d *Dispatcher) handleReturnAccepted(ctx context.Context, e ReturnAccepted) {
	if !d.gateway.SendReturnAccepted(ctx, e.BuyerEmail, e.ProductName, e.ReturnID) {
		d.logg.Warn(ctx, "return accepted email not delivered")
	}

	order, ok := d.store.OrderByID(e.OrderID)
	if !ok {
		d.logg.Info(ctx, "order not found, skipping notification")
		return
	}

	d.store.UpdateReturnStatus(e.ReturnID, enums.ReturnStatusApproved)

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeSuccess,
		Title:    "Return Approved",
		Message:  fmt.Sprintf("Return request approved for %s - email sent to %s", e.ProductName, e.BuyerName),
		UserID:   order.BuyerID,
		Metadata: map[string]any{"returnId": e.ReturnID, "orderId": e.OrderID, "productName": e.ProductName},
	})
}

func (d *Dispatcher) handleStatusUpdated(ctx context.Context, e StatusUpdated) {
	if e.EventType == "user_registered" {
		d.notify(ctx, store.NewNotification{
			Type:     enums.NotificationTypeInfo,
			Title:    "New User Registration",
			Message:  fmt.Sprintf("%s registered as %s - email: %s", e.UserName, e.UserRole, e.UserEmail),
			UserID:   "admin",
			Metadata: map[string]any{"userId": e.UserID, "userType": e.UserRole, "eventType": e.EventType},
		})
		return
	}

	d.notify(ctx, store.NewNotification{
		Type:     enums.NotificationTypeInfo,
		Title:    "Status Updated",
		Message:  fmt.Sprintf("%s status changed from %s to %s", e.EntityType, e.OldStatus, e.NewStatus),
		UserID:   e.UserID,
		Metadata: map[string]any{"type": e.EntityType, "id": e.EntityID, "oldStatus": e.OldStatus, "newStatus": e.NewStatus},
	})
}
