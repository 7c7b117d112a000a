// Package notifications exposes the inbox operations the dashboard
// consumes and the publisher bridging server-side events to live UI push.
package notifications

import (
	"context"

	"github.com/trendiesmaroc/admin-backend/internal/store"
	pkgerrors "github.com/trendiesmaroc/admin-backend/pkg/errors"
	"github.com/trendiesmaroc/admin-backend/pkg/metrics"
)

// Service defines notification inbox operations.
type Service interface {
	List(ctx context.Context, params ListParams) (*ListResult, error)
	Latest(ctx context.Context, count int) []store.Notification
	UnreadCount(ctx context.Context) int
	MarkRead(ctx context.Context, notificationID string) error
	MarkAllRead(ctx context.Context) (int, error)
	Add(ctx context.Context, input store.NewNotification) (store.Notification, error)
}

type service struct {
	store     *store.Store
	publisher *Publisher
	metrics   *metrics.EventMetrics
}

// ListParams configures inbox listing.
type ListParams struct {
	Limit      int
	UnreadOnly bool
}

// ListResult wraps returned notifications and the total unread count.
type ListResult struct {
	Items       []store.Notification `json:"items"`
	UnreadCount int                  `json:"unreadCount"`
}

// NewService wires notifications dependencies.
func NewService(st *store.Store, publisher *Publisher, m *metrics.EventMetrics) (Service, error) {
	if st == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications store required")
	}
	if publisher == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "notifications publisher required")
	}
	return &service{store: st, publisher: publisher, metrics: m}, nil
}

func (s *service) List(ctx context.Context, params ListParams) (*ListResult, error) {
	if params.Limit < 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "limit must not be negative")
	}

	items := s.store.Notifications()
	if params.UnreadOnly {
		filtered := items[:0]
		for _, item := range items {
			if !item.IsRead {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}
	if params.Limit > 0 && params.Limit < len(items) {
		items = items[:params.Limit]
	}

	return &ListResult{
		Items:       items,
		UnreadCount: s.store.UnreadNotificationCount(),
	}, nil
}

func (s *service) Latest(ctx context.Context, count int) []store.Notification {
	return s.store.LatestNotifications(count)
}

func (s *service) UnreadCount(ctx context.Context) int {
	return s.store.UnreadNotificationCount()
}

func (s *service) MarkRead(ctx context.Context, notificationID string) error {
	if notificationID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "notification id required")
	}
	if !s.store.MarkNotificationRead(notificationID) {
		return pkgerrors.New(pkgerrors.CodeNotFound, "notification not found")
	}
	return nil
}

func (s *service) MarkAllRead(ctx context.Context) (int, error) {
	return s.store.MarkAllNotificationsRead(), nil
}

// Add appends a record and pushes it to live subscribers.
func (s *service) Add(ctx context.Context, input store.NewNotification) (store.Notification, error) {
	if !input.Type.IsValid() {
		return store.Notification{}, pkgerrors.New(pkgerrors.CodeValidation, "invalid notification type")
	}
	if input.Title == "" {
		return store.Notification{}, pkgerrors.New(pkgerrors.CodeValidation, "notification title required")
	}

	notification := s.store.AppendNotification(input)
	if s.metrics != nil {
		s.metrics.IncNotification(string(notification.Type))
	}
	s.publisher.Publish(notification)
	return notification, nil
}
