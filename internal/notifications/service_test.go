package notifications

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/enums"
	pkgerrors "github.com/trendiesmaroc/admin-backend/pkg/errors"
)

func newTestService(t *testing.T) (Service, *store.Store, *Publisher) {
	t.Helper()
	st := store.New(store.Params{
		Now:  func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) },
		Rand: rand.New(rand.NewSource(1)),
	})
	publisher := NewPublisher()
	svc, err := NewService(st, publisher, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, st, publisher
}

func TestAddPublishesToSubscribers(t *testing.T) {
	svc, _, publisher := newTestService(t)

	var received []store.Notification
	publisher.Subscribe(func(n store.Notification) { received = append(received, n) })

	created, err := svc.Add(context.Background(), store.NewNotification{
		Type:    enums.NotificationTypeSuccess,
		Title:   "New Order Received",
		Message: "Jane Buyer placed an order",
		UserID:  "1",
	})
	if err != nil {
		t.Fatalf("Add: %v", err)
	}

	if len(received) != 1 || received[0].ID != created.ID {
		t.Fatalf("expected the created notification to be pushed, got %+v", received)
	}
	if created.IsRead {
		t.Fatal("new notifications start unread")
	}
}

func TestAddRejectsInvalidType(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.Add(context.Background(), store.NewNotification{
		Type:  enums.NotificationType("fatal"),
		Title: "t",
	})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListUnreadOnlyAndLimit(t *testing.T) {
	svc, _, _ := newTestService(t)

	result, err := svc.List(context.Background(), ListParams{UnreadOnly: true})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, item := range result.Items {
		if item.IsRead {
			t.Fatalf("unexpected read item %s", item.ID)
		}
	}
	if result.UnreadCount != len(result.Items) {
		t.Fatalf("unread count %d != items %d", result.UnreadCount, len(result.Items))
	}

	limited, err := svc.List(context.Background(), ListParams{Limit: 1})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(limited.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(limited.Items))
	}

	if _, err := svc.List(context.Background(), ListParams{Limit: -1}); pkgerrors.As(err) == nil {
		t.Fatal("expected validation error for negative limit")
	}
}

func TestMarkReadUnknownIDReturnsNotFound(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.MarkRead(context.Background(), "notif-404")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestMarkAllReadReportsFlipCount(t *testing.T) {
	svc, st, _ := newTestService(t)

	want := st.UnreadNotificationCount()
	flipped, err := svc.MarkAllRead(context.Background())
	if err != nil {
		t.Fatalf("MarkAllRead: %v", err)
	}
	if flipped != want {
		t.Fatalf("expected %d flips, got %d", want, flipped)
	}
	if svc.UnreadCount(context.Background()) != 0 {
		t.Fatal("expected zero unread")
	}
}
