package store

import (
	"math/rand"
	"regexp"
	"testing"
	"time"

	"github.com/trendiesmaroc/admin-backend/pkg/enums"
)

var notificationIDPattern = regexp.MustCompile(`^notif-\d+-\d+-[0-9a-z]{1,9}$`)

func newTestStore() *Store {
	return New(Params{
		Now:  func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) },
		Rand: rand.New(rand.NewSource(1)),
	})
}

func TestAppendNotificationIDsAreUniqueUnderBurst(t *testing.T) {
	s := newTestStore()

	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		notif := s.AppendNotification(NewNotification{
			Type:    enums.NotificationTypeInfo,
			Title:   "burst",
			Message: "burst",
		})
		if !notificationIDPattern.MatchString(notif.ID) {
			t.Fatalf("id %q does not match the expected format", notif.ID)
		}
		if seen[notif.ID] {
			t.Fatalf("duplicate id %q", notif.ID)
		}
		seen[notif.ID] = true
	}
	if len(seen) != 100 {
		t.Fatalf("expected 100 distinct ids, got %d", len(seen))
	}
}

func TestAppendNotificationPrepends(t *testing.T) {
	s := newTestStore()
	first := s.AppendNotification(NewNotification{Type: enums.NotificationTypeInfo, Title: "a", Message: "a"})
	second := s.AppendNotification(NewNotification{Type: enums.NotificationTypeInfo, Title: "b", Message: "b"})

	notifs := s.Notifications()
	if notifs[0].ID != second.ID || notifs[1].ID != first.ID {
		t.Fatal("expected newest notification first")
	}
}

func TestMarkNotificationReadIsIdempotent(t *testing.T) {
	s := newTestStore()
	notif := s.AppendNotification(NewNotification{Type: enums.NotificationTypeSuccess, Title: "t", Message: "m"})

	if !s.MarkNotificationRead(notif.ID) {
		t.Fatal("expected first mark to succeed")
	}
	if !s.MarkNotificationRead(notif.ID) {
		t.Fatal("expected second mark to succeed as a no-op")
	}

	count := 0
	for _, n := range s.Notifications() {
		if n.ID == notif.ID {
			count++
			if !n.IsRead {
				t.Fatal("expected notification to stay read")
			}
		}
	}
	if count != 1 {
		t.Fatalf("expected exactly one record, found %d", count)
	}

	if s.MarkNotificationRead("notif-missing") {
		t.Fatal("expected unknown id to return false")
	}
}

func TestMarkAllNotificationsRead(t *testing.T) {
	s := newTestStore()
	before := s.UnreadNotificationCount()
	if before == 0 {
		t.Fatal("seed data should contain unread notifications")
	}

	flipped := s.MarkAllNotificationsRead()
	if flipped != before {
		t.Fatalf("expected %d flips, got %d", before, flipped)
	}
	if s.UnreadNotificationCount() != 0 {
		t.Fatal("expected zero unread after mark-all")
	}
	if s.MarkAllNotificationsRead() != 0 {
		t.Fatal("expected second mark-all to flip nothing")
	}
}

func TestLatestNotificationsClampsCount(t *testing.T) {
	s := newTestStore()
	total := len(s.Notifications())

	if got := len(s.LatestNotifications(2)); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
	if got := len(s.LatestNotifications(total + 10)); got != total {
		t.Fatalf("expected %d, got %d", total, got)
	}
	if got := len(s.LatestNotifications(-1)); got != 0 {
		t.Fatalf("expected 0 for negative count, got %d", got)
	}
}

func TestUpdateProductStatusRefreshesUpdatedAt(t *testing.T) {
	now := time.Date(2025, 2, 1, 8, 0, 0, 0, time.UTC)
	s := New(Params{Now: func() time.Time { return now }, Rand: rand.New(rand.NewSource(1))})

	if !s.UpdateProductStatus("prod-2", enums.ProductStatusLive) {
		t.Fatal("expected update to succeed")
	}
	product, ok := s.ProductByID("prod-2")
	if !ok {
		t.Fatal("expected product to exist")
	}
	if product.Status != enums.ProductStatusLive {
		t.Fatalf("unexpected status %s", product.Status)
	}
	if !product.UpdatedAt.Equal(now) {
		t.Fatalf("expected UpdatedAt %v, got %v", now, product.UpdatedAt)
	}

	if s.UpdateProductStatus("prod-404", enums.ProductStatusLive) {
		t.Fatal("expected unknown product to return false")
	}
}

func TestAddOrderPrepends(t *testing.T) {
	s := newTestStore()
	s.AddOrder(Order{ID: "order-new", Status: enums.OrderStatusShipped})

	orders := s.Orders()
	if orders[0].ID != "order-new" {
		t.Fatal("expected new order first")
	}
}

func TestUsersWithStatusFindsSeededPendingSeller(t *testing.T) {
	s := newTestStore()
	pending := s.UsersWithStatus(enums.UserStatusPending)
	if len(pending) != 1 || pending[0].ID != "5" {
		t.Fatalf("expected seed user 5 pending, got %+v", pending)
	}
}

func TestUpdateUserBadge(t *testing.T) {
	s := newTestStore()
	if !s.UpdateUserBadge("5", enums.BadgeLevelPro) {
		t.Fatal("expected badge update to succeed")
	}
	user, _ := s.UserByID("5")
	if user.BadgeLevel == nil || *user.BadgeLevel != enums.BadgeLevelPro {
		t.Fatal("expected badge to be set")
	}
}

func TestTemplateCatalogSeeded(t *testing.T) {
	s := newTestStore()
	for _, id := range []string{"seller-approval", "order-confirmation", "return-accepted"} {
		tmpl, ok := s.TemplateByID(id)
		if !ok {
			t.Fatalf("expected template %s", id)
		}
		if len(tmpl.Variables) == 0 {
			t.Fatalf("template %s should declare variables", id)
		}
	}
}
