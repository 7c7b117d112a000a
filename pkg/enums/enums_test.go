package enums

import "testing"

func TestParseNotificationType(t *testing.T) {
	got, err := ParseNotificationType("warning")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != NotificationTypeWarning {
		t.Fatalf("unexpected type %s", got)
	}

	if _, err := ParseNotificationType("fatal"); err == nil {
		t.Fatal("expected error for unknown type")
	}
}

func TestOrderStatusValidity(t *testing.T) {
	if !OrderStatusOnHold.IsValid() {
		t.Fatal("on_hold should be valid")
	}
	if OrderStatus("paused").IsValid() {
		t.Fatal("paused should be invalid")
	}
}

func TestParseUserRoleRejectsUnknown(t *testing.T) {
	if _, err := ParseUserRole("moderator"); err == nil {
		t.Fatal("expected error for unknown role")
	}
	role, err := ParseUserRole("seller")
	if err != nil || role != UserRoleSeller {
		t.Fatalf("unexpected result %v %v", role, err)
	}
}

func TestParseBadgeLevelIsCaseSensitive(t *testing.T) {
	if _, err := ParseBadgeLevel("pro"); err == nil {
		t.Fatal("badge levels are canonical-cased")
	}
	if _, err := ParseBadgeLevel("Elite"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
