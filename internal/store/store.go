// Package store holds the in-memory domain state backing the admin demo.
// State is seeded at construction and lives for the process lifetime; there
// is no persistence. All access goes through the mutex so HTTP handlers and
// the simulator goroutine can mutate collections safely.
package store

import (
	"fmt"
	"math/rand"
	"strconv"
	"sync"
	"time"

	"github.com/trendiesmaroc/admin-backend/pkg/enums"
)

// Params configures a Store. Zero values fall back to the real clock and a
// time-seeded random source.
type Params struct {
	Now  func() time.Time
	Rand *rand.Rand
}

// Store owns every in-memory collection. Notifications are kept newest
// first; orders are prepended on creation for the same reason.
type Store struct {
	mu sync.Mutex

	now func() time.Time
	rng *rand.Rand
	seq uint64

	users     []User
	products  []Product
	orders    []Order
	returns   []ReturnRequest
	notifs    []Notification
	templates []EmailTemplate
}

// New builds a Store preloaded with the demo seed catalog.
func New(params Params) *Store {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	rng := params.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	s := &Store{now: now, rng: rng}
	s.seed()
	return s
}

// NewNotification is the caller-supplied portion of a notification record.
// ID and CreatedAt are minted by the store.
type NewNotification struct {
	Type     enums.NotificationType
	Title    string
	Message  string
	UserID   string
	Metadata map[string]any
}

// AppendNotification mints a unique id and prepends the record.
// The id pairs a monotonic counter with a random suffix so bursts inside
// the same millisecond still produce distinct ids.
func (s *Store) AppendNotification(input NewNotification) Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	notif := Notification{
		ID:        s.nextNotificationID(),
		Type:      input.Type,
		Title:     input.Title,
		Message:   input.Message,
		UserID:    input.UserID,
		IsRead:    false,
		CreatedAt: s.now(),
		Metadata:  input.Metadata,
	}
	s.notifs = append([]Notification{notif}, s.notifs...)
	return notif
}

func (s *Store) nextNotificationID() string {
	s.seq++
	suffix := strconv.FormatUint(uint64(s.rng.Int63()), 36)
	if len(suffix) > 9 {
		suffix = suffix[:9]
	}
	return fmt.Sprintf("notif-%d-%d-%s", s.now().UnixMilli(), s.seq, suffix)
}

// MarkNotificationRead flips IsRead to true. Idempotent; a second call on
// the same id is a no-op. Returns false when the id is unknown.
func (s *Store) MarkNotificationRead(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.notifs {
		if s.notifs[i].ID == id {
			s.notifs[i].IsRead = true
			return true
		}
	}
	return false
}

// MarkAllNotificationsRead returns the number of records flipped.
func (s *Store) MarkAllNotificationsRead() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.notifs {
		if !s.notifs[i].IsRead {
			s.notifs[i].IsRead = true
			count++
		}
	}
	return count
}

// Notifications returns a newest-first snapshot.
func (s *Store) Notifications() []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Notification, len(s.notifs))
	copy(out, s.notifs)
	return out
}

// LatestNotifications returns at most n of the newest records.
func (s *Store) LatestNotifications(n int) []Notification {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > len(s.notifs) {
		n = len(s.notifs)
	}
	out := make([]Notification, n)
	copy(out, s.notifs[:n])
	return out
}

// UnreadNotificationCount counts records still unread.
func (s *Store) UnreadNotificationCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for i := range s.notifs {
		if !s.notifs[i].IsRead {
			count++
		}
	}
	return count
}

// UserByID returns a copy of the user, if present.
func (s *Store) UserByID(id string) (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			return s.users[i], true
		}
	}
	return User{}, false
}

// Users returns a snapshot of every account.
func (s *Store) Users() []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]User, len(s.users))
	copy(out, s.users)
	return out
}

// UsersWithStatus filters accounts by lifecycle status.
func (s *Store) UsersWithStatus(status enums.UserStatus) []User {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []User
	for i := range s.users {
		if s.users[i].Status == status {
			out = append(out, s.users[i])
		}
	}
	return out
}

// AddUser appends a new account.
func (s *Store) AddUser(user User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, user)
}

// UpdateUserStatus sets the lifecycle status. Returns false for unknown ids.
func (s *Store) UpdateUserStatus(id string, status enums.UserStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			s.users[i].Status = status
			return true
		}
	}
	return false
}

// UpdateUserBadge sets the reputation badge. Returns false for unknown ids.
func (s *Store) UpdateUserBadge(id string, badge enums.BadgeLevel) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.users {
		if s.users[i].ID == id {
			level := badge
			s.users[i].BadgeLevel = &level
			return true
		}
	}
	return false
}

// ProductByID returns a copy of the listing, if present.
func (s *Store) ProductByID(id string) (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			return s.products[i], true
		}
	}
	return Product{}, false
}

// Products returns a snapshot of every listing.
func (s *Store) Products() []Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

// AddProduct appends a new listing.
func (s *Store) AddProduct(product Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
}

// UpdateProductStatus sets the listing status and refreshes UpdatedAt.
func (s *Store) UpdateProductStatus(id string, status enums.ProductStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products[i].Status = status
			s.products[i].UpdatedAt = s.now()
			return true
		}
	}
	return false
}

// OrderByID returns a copy of the order, if present.
func (s *Store) OrderByID(id string) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			return s.orders[i], true
		}
	}
	return Order{}, false
}

// Orders returns a newest-first snapshot.
func (s *Store) Orders() []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// OrdersWithStatus filters orders by lifecycle status.
func (s *Store) OrdersWithStatus(status enums.OrderStatus) []Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []Order
	for i := range s.orders {
		if s.orders[i].Status == status {
			out = append(out, s.orders[i])
		}
	}
	return out
}

// AddOrder prepends a new order so listings stay newest first.
func (s *Store) AddOrder(order Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append([]Order{order}, s.orders...)
}

// UpdateOrderStatus sets the order status. No transition guard: nothing
// prevents a cancelled order from being marked paid. Matches the observed
// source behavior; see DESIGN.md before tightening.
func (s *Store) UpdateOrderStatus(id string, status enums.OrderStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].Status = status
			return true
		}
	}
	return false
}

// UpdateOrderPayoutStatus sets the payout bookkeeping state.
func (s *Store) UpdateOrderPayoutStatus(id string, status enums.PayoutStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders[i].PayoutStatus = status
			return true
		}
	}
	return false
}

// ReturnByID returns a copy of the return request, if present.
func (s *Store) ReturnByID(id string) (ReturnRequest, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.returns {
		if s.returns[i].ID == id {
			return s.returns[i], true
		}
	}
	return ReturnRequest{}, false
}

// Returns returns a snapshot of every return request.
func (s *Store) Returns() []ReturnRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]ReturnRequest, len(s.returns))
	copy(out, s.returns)
	return out
}

// UpdateReturnStatus sets the return request status.
func (s *Store) UpdateReturnStatus(id string, status enums.ReturnStatus) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.returns {
		if s.returns[i].ID == id {
			s.returns[i].Status = status
			return true
		}
	}
	return false
}

// AddReturnRequest appends a new return request.
func (s *Store) AddReturnRequest(request ReturnRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.returns = append(s.returns, request)
}

// TemplateByID looks up an email template from the static catalog.
func (s *Store) TemplateByID(id string) (EmailTemplate, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.templates {
		if s.templates[i].ID == id {
			return s.templates[i], true
		}
	}
	return EmailTemplate{}, false
}

// Templates returns a snapshot of the email template catalog.
func (s *Store) Templates() []EmailTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]EmailTemplate, len(s.templates))
	copy(out, s.templates)
	return out
}

// RandomUser picks a uniformly random account for the simulator.
func (s *Store) RandomUser() (User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.users) == 0 {
		return User{}, false
	}
	return s.users[s.rng.Intn(len(s.users))], true
}

// RandomProduct picks a uniformly random listing for the simulator.
func (s *Store) RandomProduct() (Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.products) == 0 {
		return Product{}, false
	}
	return s.products[s.rng.Intn(len(s.products))], true
}
