package routes

import (
	"context"
	"encoding/json"
	"io"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trendiesmaroc/admin-backend/internal/events"
	"github.com/trendiesmaroc/admin-backend/internal/notifications"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/config"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
)

type stubSender struct{}

func (stubSender) SendSellerApproval(ctx context.Context, sellerID string) bool { return true }
func (stubSender) SendOrderConfirmation(ctx context.Context, orderID, buyerEmail, productName, sellerName string, amount decimal.Decimal) bool {
	return true
}
func (stubSender) SendReturnAccepted(ctx context.Context, buyerEmail, productName, returnID string) bool {
	return true
}

type stubSimulator struct {
	active bool
}

func (s *stubSimulator) Start()         { s.active = true }
func (s *stubSimulator) Stop()          { s.active = false }
func (s *stubSimulator) IsActive() bool { return s.active }

func newTestRouter(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()

	st := store.New(store.Params{
		Now:  func() time.Time { return time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC) },
		Rand: rand.New(rand.NewSource(1)),
	})
	publisher := notifications.NewPublisher()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})

	svc, err := notifications.NewService(st, publisher, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	dispatcher, err := events.NewDispatcher(events.Params{
		Store:         st,
		Notifications: svc,
		Gateway:       stubSender{},
		Logger:        logg,
	})
	if err != nil {
		t.Fatalf("NewDispatcher: %v", err)
	}

	cfg := &config.Config{}
	cfg.App.Env = config.AppEnvDev
	cfg.CORS.AllowedOrigins = []string{"*"}

	handler := NewRouter(Deps{
		Config:        cfg,
		Logger:        logg,
		Store:         st,
		Dispatcher:    dispatcher,
		Notifications: svc,
		Publisher:     publisher,
		Simulator:     &stubSimulator{},
	})
	return handler, st
}

func doRequest(t *testing.T, handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHealthLive(t *testing.T) {
	handler, _ := newTestRouter(t)
	rec := doRequest(t, handler, http.MethodGet, "/health/live", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("X-Trendies-Env"); got != config.AppEnvDev {
		t.Fatalf("unexpected env header %q", got)
	}
}

func TestDispatchEventEndpoint(t *testing.T) {
	handler, st := newTestRouter(t)
	before := len(st.Notifications())

	rec := doRequest(t, handler, http.MethodPost, "/api/v1/events",
		`{"event":"order_placed","data":{"orderId":"order-1","productId":"prod-1","buyerId":"2","sellerId":"1"}}`)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("expected 202, got %d: %s", rec.Code, rec.Body.String())
	}
	if got := len(st.Notifications()) - before; got != 2 {
		t.Fatalf("order_placed must create exactly 2 notifications, got %d", got)
	}
}

func TestDispatchEventUnknownNameAccepted(t *testing.T) {
	handler, st := newTestRouter(t)
	before := len(st.Notifications())

	rec := doRequest(t, handler, http.MethodPost, "/api/v1/events",
		`{"event":"warehouse_exploded","data":{}}`)

	if rec.Code != http.StatusAccepted {
		t.Fatalf("unknown events must still be accepted, got %d", rec.Code)
	}
	var envelope struct {
		Data struct {
			Known bool `json:"known"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Known {
		t.Fatal("unknown event reported as known")
	}
	if got := len(st.Notifications()) - before; got != 0 {
		t.Fatalf("unknown event must be a no-op, created %d notifications", got)
	}
}

func TestDispatchEventMissingName(t *testing.T) {
	handler, _ := newTestRouter(t)
	rec := doRequest(t, handler, http.MethodPost, "/api/v1/events", `{"data":{}}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestListNotificationsLimit(t *testing.T) {
	handler, _ := newTestRouter(t)
	rec := doRequest(t, handler, http.MethodGet, "/api/v1/notifications/?limit=2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data notifications.ListResult `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(envelope.Data.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(envelope.Data.Items))
	}
}

func TestMarkUnknownNotificationRead(t *testing.T) {
	handler, _ := newTestRouter(t)
	rec := doRequest(t, handler, http.MethodPost, "/api/v1/notifications/notif-missing/read", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestDashboardSummary(t *testing.T) {
	handler, st := newTestRouter(t)
	rec := doRequest(t, handler, http.MethodGet, "/api/v1/dashboard/summary", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var envelope struct {
		Data struct {
			Users       int `json:"users"`
			UnreadCount int `json:"unreadCount"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if envelope.Data.Users != len(st.Users()) {
		t.Fatalf("summary user count %d != store %d", envelope.Data.Users, len(st.Users()))
	}
	if envelope.Data.UnreadCount != st.UnreadNotificationCount() {
		t.Fatal("summary unread count out of sync")
	}
}

func TestSimulatorControls(t *testing.T) {
	handler, _ := newTestRouter(t)

	rec := doRequest(t, handler, http.MethodPost, "/api/v1/simulator/start", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"active":true`) {
		t.Fatalf("start failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, handler, http.MethodPost, "/api/v1/simulator/stop", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"active":false`) {
		t.Fatalf("stop failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = doRequest(t, handler, http.MethodGet, "/api/v1/simulator/status", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `"active":false`) {
		t.Fatalf("status failed: %d %s", rec.Code, rec.Body.String())
	}
}
