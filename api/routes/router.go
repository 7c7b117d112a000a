package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trendiesmaroc/admin-backend/api/controllers"
	"github.com/trendiesmaroc/admin-backend/api/middleware"
	"github.com/trendiesmaroc/admin-backend/internal/events"
	"github.com/trendiesmaroc/admin-backend/internal/notifications"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/config"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
)

// Deps carries everything the HTTP surface needs. The simulator is an
// interface so router tests can plug in a fake.
type Deps struct {
	Config        *config.Config
	Logger        *logger.Logger
	Store         *store.Store
	Dispatcher    *events.Dispatcher
	Notifications notifications.Service
	Publisher     *notifications.Publisher
	Simulator     controllers.SimulatorControl
	Metrics       prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.CORS),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if deps.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Metrics, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/events", controllers.DispatchEvent(deps.Dispatcher, logg))

		r.Route("/notifications", func(r chi.Router) {
			r.Get("/", controllers.ListNotifications(deps.Notifications, logg))
			r.Get("/unread-count", controllers.UnreadNotificationCount(deps.Notifications, logg))
			r.Get("/stream", controllers.StreamNotifications(deps.Publisher, logg))
			r.Post("/{notificationId}/read", controllers.MarkNotificationRead(deps.Notifications, logg))
			r.Post("/read-all", controllers.MarkAllNotificationsRead(deps.Notifications, logg))
		})

		r.Get("/dashboard/summary", controllers.DashboardSummary(deps.Store, logg))
		r.Get("/users", controllers.ListUsers(deps.Store, logg))
		r.Get("/products", controllers.ListProducts(deps.Store, logg))
		r.Get("/orders", controllers.ListOrders(deps.Store, logg))
		r.Get("/orders/{orderId}", controllers.GetOrder(deps.Store, logg))
		r.Get("/returns", controllers.ListReturns(deps.Store, logg))
		r.Get("/email-templates", controllers.ListEmailTemplates(deps.Store, logg))

		r.Route("/simulator", func(r chi.Router) {
			r.Post("/start", controllers.StartSimulator(deps.Simulator, logg))
			r.Post("/stop", controllers.StopSimulator(deps.Simulator, logg))
			r.Get("/status", controllers.SimulatorStatus(deps.Simulator, logg))
		})
	})

	return r
}
