package controllers

import (
	"net/http"

	"github.com/trendiesmaroc/admin-backend/api/responses"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/enums"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
)

type dashboardSummary struct {
	Users            int            `json:"users"`
	PendingApprovals int            `json:"pendingApprovals"`
	Products         int            `json:"products"`
	LiveProducts     int            `json:"liveProducts"`
	Orders           int            `json:"orders"`
	OrdersByStatus   map[string]int `json:"ordersByStatus"`
	PendingReturns   int            `json:"pendingReturns"`
	UnreadCount      int            `json:"unreadCount"`
}

// DashboardSummary aggregates the headline counters shown at the top of
// the admin dashboard.
func DashboardSummary(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		summary := dashboardSummary{
			OrdersByStatus: map[string]int{},
		}

		users := st.Users()
		summary.Users = len(users)
		for _, user := range users {
			if user.Status == enums.UserStatusPending {
				summary.PendingApprovals++
			}
		}

		products := st.Products()
		summary.Products = len(products)
		for _, product := range products {
			if product.Status == enums.ProductStatusLive {
				summary.LiveProducts++
			}
		}

		orders := st.Orders()
		summary.Orders = len(orders)
		for _, order := range orders {
			summary.OrdersByStatus[string(order.Status)]++
		}

		for _, ret := range st.Returns() {
			if ret.Status == enums.ReturnStatusPending {
				summary.PendingReturns++
			}
		}

		summary.UnreadCount = st.UnreadNotificationCount()

		responses.WriteSuccess(w, summary)
	}
}
