package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/trendiesmaroc/admin-backend/api/responses"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	pkgerrors "github.com/trendiesmaroc/admin-backend/pkg/errors"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
)

// The dashboard tables are plain reads over the demo data set.

func ListUsers(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"users": st.Users()})
	}
}

func ListProducts(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"products": st.Products()})
	}
}

func ListOrders(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"orders": st.Orders()})
	}
}

func GetOrder(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "orderId")
		order, ok := st.OrderByID(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "order not found"))
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func ListReturns(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"returns": st.Returns()})
	}
}

func ListEmailTemplates(st *store.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, map[string]any{"templates": st.Templates()})
	}
}
