package controllers

import (
	"net/http"

	"github.com/trendiesmaroc/admin-backend/api/responses"
	"github.com/trendiesmaroc/admin-backend/api/validators"
	"github.com/trendiesmaroc/admin-backend/internal/events"
	pkgerrors "github.com/trendiesmaroc/admin-backend/pkg/errors"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
)

type dispatchEventRequest struct {
	Event string         `json:"event" validate:"required"`
	Data  map[string]any `json:"data"`
}

// DispatchEvent ingests a named marketplace event and runs its handler
// synchronously. Unknown event names are accepted and dropped so callers
// never have to coordinate with handler rollout.
func DispatchEvent(dispatcher *events.Dispatcher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if dispatcher == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "event dispatcher unavailable"))
			return
		}

		var req dispatchEventRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dispatcher.Dispatch(r.Context(), req.Event, req.Data)

		responses.WriteSuccessStatus(w, http.StatusAccepted, map[string]any{
			"received": req.Event,
			"known":    events.Name(req.Event).IsValid(),
		})
	}
}
