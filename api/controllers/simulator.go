package controllers

import (
	"net/http"

	"github.com/trendiesmaroc/admin-backend/api/responses"
	pkgerrors "github.com/trendiesmaroc/admin-backend/pkg/errors"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
)

// SimulatorControl is satisfied by the traffic simulator.
type SimulatorControl interface {
	Start()
	Stop()
	IsActive() bool
}

func StartSimulator(sim SimulatorControl, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sim == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "simulator unavailable"))
			return
		}
		sim.Start()
		responses.WriteSuccess(w, map[string]bool{"active": sim.IsActive()})
	}
}

func StopSimulator(sim SimulatorControl, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sim == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "simulator unavailable"))
			return
		}
		sim.Stop()
		responses.WriteSuccess(w, map[string]bool{"active": sim.IsActive()})
	}
}

func SimulatorStatus(sim SimulatorControl, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if sim == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "simulator unavailable"))
			return
		}
		responses.WriteSuccess(w, map[string]bool{"active": sim.IsActive()})
	}
}
