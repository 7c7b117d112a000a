package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/trendiesmaroc/admin-backend/internal/notifications"
	"github.com/trendiesmaroc/admin-backend/internal/store"
	"github.com/trendiesmaroc/admin-backend/pkg/logger"
)

const streamHeartbeat = 25 * time.Second

// StreamNotifications pushes new notifications to the dashboard over
// Server-Sent Events. A slow consumer loses events rather than stalling
// the publisher; the inbox endpoints remain the source of truth.
func StreamNotifications(publisher *notifications.Publisher, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, "streaming unsupported", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")
		w.WriteHeader(http.StatusOK)
		flusher.Flush()

		feed := make(chan store.Notification, 16)
		unsubscribe := publisher.Subscribe(func(n store.Notification) {
			select {
			case feed <- n:
			default:
			}
		})
		defer unsubscribe()

		ctx := r.Context()
		if logg != nil {
			logg.Info(ctx, "notification stream opened")
		}

		heartbeat := time.NewTicker(streamHeartbeat)
		defer heartbeat.Stop()

		for {
			select {
			case <-ctx.Done():
				if logg != nil {
					logg.Info(ctx, "notification stream closed")
				}
				return
			case <-heartbeat.C:
				fmt.Fprint(w, ": keep-alive\n\n")
				flusher.Flush()
			case n := <-feed:
				payload, err := json.Marshal(n)
				if err != nil {
					continue
				}
				fmt.Fprintf(w, "event: notification\ndata: %s\n\n", payload)
				flusher.Flush()
			}
		}
	}
}
