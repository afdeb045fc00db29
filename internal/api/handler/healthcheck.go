package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

var startedAt = time.Now()

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]any{
			"status":         "ok",
			"time":           time.Now().Format(time.RFC3339),
			"uptime_seconds": int(time.Since(startedAt).Seconds()),
		})
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
