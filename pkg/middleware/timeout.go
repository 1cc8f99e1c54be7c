package middleware

import (
	"net/http"
	"time"
)

const TimeoutMessage = "Request timed out"

// Timeout answers 503 with TimeoutMessage when the device status chain runs
// longer than timeout.
func Timeout(timeout time.Duration) Middleware {
	return func(h http.Handler) http.Handler {
		return http.TimeoutHandler(h, timeout, TimeoutMessage)
	}
}
