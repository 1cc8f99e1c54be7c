package middleware

import (
	"errors"
	"fmt"
	"net/http"

	devstatus "github.com/alts-client/devstatus/pkg"
	"github.com/alts-client/devstatus/pkg/handlers"
)

func Recovery(cfg *devstatus.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					err, ok := rec.(error)
					if ok && errors.Is(err, http.ErrAbortHandler) {
						panic(err)
					}

					cfg.Logger.Errorf("Recovered from an error: %v (request ID: %s)", rec, GetRequestID(r.Context()))
					handlers.WriteError(w, http.StatusInternalServerError, fmt.Sprint(rec))
				}
			}()
			h.ServeHTTP(w, r)
		})
	}
}
