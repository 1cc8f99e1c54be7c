package middleware

import (
	"bytes"
	"io"
	"net/http"
	"time"

	devstatus "github.com/alts-client/devstatus/pkg"
	"github.com/alts-client/devstatus/pkg/audit"
	"github.com/alts-client/devstatus/pkg/handlers"
)

// failedBody ends a replayed request body with the error that interrupted
// the original read.
type failedBody struct {
	err error
}

func (f *failedBody) Read([]byte) (int, error) {
	return 0, f.err
}

// Audit records the query of every device status request the handler will
// accept. A request whose body cannot be read or decoded is passed on
// unaudited, so that the handler produces the error response.
func Audit(cfg *devstatus.Config) Middleware {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			now := time.Now()

			content, err := io.ReadAll(http.MaxBytesReader(w, r.Body, handlers.MaxBodySize))
			_ = r.Body.Close()

			if err != nil {
				cfg.Logger.Debugf("Unable to read request body: %s", err)
				r.Body = io.NopCloser(io.MultiReader(bytes.NewReader(content), &failedBody{err: err}))
				h.ServeHTTP(w, r)
				return
			}

			r.Body = io.NopCloser(bytes.NewReader(content))

			request, err := handlers.DecodeStatusRequest(content)
			if err != nil {
				cfg.Logger.Debugf("Unable to decode request body: %s", err)
				h.ServeHTTP(w, r)
				return
			}

			query := &audit.QueryData{
				Query:     request.Query,
				RequestID: GetRequestID(r.Context()),
				Timestamp: now.Unix(),
			}

			for _, a := range []audit.Audit{cfg.LoggerAudit, cfg.SplunkAudit} {
				if a == nil {
					continue
				}
				if err := a.Write(query); err != nil {
					cfg.Logger.Errorf("Unable to write audit: %s", err)
				}
			}

			h.ServeHTTP(w, r)
		})
	}
}
