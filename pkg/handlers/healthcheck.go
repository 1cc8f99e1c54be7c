package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/etherlabsio/healthcheck/v2"

	devstatus "github.com/alts-client/devstatus/pkg"
)

func Healthcheck(cfg *devstatus.Config, running func() bool) http.Handler {
	return healthcheck.Handler(
		healthcheck.WithTimeout(5*time.Second),
		healthcheck.WithChecker(
			"listener", healthcheck.CheckerFunc(
				func(ctx context.Context) error {
					if !running() {
						cfg.Logger.Errorf("Health check failed: listener is not running")
						return errors.New("listener is not running")
					}
					return nil
				},
			),
		),
	)
}
