package cmd

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	devstatus "github.com/alts-client/devstatus/pkg"
	"github.com/alts-client/devstatus/pkg/audit"
	"github.com/alts-client/devstatus/pkg/device"
	serverenv "github.com/alts-client/devstatus/pkg/env/server"
	"github.com/alts-client/devstatus/pkg/env/splunk"
	"github.com/alts-client/devstatus/pkg/server"
	"github.com/alts-client/devstatus/pkg/version"
)

// Run acts as the host of the device status server: the listener is started
// right away and stopped once ctx is done. A listener that fails to bind is
// logged, and Run keeps waiting for ctx without serving anything.
func Run(ctx context.Context, logger *zap.SugaredLogger) error {
	production := devstatus.Production()
	logger.Infof("Starting device status server version: %s", version.Version())

	se := serverenv.NewServerEnv()
	if err := se.Populate(); err != nil {
		return fmt.Errorf("unable to configure server: %w", err)
	}

	logger.Infof("Production: %t, health check: %t (request timeout: %s)",
		production, se.HealthCheck, devstatus.RequestTimeout(),
	)

	cfg := &devstatus.Config{
		ServerEnv:   se,
		Querier:     device.NewMockQuerier(),
		LoggerAudit: audit.NewLoggerAudit(logger),
		Logger:      logger,
	}

	spe := splunk.NewSplunkEnv()
	if err := spe.Populate(); err != nil {
		return fmt.Errorf("unable to configure Splunk: %w", err)
	}
	if spe.Enabled() {
		cfg.SplunkAudit = audit.NewSplunkAudit(spe)
		logger.Infof("Sending audit to Splunk endpoint: %s", spe.Endpoint)
	}

	srv := server.New(cfg, se.Port)

	logger.Infof("HTTP server starting on port: %d", se.Port)
	if err := srv.Start(); err != nil {
		logger.Errorf("Failed to start server: %s", err)
	}

	<-ctx.Done()

	return srv.Stop()
}
