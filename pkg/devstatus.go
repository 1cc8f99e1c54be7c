package devstatus

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/alts-client/devstatus/pkg/audit"
	"github.com/alts-client/devstatus/pkg/device"
	"github.com/alts-client/devstatus/pkg/env/server"
)

const defaultRequestTimeout = 2 * time.Minute

type Config struct {
	ServerEnv   *server.Env
	Querier     device.Querier
	LoggerAudit audit.Audit
	SplunkAudit audit.Audit
	Logger      *zap.SugaredLogger
}

// Production reports whether the service runs with ENVIRONMENT=production.
func Production() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}

// RequestTimeout returns the per-request timeout from REQUEST_TIMEOUT, or
// the default when the variable is unset, cannot be parsed, or is zero.
func RequestTimeout() time.Duration {
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		if d, err := parseDuration(s); err == nil && d > 0 {
			return d
		}
	}
	return defaultRequestTimeout
}

// A bare integer is taken as a number of seconds. Negative values are
// turned positive.
func parseDuration(s string) (time.Duration, error) {
	var d time.Duration

	if n, err := strconv.Atoi(s); err == nil {
		d = time.Duration(n) * time.Second
	} else {
		d, err = time.ParseDuration(s)
		if err != nil {
			return 0, fmt.Errorf("unable to parse duration: %w", err)
		}
	}

	if d < 0 {
		d = -d
	}
	return d, nil
}
