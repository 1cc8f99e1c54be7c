package server

import (
	"os"
	"strconv"

	"github.com/alts-client/devstatus/pkg/env"
)

const DefaultPort = 8000

type Env struct {
	Port        int
	HealthCheck bool
}

func NewServerEnv() *Env {
	return &Env{Port: DefaultPort}
}

func (s *Env) Populate() error {
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil || p < 0 || p > 65535 {
			return &env.TypeError{Name: "PORT"}
		}
		s.Port = p
	}

	if healthcheck := os.Getenv("HEALTHCHECK_ENABLED"); healthcheck != "" {
		b, err := strconv.ParseBool(healthcheck)
		if err != nil {
			return &env.TypeError{Name: "HEALTHCHECK_ENABLED"}
		}
		s.HealthCheck = b
	}

	return nil
}
