package splunk

import (
	"os"

	"github.com/alts-client/devstatus/pkg/env"
)

type Env struct {
	Index     string
	Endpoint  string
	Token     string
	Host      string
	Namespace string
	Pod       string
}

func NewSplunkEnv() *Env {
	return &Env{}
}

// Enabled reports whether audit records should be forwarded to Splunk.
func (s *Env) Enabled() bool {
	return s.Endpoint != ""
}

// Populate leaves the Env disabled when SPLUNK_ENDPOINT is not set. Once an
// endpoint is given, the index and token become mandatory.
func (s *Env) Populate() error {
	endpoint := os.Getenv("SPLUNK_ENDPOINT")
	if endpoint == "" {
		return nil
	}

	index := os.Getenv("SPLUNK_INDEX")
	if index == "" {
		return &env.Error{Name: "SPLUNK_INDEX"}
	}

	token := os.Getenv("SPLUNK_TOKEN")
	if token == "" {
		return &env.Error{Name: "SPLUNK_TOKEN"}
	}

	s.Endpoint = endpoint
	s.Index = index
	s.Token = token
	s.Host = os.Getenv("HOST")
	s.Namespace = os.Getenv("NAMESPACE")
	s.Pod = os.Getenv("POD_NAME")

	return nil
}
