package handlers

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alts-client/devstatus/internal/test"
	devstatus "github.com/alts-client/devstatus/pkg"
)

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		running     bool
		code        int
		body        string
		want        string
	}{
		{
			"listener is running",
			true,
			200,
			`{"status":"OK"}`,
			``,
		},
		{
			"listener is not running",
			false,
			503,
			`listener is not running`,
			`Health check failed: listener is not running`,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var body, output bytes.Buffer

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/healthcheck", nil)

			logger := test.DummyLogger(&output).Sugar()

			expected := &devstatus.Config{Logger: logger}
			Healthcheck(expected, func() bool { return tc.running }).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			_, _ = io.Copy(&body, actual.Body)

			assert.Equal(t, tc.code, actual.StatusCode)
			assert.Contains(t, body.String(), tc.body)
			assert.Contains(t, output.String(), tc.want)
		})
	}
}
