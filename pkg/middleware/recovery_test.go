package middleware

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alts-client/devstatus/internal/test"
	devstatus "github.com/alts-client/devstatus/pkg"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       http.HandlerFunc
		code        int
		error       bool
		body        string
		want        string
	}{
		{
			"no panic",
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				// No-op.
			}),
			200,
			false,
			``,
			``,
		},
		{
			"panic with a string",
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("test")
			}),
			500,
			false,
			"{\"error\":\"test\"}\n",
			`Recovered from an error: test`,
		},
		{
			"panic with an error",
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(errors.New("index out of range"))
			}),
			500,
			false,
			"{\"error\":\"index out of range\"}\n",
			`Recovered from an error: index out of range`,
		},
		{
			"panic without recovery with special error type",
			http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic(http.ErrAbortHandler)
			}),
			0,
			true,
			``,
			``,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			defer func() { _ = recover() }()

			var body, output bytes.Buffer

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/get_device_status", &bytes.Buffer{})

			logger := test.DummyLogger(&output).Sugar()

			expected := &devstatus.Config{Logger: logger}
			Recovery(expected)(tc.given).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			_, _ = io.Copy(&body, actual.Body)

			assert.Equal(t, tc.code, actual.StatusCode)
			assert.Equal(t, tc.body, body.String())
			assert.Contains(t, output.String(), tc.want)

			if tc.error {
				t.Fatal("did not panic")
			}
		})
	}
}
