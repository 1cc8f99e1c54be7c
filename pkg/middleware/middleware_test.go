package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestID(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       string
		generated   bool
	}{
		{
			"request ID provided by the client",
			"b9f4c2d6-client",
			false,
		},
		{
			"request ID generated when missing",
			"",
			true,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			var seen string

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodPost, "/get_device_status", nil)
			if tc.given != "" {
				r.Header.Set(RequestIDHeader, tc.given)
			}

			RequestID()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				seen = GetRequestID(r.Context())
			})).ServeHTTP(w, r)

			actual := w.Result()
			defer func() { _ = actual.Body.Close() }()

			header := actual.Header.Get(RequestIDHeader)

			assert.Equal(t, seen, header)
			if tc.generated {
				_, err := uuid.Parse(header)
				require.NoError(t, err)
			} else {
				assert.Equal(t, tc.given, header)
			}
		})
	}
}

func TestGetRequestID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", GetRequestID(context.TODO()))
	assert.Equal(t, "", GetRequestID(context.WithValue(context.TODO(), ContextKeyRequestID, 42)))
	assert.Equal(t, "abc", GetRequestID(context.WithValue(context.TODO(), ContextKeyRequestID, "abc")))
}
