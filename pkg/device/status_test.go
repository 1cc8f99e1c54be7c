package device

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type querierFunc func(context.Context, string) string

func (f querierFunc) QueryStatus(ctx context.Context, query string) string {
	return f(ctx, query)
}

func TestStatus(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       string
		want        string
	}{
		{"lower case", "lights", StatusLightsOn},
		{"upper case", "LIGHTS", StatusLightsOn},
		{"title case", "Lights", StatusLightsOn},
		{"mixed case within a sentence", "turn off the LiGhTs please", StatusLightsOn},
		{"substring of a longer word", "spotlightsoff", StatusLightsOn},
		{"singular form", "light", StatusUnknown},
		{"other device", "temperature", StatusUnknown},
		{"empty query", "", StatusUnknown},
		{"smart home without lights", "smart home status", StatusUnknown},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, Status(tc.given))
		})
	}
}

func TestMockQuerier(t *testing.T) {
	t.Parallel()

	q := NewMockQuerier()

	assert.Equal(t, StatusLightsOn, q.QueryStatus(context.TODO(), "Are the lights on?"))
	assert.Equal(t, StatusUnknown, q.QueryStatus(context.TODO(), "temperature"))
}

func TestQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		description string
		given       Querier
		want        string
	}{
		{
			"querier returning a status",
			NewMockQuerier(),
			StatusLightsOn,
		},
		{
			"querier panicking with a string",
			querierFunc(func(context.Context, string) string {
				panic("app not installed")
			}),
			"Error querying smart home app: app not installed",
		},
		{
			"querier panicking with an error",
			querierFunc(func(context.Context, string) string {
				panic(errors.New("broadcast refused"))
			}),
			"Error querying smart home app: broadcast refused",
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.description, func(t *testing.T) {
			t.Parallel()

			actual := Query(context.TODO(), tc.given, "lights")

			assert.Equal(t, tc.want, actual)
		})
	}
}
