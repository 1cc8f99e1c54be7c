// Package device answers device status queries on behalf of the smart home
// app. Only a mock answer is available: no request is ever dispatched to
// the app itself.
package device

import (
	"context"
	"fmt"
	"strings"
)

// ActionGetStatus is the broadcast action a real integration with the smart
// home app would send.
const ActionGetStatus = "com.example.smarthome.ACTION_GET_STATUS"

const (
	StatusLightsOn = "Lights are ON"
	StatusUnknown  = "Unknown device status"
)

type Querier interface {
	QueryStatus(ctx context.Context, query string) string
}

// Status classifies a free-form query into a mocked device status.
func Status(query string) string {
	if strings.Contains(strings.ToLower(query), "lights") {
		return StatusLightsOn
	}
	return StatusUnknown
}

type MockQuerier struct{}

var _ Querier = (*MockQuerier)(nil)

func NewMockQuerier() *MockQuerier {
	return &MockQuerier{}
}

func (m *MockQuerier) QueryStatus(_ context.Context, query string) string {
	return Status(query)
}

// Query asks q for the status of query. It never fails: a panicking
// querier is reported through the returned status string.
func Query(ctx context.Context, q Querier, query string) (status string) {
	defer func() {
		if r := recover(); r != nil {
			status = fmt.Sprintf("Error querying smart home app: %v", r)
		}
	}()
	return q.QueryStatus(ctx, query)
}
