package audit

// QueryData describes a single device status request.
type QueryData struct {
	Query     string
	RequestID string
	Timestamp int64
}

type Audit interface {
	Write(*QueryData) error
}
