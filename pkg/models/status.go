package models

type StatusRequest struct {
	Query string `json:"query"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
