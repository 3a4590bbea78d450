package dto

// StatusRequest drives the status transitions on deposit requests, withdraw
// requests and complaints.
type StatusRequest struct {
	Status string `json:"status"`
}
