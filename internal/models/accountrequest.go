package models

import "time"

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

type AccountDetails struct {
	Username   string     `json:"username"`
	Password   string     `json:"password"`
	Link       string     `json:"link"`
	Status     string     `json:"status"`
	ApprovedAt time.Time  `json:"approvedAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
}

// AccountRequest is a bettor's request for a platform account. Details are
// only attached once the request has been approved.
type AccountRequest struct {
	Meta
	Platform       string          `json:"platform"`
	Username       string          `json:"username"`
	UserID         string          `json:"userId"`
	UserFullName   string          `json:"userFullName"`
	Status         string          `json:"status"`
	AccountDetails *AccountDetails `json:"accountDetails,omitempty"`
}
