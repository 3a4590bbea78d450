package models

type Complaint struct {
	Meta
	AccountUsername string `json:"accountUsername"`
	Message         string `json:"message"`
	UserID          string `json:"userId"`
	UserFullName    string `json:"userFullName"`
	Status          string `json:"status"`
}
