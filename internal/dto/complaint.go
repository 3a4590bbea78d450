package dto

type CreateComplaintRequest struct {
	AccountUsername string `json:"accountUsername"`
	Message         string `json:"message"`
	UserID          string `json:"userId"`
	UserFullName    string `json:"userFullName"`
}
