package dto

type CreateAccountRequest struct {
	Platform     string `json:"platform"`
	Username     string `json:"username"`
	UserID       string `json:"userId"`
	UserFullName string `json:"userFullName"`
}

// AccountDetailsRequest is the payload for both approve and update-details.
type AccountDetailsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Link     string `json:"link"`
	Status   string `json:"status"`
}
