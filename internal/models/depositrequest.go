package models

type DepositRequest struct {
	Meta
	Platform        string `json:"platform"`
	Amount          string `json:"amount"`
	Method          string `json:"method"`
	TransactionID   string `json:"transactionId"`
	UserID          string `json:"userId"`
	UserFullName    string `json:"userFullName"`
	AccountUsername string `json:"accountUsername"`
	Status          string `json:"status"`
	Screenshot      string `json:"screenshot,omitempty"`
	ScreenshotData  string `json:"screenshotData,omitempty"`
}
