package dto

type CreateDepositRequest struct {
	Platform        string `json:"platform"`
	Amount          string `json:"amount"`
	Method          string `json:"method"`
	TransactionID   string `json:"transactionId"`
	UserID          string `json:"userId"`
	UserFullName    string `json:"userFullName"`
	AccountUsername string `json:"accountUsername"`
	Screenshot      string `json:"screenshot"`
	ScreenshotData  string `json:"screenshotData"`
}
