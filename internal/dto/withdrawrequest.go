package dto

type CreateWithdrawRequest struct {
	Platform        string `json:"platform"`
	Amount          string `json:"amount"`
	BankName        string `json:"bankName"`
	AccountNumber   string `json:"accountNumber"`
	AccountTitle    string `json:"accountTitle"`
	UserID          string `json:"userId"`
	UserFullName    string `json:"userFullName"`
	AccountUsername string `json:"accountUsername"`
}
