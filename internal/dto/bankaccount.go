package dto

type BankAccountRequest struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountTitle  string `json:"accountTitle"`
}
