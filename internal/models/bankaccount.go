package models

type BankAccount struct {
	Meta
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
	AccountTitle  string `json:"accountTitle"`
}
