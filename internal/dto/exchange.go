package dto

type ExchangeRequest struct {
	Name       string `json:"name"`
	MinDeposit string `json:"minDeposit"`
}
