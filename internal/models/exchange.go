package models

type Exchange struct {
	Meta
	Name       string `json:"name"`
	MinDeposit string `json:"minDeposit"`
}
