package entity

// PaymentOrder is the subset of a gateway order the API exposes to clients
type PaymentOrder struct {
	OrderID  string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}
