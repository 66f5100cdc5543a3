package models

// PaymentRequest is handed to the payment handler when a booking is committed.
type PaymentRequest struct {
	UserID   string  `json:"userId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
	Method   string  `json:"method"` // e.g. "card"
}

// Invoice is the result of a processed payment.
type Invoice struct {
	InvoiceID string  `json:"invoiceId"`
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"` // maps onto reservation status
}
