package dto

// VendorCallbackRequest is the payment vendor's notification payload.
// Signature = SHA512(order_id + status_code + gross_amount + server_key).
type VendorCallbackRequest struct {
	OrderId           string `json:"order_id" validate:"required"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	SignatureKey      string `json:"signature_key"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
}
