package model

import "github.com/TomaszChromy/vehicle-rental-platform/shared/model"

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldAmount        = "amount"
	FieldCurrency      = "currency"
	FieldStatus        = "status"
	FieldPaymentMethod = "payment_method"
	FieldTransactionID = "transaction_id"
)

const (
	StatusPending  = "PENDING"
	StatusPaid     = "PAID"
	StatusFailed   = "FAILED"
	StatusRefunded = "REFUNDED"
)

type Payment struct {
	ID            string  `db:"id"`
	BookingID     string  `db:"booking_id"`
	Amount        float64 `db:"amount"`
	Currency      string  `db:"currency"`
	Status        string  `db:"status"`
	PaymentMethod string  `db:"payment_method"`
	TransactionID string  `db:"transaction_id"`
	model.Metadata
}
