package check_payment_status

import (
	checkPaymentStatus "github.com/m04kA/SalonBookingService/internal/usecase/check_payment_status"
)

// PaymentStatusResponse HTTP response model
type PaymentStatusResponse struct {
	AppointmentID int64  `json:"appointmentId"`
	PaymentStatus string `json:"paymentStatus,omitempty"`
	Confirmation  string `json:"confirmation"`
	Confirmed     bool   `json:"confirmed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkPaymentStatus.Response) *PaymentStatusResponse {
	return &PaymentStatusResponse{
		AppointmentID: resp.AppointmentID,
		PaymentStatus: resp.PaymentStatus,
		Confirmation:  resp.Confirmation,
		Confirmed:     resp.Confirmed,
	}
}
