package freedompay

import "encoding/xml"

// PaymentRequest данные для создания платежа
type PaymentRequest struct {
	OrderID     int64   // ID записи
	Amount      float64 // Сумма к оплате
	Description string  // Если пусто, формируется из OrderID
}

// initResponse ответ init_payment.php
type initResponse struct {
	XMLName          xml.Name `xml:"response"`
	Status           string   `xml:"pg_status"`
	PaymentID        string   `xml:"pg_payment_id"`
	RedirectURL      string   `xml:"pg_redirect_url"`
	ErrorCode        string   `xml:"pg_error_code"`
	ErrorDescription string   `xml:"pg_error_description"`
}

// statusResponse ответ get_status3.php
type statusResponse struct {
	XMLName          xml.Name `xml:"response"`
	Status           string   `xml:"pg_status"`
	PaymentID        string   `xml:"pg_payment_id"`
	PaymentStatus    string   `xml:"pg_payment_status"`
	ErrorCode        string   `xml:"pg_error_code"`
	ErrorDescription string   `xml:"pg_error_description"`
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
