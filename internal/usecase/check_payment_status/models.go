package check_payment_status

// Request модель запроса проверки оплаты
type Request struct {
	AppointmentID int64
}

// Response модель ответа
type Response struct {
	AppointmentID int64
	PaymentStatus string // Пусто, если запись уже не pending и платёжная система не опрашивалась
	Confirmation  string
	Confirmed     bool // Запись подтверждена этим запросом
}
