package telegram

import (
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// Sender отправка сообщений, *tgbotapi.BotAPI удовлетворяет интерфейсу
type Sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// AppointmentMessage данные новой записи для уведомления операторов
type AppointmentMessage struct {
	AppointmentID int64
	ClientName    string
	Phone         string
	MasterName    string
	Services      []string
	DateTime      *time.Time
	Date          string // только дата для длинных услуг
	TotalPrice    float64
	PaymentURL    *string
}
