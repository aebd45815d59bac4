package telegram

import (
	"context"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"golang.org/x/time/rate"
)

const dateTimeLayout = "02.01.2006 15:04"

// Notifier рассылает уведомления о новых записях в чаты операторов
type Notifier struct {
	sender  Sender
	chatIDs []int64
	limiter *rate.Limiter
	log     Logger
}

// NewNotifier создает notifier. messagesPerSec <= 0 отключает ограничение частоты
func NewNotifier(sender Sender, chatIDs []int64, messagesPerSec float64, log Logger) *Notifier {
	limit := rate.Inf
	if messagesPerSec > 0 {
		limit = rate.Limit(messagesPerSec)
	}
	return &Notifier{
		sender:  sender,
		chatIDs: chatIDs,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// NotifyAppointment отправляет сообщение о записи во все чаты.
// Ошибка одного чата не прерывает рассылку в остальные
func (n *Notifier) NotifyAppointment(ctx context.Context, msg *AppointmentMessage) error {
	if len(n.chatIDs) == 0 {
		return ErrNoRecipients
	}

	text := FormatAppointment(msg)
	failed := 0
	for _, chatID := range n.chatIDs {
		if err := n.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: chat_id=%d: %v", ErrSend, chatID, err)
		}
		if _, err := n.sender.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			n.log.Warn("Telegram: failed to notify chat_id=%d about appointment id=%d: %v", chatID, msg.AppointmentID, err)
			failed++
			continue
		}
	}

	if failed > 0 {
		return fmt.Errorf("%w: %d of %d chats failed", ErrSend, failed, len(n.chatIDs))
	}
	n.log.Info("Telegram: appointment id=%d sent to %d chats", msg.AppointmentID, len(n.chatIDs))
	return nil
}

// FormatAppointment текст уведомления
func FormatAppointment(msg *AppointmentMessage) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Новая запись #%d\n", msg.AppointmentID)
	fmt.Fprintf(&b, "Клиент: %s", msg.ClientName)
	if msg.Phone != "" {
		fmt.Fprintf(&b, " (%s)", msg.Phone)
	}
	b.WriteString("\n")
	if msg.MasterName != "" {
		fmt.Fprintf(&b, "Мастер: %s\n", msg.MasterName)
	}
	if len(msg.Services) > 0 {
		fmt.Fprintf(&b, "Услуги: %s\n", strings.Join(msg.Services, ", "))
	}
	switch {
	case msg.DateTime != nil:
		fmt.Fprintf(&b, "Дата и время: %s\n", msg.DateTime.Format(dateTimeLayout))
	case msg.Date != "":
		fmt.Fprintf(&b, "Дата: %s\n", msg.Date)
	}
	if msg.TotalPrice > 0 {
		fmt.Fprintf(&b, "Сумма: %.2f\n", msg.TotalPrice)
	}
	if msg.PaymentURL != nil {
		fmt.Fprintf(&b, "Оплата: %s\n", *msg.PaymentURL)
	}
	return strings.TrimRight(b.String(), "\n")
}
