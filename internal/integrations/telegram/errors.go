package telegram

import "errors"

var (
	// ErrNoRecipients не задан ни один чат операторов
	ErrNoRecipients = errors.New("telegram notifier: no operator chats configured")

	// ErrSend не удалось отправить сообщение хотя бы в один чат
	ErrSend = errors.New("telegram notifier: failed to send message")
)
