package catalog

import "errors"

var (
	// ErrServiceNotFound возвращается, когда услуга или одна из родительских услуг не найдена
	ErrServiceNotFound = errors.New("service not found")

	// ErrCycle возвращается, когда новые родители замыкают цикл в графе услуг
	ErrCycle = errors.New("service parents would create a cycle")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
