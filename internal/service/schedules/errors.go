package schedules

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда у мастера нет расписания на этот день
	ErrScheduleNotFound = errors.New("work schedule not found")

	// ErrMasterNotFound возвращается, когда мастер не найден
	ErrMasterNotFound = errors.New("master not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrDuplicateSchedule возвращается при попытке создать второе расписание на тот же день
	ErrDuplicateSchedule = errors.New("work schedule already exists")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
