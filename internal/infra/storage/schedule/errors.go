package schedule

import "errors"

var (
	// ErrScheduleNotFound возвращается, когда расписание не найдено
	ErrScheduleNotFound = errors.New("schedule.repository: schedule not found")

	// ErrDuplicateSchedule у мастера уже есть расписание на этот день недели
	ErrDuplicateSchedule = errors.New("schedule.repository: duplicate schedule for master and weekday")

	// ErrInvalidTimeRange нарушено start_time < end_time или день недели вне 1..7
	ErrInvalidTimeRange = errors.New("schedule.repository: invalid schedule time range")

	// ErrMasterNotFound мастер, на которого ссылается расписание, не существует
	ErrMasterNotFound = errors.New("schedule.repository: master not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("schedule.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("schedule.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("schedule.repository: failed to scan row")
)
